//go:build !(386 || amd64) || cpufeat_nocpuid

package cpuid

const baseline = Never
