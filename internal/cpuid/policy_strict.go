//go:build !cpufeat_assume_cpuid

package cpuid

const assumeSafe = false
