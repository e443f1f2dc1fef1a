//go:build amd64 && !cpufeat_nocpuid

package cpuid

// CPUID is part of the x86-64 baseline.
const baseline = Always
