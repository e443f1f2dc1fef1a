//go:build 386 && 386.softfloat && !cpufeat_nocpuid

package cpuid

// GO386=softfloat targets CPUs that may predate CPUID.
const baseline = Cautious
