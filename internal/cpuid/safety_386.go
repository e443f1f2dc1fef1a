//go:build 386 && !386.softfloat && !cpufeat_nocpuid

package cpuid

// GO386=sse2 guarantees SSE2, and every CPU with SSE2 implements CPUID.
const baseline = Always
