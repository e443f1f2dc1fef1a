//go:build 386 || amd64

package x86

// Detectable features. The order is part of the API: each value is the
// feature's bit in a Set.
const (
	AES Feature = iota
	PCLMULQDQ
	RDRAND
	RDSEED
	TSC
	MMX
	SSE
	SSE2
	SSE3
	SSSE3
	SSE41
	SSE42
	SSE4A
	SHA
	AVX
	AVX2
	AVX512F
	AVX512CD
	AVX512ER
	AVX512PF
	AVX512BW
	AVX512DQ
	AVX512VL
	AVX512IFMA
	AVX512VBMI
	AVX512VPOPCNTDQ
	F16C
	FMA
	BMI1
	BMI2
	LZCNT
	TBM
	POPCNT
	FXSR
	XSAVE
	XSAVEOPT
	XSAVES
	XSAVEC
	CMPXCHG16B
	ADX
	RTM

	numFeatures
)

// ABM is the AMD name for the advanced bit manipulation extension that
// provides LZCNT.
const ABM = LZCNT

// The top bit of the cache word is the initialized marker.
var _ [63 - numFeatures]struct{}

// catalog maps each feature to its CPUID source. XSAVE and its variants
// carry the OS AVX gate: they are only usable once the OS has set
// CR4.OSXSAVE and enabled AVX state.
var catalog = [numFeatures]entry{
	AES:             {"aes", leaf1ECX, 25, gateNone},
	PCLMULQDQ:       {"pclmulqdq", leaf1ECX, 1, gateNone},
	RDRAND:          {"rdrand", leaf1ECX, 30, gateNone},
	RDSEED:          {"rdseed", leaf7EBX, 18, gateNone},
	TSC:             {"tsc", leaf1EDX, 4, gateNone},
	MMX:             {"mmx", leaf1EDX, 23, gateNone},
	SSE:             {"sse", leaf1EDX, 25, gateNone},
	SSE2:            {"sse2", leaf1EDX, 26, gateNone},
	SSE3:            {"sse3", leaf1ECX, 0, gateNone},
	SSSE3:           {"ssse3", leaf1ECX, 9, gateNone},
	SSE41:           {"sse4.1", leaf1ECX, 19, gateNone},
	SSE42:           {"sse4.2", leaf1ECX, 20, gateNone},
	SSE4A:           {"sse4a", ext1ECX, 6, gateAMD},
	SHA:             {"sha", leaf7EBX, 29, gateNone},
	AVX:             {"avx", leaf1ECX, 28, gateOSAVX},
	AVX2:            {"avx2", leaf7EBX, 5, gateOSAVX},
	AVX512F:         {"avx512f", leaf7EBX, 16, gateOSAVX512},
	AVX512CD:        {"avx512cd", leaf7EBX, 28, gateOSAVX512},
	AVX512ER:        {"avx512er", leaf7EBX, 27, gateOSAVX512},
	AVX512PF:        {"avx512pf", leaf7EBX, 26, gateOSAVX512},
	AVX512BW:        {"avx512bw", leaf7EBX, 30, gateOSAVX512},
	AVX512DQ:        {"avx512dq", leaf7EBX, 17, gateOSAVX512},
	AVX512VL:        {"avx512vl", leaf7EBX, 31, gateOSAVX512},
	AVX512IFMA:      {"avx512ifma", leaf7EBX, 21, gateOSAVX512},
	AVX512VBMI:      {"avx512vbmi", leaf7ECX, 1, gateOSAVX512},
	AVX512VPOPCNTDQ: {"avx512vpopcntdq", leaf7ECX, 14, gateOSAVX512},
	F16C:            {"f16c", leaf1ECX, 29, gateOSAVX},
	FMA:             {"fma", leaf1ECX, 12, gateOSAVX},
	BMI1:            {"bmi1", leaf7EBX, 3, gateNone},
	BMI2:            {"bmi2", leaf7EBX, 8, gateNone},
	LZCNT:           {"lzcnt", ext1ECX, 5, gateNone},
	TBM:             {"tbm", ext1ECX, 21, gateAMD},
	POPCNT:          {"popcnt", leaf1ECX, 23, gateNone},
	FXSR:            {"fxsr", leaf1EDX, 24, gateNone},
	XSAVE:           {"xsave", leaf1ECX, 26, gateOSAVX},
	XSAVEOPT:        {"xsaveopt", leafDEAX, 0, gateOSAVX},
	XSAVES:          {"xsaves", leafDEAX, 3, gateOSAVX},
	XSAVEC:          {"xsavec", leafDEAX, 1, gateOSAVX},
	CMPXCHG16B:      {"cmpxchg16b", leaf1ECX, 13, gateNone},
	ADX:             {"adx", leaf7EBX, 19, gateNone},
	RTM:             {"rtm", leaf7EBX, 11, gateNone},
}

var aliases = [...]alias{
	{"abm", ABM},
}
