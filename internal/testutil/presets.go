package testutil

// XCR0 state-component masks.
const (
	XCR0X87    = 1 << 0
	XCR0SSE    = 1 << 1
	XCR0AVX    = 1 << 2
	XCR0Opmask = 1 << 5
	XCR0ZMMHi  = 1 << 6
	XCR0Hi16   = 1 << 7

	XCR0AVXState    = XCR0X87 | XCR0SSE | XCR0AVX
	XCR0AVX512State = XCR0AVXState | XCR0Opmask | XCR0ZMMHi | XCR0Hi16
)

// Haswell returns an Intel desktop part with SSE through SSE4.2, AVX, AVX2,
// FMA, BMI1/2 and RTM, but no AVX-512. The OS has enabled AVX state.
func Haswell() *CPU {
	c := NewCPU("GenuineIntel", 0xd, 0x80000008)
	// Leaf 1 EDX: tsc, mmx, fxsr, sse, sse2.
	c.SetBits(1, 0, EDX, 4, 23, 24, 25, 26)
	// Leaf 1 ECX: sse3, pclmulqdq, ssse3, fma, cmpxchg16b, sse4.1, sse4.2,
	// popcnt, aes, xsave, osxsave, avx, f16c, rdrand.
	c.SetBits(1, 0, ECX, 0, 1, 9, 12, 13, 19, 20, 23, 25, 26, 27, 28, 29, 30)
	// Leaf 7 EBX: bmi1, avx2, bmi2, rtm.
	c.SetBits(7, 0, EBX, 3, 5, 8, 11)
	// Leaf 0xD sub-leaf 1 EAX: xsaveopt.
	c.SetBits(0xd, 1, EAX, 0)
	// Leaf 0x80000001 ECX: lzcnt.
	c.SetBits(0x80000001, 0, ECX, 5)
	c.SetXCR0(XCR0AVXState)
	return c
}

// SkylakeX returns a Haswell extended with RDSEED, ADX, XSAVEC, XSAVES and
// the AVX-512 F, CD, BW, DQ and VL subsets, with AVX-512 state enabled.
func SkylakeX() *CPU {
	c := Haswell()
	// Leaf 7 EBX: avx512f, avx512dq, rdseed, adx, avx512cd, avx512bw,
	// avx512vl.
	c.SetBits(7, 0, EBX, 16, 17, 18, 19, 28, 30, 31)
	c.SetBits(0xd, 1, EAX, 1, 3)
	c.SetXCR0(XCR0AVX512State)
	return c
}

// Excavator returns an AMD part with the AMD-only SSE4A and TBM extensions
// alongside AVX2 and BMI1/2, with AVX state enabled and no AVX-512.
func Excavator() *CPU {
	c := NewCPU("AuthenticAMD", 0xd, 0x8000001e)
	c.SetBits(1, 0, EDX, 4, 23, 24, 25, 26)
	c.SetBits(1, 0, ECX, 0, 1, 9, 12, 13, 19, 20, 23, 25, 26, 27, 28, 29, 30)
	c.SetBits(7, 0, EBX, 3, 5, 8)
	c.SetBits(0xd, 1, EAX, 0)
	// Leaf 0x80000001 ECX: lzcnt (abm), sse4a, tbm.
	c.SetBits(0x80000001, 0, ECX, 5, 6, 21)
	c.SetXCR0(XCR0AVXState)
	return c
}

// Pentium3 returns a processor with only leaf 1 and no extended leaves.
func Pentium3() *CPU {
	c := NewCPU("GenuineIntel", 2, 0)
	c.SetBits(1, 0, EDX, 4, 23, 24, 25)
	return c
}
