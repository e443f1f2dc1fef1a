//go:build 386 || amd64

// Package crosscheck compares detected features with independent detectors:
// golang.org/x/sys/cpu, github.com/klauspost/cpuid/v2 and, on amd64, the
// algo-vecmath dispatch detector. Every check an oracle carries has the same
// definition there as in the x86 package, including the XCR0 gating.
package crosscheck

import (
	"runtime"

	vcpu "github.com/cwbudde/algo-vecmath/cpu"
	kcpuid "github.com/klauspost/cpuid/v2"
	"golang.org/x/sys/cpu"

	"github.com/cwbudde/algo-cpufeat/x86"
)

// Check is one feature as seen by an oracle.
type Check struct {
	Feature x86.Feature
	Has     func() bool
}

// Oracle is an independent feature detector.
type Oracle struct {
	Name   string
	Checks []Check
}

// Mismatch is a feature on which an oracle and the detected Set disagree.
type Mismatch struct {
	Oracle   string
	Feature  x86.Feature
	Reported bool
	Detected bool
}

// VecmathName is the name of the algo-vecmath oracle.
const VecmathName = "github.com/cwbudde/algo-vecmath/cpu"

// Oracles returns every available oracle. AVX-512 checks are omitted on
// darwin, where the kernel enables AVX-512 state lazily and XCR0 under-reports
// it until first use. The algo-vecmath detector only probes amd64 and reports
// nothing elsewhere, so it is left out on 386.
func Oracles() []Oracle {
	oracles := []Oracle{XSys(), Klauspost()}
	if vecmathReliable() {
		oracles = append(oracles, Vecmath())
	}
	return oracles
}

func vecmathReliable() bool {
	return runtime.GOARCH == "amd64"
}

func avx512Reliable() bool {
	return runtime.GOOS != "darwin"
}

// XSys returns the golang.org/x/sys/cpu oracle.
func XSys() Oracle {
	checks := []Check{
		{x86.SSE2, func() bool { return cpu.X86.HasSSE2 }},
		{x86.SSE3, func() bool { return cpu.X86.HasSSE3 }},
		{x86.SSSE3, func() bool { return cpu.X86.HasSSSE3 }},
		{x86.SSE41, func() bool { return cpu.X86.HasSSE41 }},
		{x86.SSE42, func() bool { return cpu.X86.HasSSE42 }},
		{x86.POPCNT, func() bool { return cpu.X86.HasPOPCNT }},
		{x86.AES, func() bool { return cpu.X86.HasAES }},
		{x86.PCLMULQDQ, func() bool { return cpu.X86.HasPCLMULQDQ }},
		{x86.CMPXCHG16B, func() bool { return cpu.X86.HasCX16 }},
		{x86.RDRAND, func() bool { return cpu.X86.HasRDRAND }},
		{x86.RDSEED, func() bool { return cpu.X86.HasRDSEED }},
		{x86.AVX, func() bool { return cpu.X86.HasAVX }},
		{x86.AVX2, func() bool { return cpu.X86.HasAVX2 }},
		{x86.FMA, func() bool { return cpu.X86.HasFMA }},
		{x86.BMI1, func() bool { return cpu.X86.HasBMI1 }},
		{x86.BMI2, func() bool { return cpu.X86.HasBMI2 }},
		{x86.ADX, func() bool { return cpu.X86.HasADX }},
	}
	if avx512Reliable() {
		checks = append(checks,
			Check{x86.AVX512F, func() bool { return cpu.X86.HasAVX512F }},
			Check{x86.AVX512CD, func() bool { return cpu.X86.HasAVX512CD }},
			Check{x86.AVX512ER, func() bool { return cpu.X86.HasAVX512ER }},
			Check{x86.AVX512PF, func() bool { return cpu.X86.HasAVX512PF }},
			Check{x86.AVX512BW, func() bool { return cpu.X86.HasAVX512BW }},
			Check{x86.AVX512DQ, func() bool { return cpu.X86.HasAVX512DQ }},
			Check{x86.AVX512VL, func() bool { return cpu.X86.HasAVX512VL }},
			Check{x86.AVX512IFMA, func() bool { return cpu.X86.HasAVX512IFMA }},
			Check{x86.AVX512VBMI, func() bool { return cpu.X86.HasAVX512VBMI }},
			Check{x86.AVX512VPOPCNTDQ, func() bool { return cpu.X86.HasAVX512VPOPCNTDQ }},
		)
	}
	return Oracle{Name: "golang.org/x/sys/cpu", Checks: checks}
}

// Klauspost returns the github.com/klauspost/cpuid/v2 oracle.
func Klauspost() Oracle {
	has := func(id kcpuid.FeatureID) func() bool {
		return func() bool { return kcpuid.CPU.Supports(id) }
	}
	checks := []Check{
		{x86.SSE, has(kcpuid.SSE)},
		{x86.SSE2, has(kcpuid.SSE2)},
		{x86.SSE3, has(kcpuid.SSE3)},
		{x86.SSSE3, has(kcpuid.SSSE3)},
		{x86.SSE41, has(kcpuid.SSE4)},
		{x86.SSE42, has(kcpuid.SSE42)},
		{x86.POPCNT, has(kcpuid.POPCNT)},
		{x86.AES, has(kcpuid.AESNI)},
		{x86.PCLMULQDQ, has(kcpuid.CLMUL)},
		{x86.CMPXCHG16B, has(kcpuid.CX16)},
		{x86.RDSEED, has(kcpuid.RDSEED)},
		{x86.SHA, has(kcpuid.SHA)},
		{x86.AVX, has(kcpuid.AVX)},
		{x86.AVX2, has(kcpuid.AVX2)},
		{x86.BMI1, has(kcpuid.BMI1)},
		{x86.BMI2, has(kcpuid.BMI2)},
		{x86.LZCNT, has(kcpuid.LZCNT)},
		{x86.ADX, has(kcpuid.ADX)},
	}
	if avx512Reliable() {
		checks = append(checks,
			Check{x86.AVX512F, has(kcpuid.AVX512F)},
			Check{x86.AVX512CD, has(kcpuid.AVX512CD)},
			Check{x86.AVX512BW, has(kcpuid.AVX512BW)},
			Check{x86.AVX512DQ, has(kcpuid.AVX512DQ)},
			Check{x86.AVX512VL, has(kcpuid.AVX512VL)},
		)
	}
	return Oracle{Name: "github.com/klauspost/cpuid/v2", Checks: checks}
}

// Vecmath returns the algo-vecmath kernel-dispatch detector as an oracle. Its
// checks are only meaningful on amd64.
func Vecmath() Oracle {
	return Oracle{
		Name: VecmathName,
		Checks: []Check{
			{x86.SSE2, func() bool { return vcpu.DetectFeatures().HasSSE2 }},
			{x86.AVX2, func() bool { return vcpu.DetectFeatures().HasAVX2 }},
		},
	}
}

// Compare returns every check on which the oracles disagree with s.
func Compare(s x86.Set, oracles ...Oracle) []Mismatch {
	var out []Mismatch
	for _, o := range oracles {
		for _, c := range o.Checks {
			want := c.Has()
			if got := s.Has(c.Feature); got != want {
				out = append(out, Mismatch{Oracle: o.Name, Feature: c.Feature, Reported: want, Detected: got})
			}
		}
	}
	return out
}

// Vendor returns the CPU vendor and brand strings reported by
// klauspost/cpuid.
func Vendor() (vendor, brand string) {
	return kcpuid.CPU.VendorString, kcpuid.CPU.BrandName
}
