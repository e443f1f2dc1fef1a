//go:build 386 || amd64

package x86

import "github.com/cwbudde/algo-cpufeat/internal/cpuid"

const (
	extBase = 0x80000000

	// CPUID.01H:ECX
	cpuidXSAVE   = 1 << 26
	cpuidOSXSAVE = 1 << 27

	// XCR0 state components.
	xcr0AVX    = 1<<1 | 1<<2        // SSE, AVX
	xcr0AVX512 = 1<<5 | 1<<6 | 1<<7 // opmask, ZMM_Hi256, Hi16_ZMM
)

// Vendor strings of leaf 0 as EBX, EDX, ECX words.
var amdFamily = [...][3]uint32{
	{0x68747541, 0x69746e65, 0x444d4163}, // AuthenticAMD
	{0x6f677948, 0x6e65476e, 0x656e6975}, // HygonGenuine
}

// leaves holds the CPUID words the catalog is decoded from, plus the
// results of the gating checks.
type leaves struct {
	words    [numWords]uint32
	osAVX    bool
	osAVX512 bool
	amd      bool
}

// detectFeatures queries regs and returns the decoded capability bitset.
// It returns an empty Set when safety forbids issuing CPUID. No leaf above
// the advertised maximum is ever queried.
func detectFeatures(safety cpuid.Safety, regs cpuid.Registers) Set {
	if !cpuid.Usable(safety) {
		return 0
	}
	var l leaves
	if !l.read(regs) {
		return 0
	}
	return l.decode()
}

func (l *leaves) read(regs cpuid.Registers) bool {
	maxLeaf, vb, vc, vd := regs.CPUID(0, 0)
	if maxLeaf < 1 {
		return false
	}
	for _, v := range amdFamily {
		if v == [3]uint32{vb, vd, vc} {
			l.amd = true
		}
	}
	maxExt, _, _, _ := regs.CPUID(extBase, 0)

	_, _, ecx1, edx1 := regs.CPUID(1, 0)
	l.words[leaf1ECX] = ecx1
	l.words[leaf1EDX] = edx1

	// XGETBV raises #UD unless the OS has set CR4.OSXSAVE.
	if ecx1&cpuidXSAVE != 0 && ecx1&cpuidOSXSAVE != 0 {
		xcr0, _ := regs.XGETBV()
		l.osAVX = xcr0&xcr0AVX == xcr0AVX
		l.osAVX512 = l.osAVX && xcr0&xcr0AVX512 == xcr0AVX512
	}

	if maxLeaf >= 7 {
		_, ebx7, ecx7, _ := regs.CPUID(7, 0)
		l.words[leaf7EBX] = ebx7
		l.words[leaf7ECX] = ecx7
	}

	if maxLeaf >= 0xd && l.osAVX {
		eaxD, _, _, _ := regs.CPUID(0xd, 1)
		l.words[leafDEAX] = eaxD
	}

	// CPUs without extended leaves may echo a standard leaf here, so the
	// maximum must also lie in the extended range.
	if maxExt >= extBase+1 && maxExt <= extBase|0xffff {
		_, _, ecxE, _ := regs.CPUID(extBase+1, 0)
		l.words[ext1ECX] = ecxE
	}
	return true
}

func (l *leaves) open(g gate) bool {
	switch g {
	case gateNone:
		return true
	case gateOSAVX:
		return l.osAVX
	case gateOSAVX512:
		return l.osAVX512
	case gateAMD:
		return l.amd
	default:
		return false
	}
}

func (l *leaves) decode() Set {
	var s Set
	for i := range catalog {
		e := &catalog[i]
		if l.words[e.word]&(1<<e.bit) != 0 && l.open(e.gate) {
			s |= 1 << i
		}
	}
	return s
}
