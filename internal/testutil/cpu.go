// Package testutil provides simulated CPUID register files so detection logic
// can be exercised against processors other than the host.
package testutil

import (
	"encoding/binary"
	"sync"
)

// Register selects one of the four CPUID output registers.
type Register int

const (
	EAX Register = iota
	EBX
	ECX
	EDX
)

// Leaf identifies a CPUID leaf and sub-leaf pair.
type Leaf struct {
	Leaf    uint32
	Subleaf uint32
}

// Regs holds the CPUID output registers for one leaf.
type Regs [4]uint32

// CPU is a simulated processor. Leaves that were never populated read as
// zero, like reserved leaves on real silicon. CPU is safe for concurrent use.
type CPU struct {
	mu      sync.Mutex
	leaves  map[Leaf]Regs
	xcr0    uint64
	issued  map[Leaf]int
	xgetbvs int
}

// NewCPU returns a processor with the given vendor string and highest
// standard and extended leaves.
func NewCPU(vendor string, maxLeaf, maxExtLeaf uint32) *CPU {
	c := &CPU{
		leaves: make(map[Leaf]Regs),
		issued: make(map[Leaf]int),
	}
	ebx, edx, ecx := VendorWords(vendor)
	c.leaves[Leaf{0, 0}] = Regs{maxLeaf, ebx, ecx, edx}
	c.leaves[Leaf{0x80000000, 0}] = Regs{maxExtLeaf, 0, 0, 0}
	return c
}

// VendorWords packs a 12-byte vendor string into the EBX, EDX and ECX words
// reported by leaf 0.
func VendorWords(vendor string) (ebx, edx, ecx uint32) {
	var b [12]byte
	copy(b[:], vendor)
	return binary.LittleEndian.Uint32(b[0:]),
		binary.LittleEndian.Uint32(b[4:]),
		binary.LittleEndian.Uint32(b[8:])
}

// SetBits sets bits in one register of a leaf.
func (c *CPU) SetBits(leaf, subleaf uint32, reg Register, bits ...uint) *CPU {
	c.mu.Lock()
	defer c.mu.Unlock()
	k := Leaf{leaf, subleaf}
	r := c.leaves[k]
	for _, b := range bits {
		r[reg] |= 1 << b
	}
	c.leaves[k] = r
	return c
}

// ClearBits clears bits in one register of a leaf.
func (c *CPU) ClearBits(leaf, subleaf uint32, reg Register, bits ...uint) *CPU {
	c.mu.Lock()
	defer c.mu.Unlock()
	k := Leaf{leaf, subleaf}
	r := c.leaves[k]
	for _, b := range bits {
		r[reg] &^= 1 << b
	}
	c.leaves[k] = r
	return c
}

// SetXCR0 sets the value XGETBV reports.
func (c *CPU) SetXCR0(v uint64) *CPU {
	c.mu.Lock()
	c.xcr0 = v
	c.mu.Unlock()
	return c
}

// CPUID returns the populated registers for the leaf.
func (c *CPU) CPUID(leaf, subleaf uint32) (eax, ebx, ecx, edx uint32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	k := Leaf{leaf, subleaf}
	c.issued[k]++
	r := c.leaves[k]
	return r[EAX], r[EBX], r[ECX], r[EDX]
}

// XGETBV returns XCR0 split into its low and high words.
func (c *CPU) XGETBV() (eax, edx uint32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.xgetbvs++
	return uint32(c.xcr0), uint32(c.xcr0 >> 32)
}

// Issued reports how many times the leaf was queried.
func (c *CPU) Issued(leaf, subleaf uint32) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.issued[Leaf{leaf, subleaf}]
}

// IssuedLeaves returns every leaf that was queried at least once.
func (c *CPU) IssuedLeaves() []Leaf {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Leaf, 0, len(c.issued))
	for k := range c.issued {
		out = append(out, k)
	}
	return out
}

// XGETBVCalls reports how many times XGETBV was executed.
func (c *CPU) XGETBVCalls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.xgetbvs
}
