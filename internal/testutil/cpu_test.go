package testutil

import "testing"

func TestVendorWords(t *testing.T) {
	ebx, edx, ecx := VendorWords("GenuineIntel")
	if ebx != 0x756e6547 || edx != 0x49656e69 || ecx != 0x6c65746e {
		t.Fatalf("VendorWords = %#x %#x %#x", ebx, edx, ecx)
	}
}

func TestCPUUnpopulatedLeafReadsZero(t *testing.T) {
	c := NewCPU("GenuineIntel", 1, 0)
	a, b, cx, d := c.CPUID(0x14, 0)
	if a|b|cx|d != 0 {
		t.Fatalf("expected zero registers, got %#x %#x %#x %#x", a, b, cx, d)
	}
	if got := c.Issued(0x14, 0); got != 1 {
		t.Fatalf("expected 1 recorded query, got %d", got)
	}
}

func TestCPUSetAndClearBits(t *testing.T) {
	c := NewCPU("GenuineIntel", 7, 0)
	c.SetBits(7, 0, EBX, 5, 16).ClearBits(7, 0, EBX, 16)
	_, ebx, _, _ := c.CPUID(7, 0)
	if ebx != 1<<5 {
		t.Fatalf("expected ebx %#x, got %#x", 1<<5, ebx)
	}
}

func TestCPUXGETBV(t *testing.T) {
	c := NewCPU("GenuineIntel", 1, 0).SetXCR0(1<<40 | XCR0AVXState)
	lo, hi := c.XGETBV()
	if lo != XCR0AVXState || hi != 1<<8 {
		t.Fatalf("XGETBV = %#x %#x", lo, hi)
	}
	if c.XGETBVCalls() != 1 {
		t.Fatalf("expected 1 XGETBV call, got %d", c.XGETBVCalls())
	}
}
