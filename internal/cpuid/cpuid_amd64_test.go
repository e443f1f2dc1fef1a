//go:build gc && !purego && !cpufeat_nocpuid

package cpuid

import "testing"

func TestClassificationAMD64(t *testing.T) {
	if got := Classification(); got != Always {
		t.Fatalf("expected Always on amd64, got %v", got)
	}
}

func TestHardwareLeafZero(t *testing.T) {
	var hw Hardware
	maxLeaf, ebx, ecx, edx := hw.CPUID(0, 0)
	if maxLeaf < 1 {
		t.Fatalf("expected at least leaf 1, got max leaf %d", maxLeaf)
	}
	if ebx|ecx|edx == 0 {
		t.Fatal("expected a vendor string in leaf 0")
	}

	// SSE2 is part of the amd64 baseline.
	_, _, _, edx1 := hw.CPUID(1, 0)
	if edx1&(1<<26) == 0 {
		t.Fatal("expected SSE2 in CPUID.01H:EDX")
	}
}
