//go:build 386 || amd64

package main

import (
	"strings"
	"testing"

	"github.com/cwbudde/algo-cpufeat/x86"
)

func TestRunQuery(t *testing.T) {
	if x86.Classification() != x86.SafetyAlways {
		t.Skipf("classification is %v", x86.Classification())
	}
	code, out, _ := runCapture(t, "sse2")
	if code != exitOK {
		t.Fatalf("expected exit %d for sse2, got %d", exitOK, code)
	}
	if !strings.Contains(out, "sse2") || !strings.Contains(out, "yes") {
		t.Fatalf("unexpected output %q", out)
	}

	want := exitOK
	if !x86.Has(x86.AVX512VBMI) {
		want = exitAbsent
	}
	if code, _, _ := runCapture(t, "sse2", "avx512vbmi"); code != want {
		t.Fatalf("expected exit %d, got %d", want, code)
	}
}

func TestRunCompare(t *testing.T) {
	if x86.Classification() != x86.SafetyAlways {
		t.Skipf("classification is %v", x86.Classification())
	}
	code, out, errOut := runCapture(t, "--compare")
	if code != exitOK {
		t.Fatalf("expected exit %d, got %d\n%s\n%s", exitOK, code, out, errOut)
	}
	if !strings.Contains(out, "cpu: ") {
		t.Fatalf("expected a vendor line in %q", out)
	}
}
