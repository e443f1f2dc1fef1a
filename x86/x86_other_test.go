//go:build !386 && !amd64

package x86

import (
	"errors"
	"testing"
)

func TestDetectedUnsupportedArchitecture(t *testing.T) {
	for _, name := range []string{"sse2", "avx2", "made_up_feature_xyz"} {
		ok, err := Detected(name)
		if ok {
			t.Fatalf("Detected(%q) = true outside x86", name)
		}
		if !errors.Is(err, ErrUnsupportedArchitecture) || !errors.Is(err, ErrUnknownFeature) {
			t.Fatalf("Detected(%q): expected both sentinel errors, got %v", name, err)
		}
	}
}

func TestStubCatalogIsEmpty(t *testing.T) {
	if len(Features()) != 0 || len(Names()) != 0 {
		t.Fatal("expected an empty catalog outside x86")
	}
	if _, err := Lookup("sse2"); !errors.Is(err, ErrUnknownFeature) {
		t.Fatalf("expected ErrUnknownFeature, got %v", err)
	}
	if Host() != 0 {
		t.Fatal("expected an empty host set outside x86")
	}
	if Classification() != SafetyNever {
		t.Fatalf("expected Never outside x86, got %v", Classification())
	}
}
