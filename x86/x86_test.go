//go:build 386 || amd64

package x86

import (
	"errors"
	"sync"
	"testing"
)

func TestHasMatchesHost(t *testing.T) {
	host := Host()
	for _, f := range Features() {
		if Has(f) != host.Has(f) {
			t.Fatalf("Has(%v) disagrees with Host()", f)
		}
	}
}

func TestDetectedByName(t *testing.T) {
	for _, name := range Names() {
		f, err := Lookup(name)
		if err != nil {
			t.Fatal(err)
		}
		got, err := Detected(name)
		if err != nil {
			t.Fatalf("Detected(%q): %v", name, err)
		}
		if got != Has(f) {
			t.Fatalf("Detected(%q) = %v, Has(%v) = %v", name, got, f, Has(f))
		}
	}

	abm, _ := Detected("abm")
	lzcnt, _ := Detected("lzcnt")
	if abm != lzcnt {
		t.Fatalf("abm = %v, lzcnt = %v", abm, lzcnt)
	}
}

func TestDetectedUnknownName(t *testing.T) {
	ok, err := Detected("made_up_feature_xyz")
	if ok {
		t.Fatal("expected false for an unknown feature")
	}
	if !errors.Is(err, ErrUnknownFeature) {
		t.Fatalf("expected ErrUnknownFeature, got %v", err)
	}
}

func TestHostBaseline(t *testing.T) {
	if Classification() != SafetyAlways {
		t.Skipf("classification is %v", Classification())
	}
	// Every CPU that can run a GO386=sse2 or amd64 binary has these.
	for _, f := range []Feature{SSE, SSE2, TSC, FXSR, MMX} {
		if !Has(f) {
			t.Errorf("expected %v on this host", f)
		}
	}
	// AVX-512 subsets are meaningless without the foundation.
	if !Has(AVX512F) {
		for _, f := range []Feature{AVX512CD, AVX512BW, AVX512DQ, AVX512VL} {
			if Has(f) {
				t.Errorf("%v detected without avx512f", f)
			}
		}
	}
	if Has(AVX2) && !Has(AVX) {
		t.Error("avx2 detected without avx")
	}
}

func TestHostNeverIsEmpty(t *testing.T) {
	if Classification() != SafetyNever {
		t.Skipf("classification is %v", Classification())
	}
	if s := Host(); s != 0 {
		t.Fatalf("expected no features under Never, got %v", s)
	}
}

func TestHasConcurrent(t *testing.T) {
	want := Host()
	const n = 32
	var wg sync.WaitGroup
	errs := make(chan Feature, n*int(numFeatures))
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, f := range Features() {
				if Has(f) != want.Has(f) {
					errs <- f
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for f := range errs {
		t.Errorf("concurrent Has(%v) disagreed with Host()", f)
	}
}

func TestHasDoesNotAllocate(t *testing.T) {
	Host()
	allocs := testing.AllocsPerRun(1000, func() {
		Has(AVX2)
	})
	if allocs != 0 {
		t.Fatalf("expected 0 allocations, got %v", allocs)
	}
}

func BenchmarkHas(b *testing.B) {
	Host()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Has(AVX2)
	}
}

func BenchmarkDetected(b *testing.B) {
	Host()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Detected("avx512vpopcntdq")
	}
}
