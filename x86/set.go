package x86

import (
	"math/bits"
	"strings"
)

// Set is a capability bitset: bit i is set iff Feature(i) is present.
type Set uint64

// Has reports whether f is in s.
func (s Set) Has(f Feature) bool {
	return f < 64 && s&(1<<f) != 0
}

// HasAll reports whether every feature in want is in s.
func (s Set) HasAll(want Set) bool {
	return s&want == want
}

// With returns s with fs added.
func (s Set) With(fs ...Feature) Set {
	for _, f := range fs {
		if f < 64 {
			s |= 1 << f
		}
	}
	return s
}

// Len returns the number of features in s.
func (s Set) Len() int {
	return bits.OnesCount64(uint64(s))
}

// Features returns the features in s in bit order.
func (s Set) Features() []Feature {
	out := make([]Feature, 0, s.Len())
	for v := uint64(s); v != 0; v &= v - 1 {
		out = append(out, Feature(bits.TrailingZeros64(v)))
	}
	return out
}

// Strings returns the canonical names of the features in s in bit order.
func (s Set) Strings() []string {
	fs := s.Features()
	out := make([]string, len(fs))
	for i, f := range fs {
		out[i] = f.String()
	}
	return out
}

// String returns the feature names joined by commas.
func (s Set) String() string {
	return strings.Join(s.Strings(), ",")
}

// SetOf builds a Set from individual features.
func SetOf(fs ...Feature) Set {
	return Set(0).With(fs...)
}
