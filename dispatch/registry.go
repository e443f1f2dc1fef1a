// Package dispatch selects between implementation variants of an operation
// based on the x86 extensions the CPU supports.
//
// Variants register themselves, typically from init functions, with the set
// of features they require and a priority. Lookup returns the highest-priority
// variant whose requirements are all in a given Set; Select does the same for
// the executing CPU.
//
//	var sum dispatch.Registry[func([]float64) float64]
//
//	func init() {
//		sum.Register(dispatch.Entry[func([]float64) float64]{Name: "generic", Impl: sumGeneric})
//		sum.Register(dispatch.Entry[func([]float64) float64]{
//			Name:     "avx2",
//			Requires: x86.SetOf(x86.AVX2, x86.FMA),
//			Priority: 20,
//			Impl:     sumAVX2,
//		})
//	}
package dispatch

import (
	"sync"

	"github.com/cwbudde/algo-cpufeat/x86"
)

// Entry is one implementation variant.
type Entry[F any] struct {
	// Name is a human-readable identifier (e.g., "avx2", "generic").
	Name string

	// Requires lists the features the variant needs. An empty Set marks a
	// portable fallback that is always eligible.
	Requires x86.Set

	// Priority determines selection order when several variants are
	// eligible. Higher wins; equal priorities keep registration order.
	Priority int

	// Impl is the implementation.
	Impl F
}

// Registry holds the variants of one operation. The zero value is ready to
// use. Register may be called concurrently, but all registrations should
// complete before the first Lookup. Lookups share a read lock once the
// entries are sorted.
type Registry[F any] struct {
	mu      sync.RWMutex
	entries []Entry[F]
	sorted  bool // true if entries are sorted by priority (descending)
}

// Register adds a variant.
func (r *Registry[F]) Register(entry Entry[F]) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Lookup returns the highest-priority variant whose requirements are all in
// features, or nil if none is eligible.
func (r *Registry[F]) Lookup(features x86.Set) *Entry[F] {
	for {
		r.mu.RLock()
		if r.sorted {
			break
		}
		r.mu.RUnlock()

		r.mu.Lock()
		if !r.sorted {
			r.sortByPriority()
			r.sorted = true
		}
		r.mu.Unlock()
	}
	defer r.mu.RUnlock()

	for i := range r.entries {
		entry := &r.entries[i]
		if features.HasAll(entry.Requires) {
			return entry
		}
	}
	return nil
}

// Select returns the best variant for the executing CPU.
func (r *Registry[F]) Select() *Entry[F] {
	return r.Lookup(x86.Host())
}

// sortByPriority sorts entries by priority in descending order.
// Must be called with r.mu held (write lock).
func (r *Registry[F]) sortByPriority() {
	// Insertion sort keeps equal priorities in registration order.
	for i := 1; i < len(r.entries); i++ {
		key := r.entries[i]
		j := i - 1
		for j >= 0 && r.entries[j].Priority < key.Priority {
			r.entries[j+1] = r.entries[j]
			j--
		}
		r.entries[j+1] = key
	}
}

// ListEntries returns a copy of all registered entries in selection order.
// This function is primarily intended for testing and debugging.
func (r *Registry[F]) ListEntries() []Entry[F] {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.sorted {
		r.sortByPriority()
		r.sorted = true
	}
	entries := make([]Entry[F], len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Reset clears all registered entries.
// This function is intended for testing purposes only.
func (r *Registry[F]) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
	r.sorted = false
}
