package x86

import "sync/atomic"

// initialized is ORed into the stored bitset so that an empty Set is
// distinguishable from a cell that was never written.
const initialized = 1 << 63

// cache holds one capability bitset behind a single atomic word. The zero
// value is an uninitialized cell.
//
// Racing first callers each run detect and try to publish with a
// compare-and-swap from zero. Losers keep their own result, which is
// identical because detection is idempotent. Once a value is published it is
// never replaced and detect is never called again.
type cache struct {
	cell atomic.Uint64
}

// load returns the cached Set, running detect if nothing was published yet.
func (c *cache) load(detect func() Set) Set {
	if v := c.cell.Load(); v&initialized != 0 {
		return Set(v &^ initialized)
	}
	s := detect() &^ initialized
	c.cell.CompareAndSwap(0, uint64(s)|initialized)
	return s
}

// test reports whether bit is set in the cached Set.
func (c *cache) test(bit uint32, detect func() Set) bool {
	if bit >= 63 {
		return false
	}
	return c.load(detect)&(1<<bit) != 0
}

// ready reports whether a value has been published.
func (c *cache) ready() bool {
	return c.cell.Load()&initialized != 0
}
