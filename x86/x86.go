//go:build 386 || amd64

package x86

import "github.com/cwbudde/algo-cpufeat/internal/cpuid"

// host caches the features of the executing CPU for the process lifetime.
var host cache

func detectHost() Set {
	return detectFeatures(cpuid.Classification(), cpuid.Hardware{})
}

// Has reports whether the executing CPU supports f. The first call runs
// detection; later calls read the cached result.
func Has(f Feature) bool {
	return host.test(f.Bit(), detectHost)
}

// Detected reports whether the executing CPU supports the named feature.
// Unknown names return an error matching ErrUnknownFeature, never false
// with a nil error.
func Detected(name string) (bool, error) {
	f, err := Lookup(name)
	if err != nil {
		return false, err
	}
	return Has(f), nil
}

// Host returns every feature supported by the executing CPU.
func Host() Set {
	return host.load(detectHost)
}
