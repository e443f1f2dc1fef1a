//go:build !386 && !amd64

package x86

import "fmt"

// Detected always fails outside x86. The error matches both
// ErrUnsupportedArchitecture and ErrUnknownFeature.
func Detected(name string) (bool, error) {
	return false, fmt.Errorf("%w: %w", ErrUnsupportedArchitecture, &UnknownFeatureError{Name: name})
}

// Host returns an empty Set outside x86.
func Host() Set {
	return 0
}
