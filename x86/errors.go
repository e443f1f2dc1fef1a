package x86

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownFeature is matched by every error for a name that is not
	// in the capability catalog.
	ErrUnknownFeature = errors.New("x86: unknown feature")

	// ErrUnsupportedArchitecture is returned by dynamic queries on
	// architectures other than 386 and amd64.
	ErrUnsupportedArchitecture = errors.New("x86: feature detection requires GOARCH=386 or GOARCH=amd64")
)

// UnknownFeatureError reports a feature name that Lookup does not know.
type UnknownFeatureError struct {
	Name string
}

func (e *UnknownFeatureError) Error() string {
	return fmt.Sprintf("x86: unknown feature %q", e.Name)
}

// Is makes errors.Is(err, ErrUnknownFeature) hold.
func (e *UnknownFeatureError) Is(target error) bool {
	return target == ErrUnknownFeature
}
