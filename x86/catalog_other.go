//go:build !386 && !amd64

package x86

// The catalog is empty outside x86: no feature constants exist and every
// name is unknown.
var (
	catalog [0]entry
	aliases [0]alias
)
