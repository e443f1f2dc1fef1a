package x86

import "strconv"

// Feature identifies one detectable x86 extension. Its value is the bit
// position of the feature in a Set.
type Feature uint8

// Bit returns the position of f in a Set.
func (f Feature) Bit() uint32 {
	return uint32(f)
}

// String returns the canonical name of f, the inverse of Lookup.
func (f Feature) String() string {
	if int(f) < len(catalog) {
		return catalog[f].name
	}
	return "Feature(" + strconv.Itoa(int(f)) + ")"
}

// Lookup resolves a feature name. Matching is exact and case-sensitive.
// Unknown names return an *UnknownFeatureError.
func Lookup(name string) (Feature, error) {
	for i := range catalog {
		if catalog[i].name == name {
			return Feature(i), nil
		}
	}
	for _, a := range aliases {
		if a.name == name {
			return a.feature, nil
		}
	}
	return 0, &UnknownFeatureError{Name: name}
}

// Features returns every catalogued feature in bit order.
func Features() []Feature {
	out := make([]Feature, len(catalog))
	for i := range out {
		out[i] = Feature(i)
	}
	return out
}

// Names returns every name Lookup accepts: the canonical names in bit order
// followed by the aliases.
func Names() []string {
	out := make([]string, 0, len(catalog)+len(aliases))
	for i := range catalog {
		out = append(out, catalog[i].name)
	}
	for _, a := range aliases {
		out = append(out, a.name)
	}
	return out
}

// word selects one of the CPUID output words a feature bit is read from.
type word uint8

const (
	leaf1ECX word = iota // CPUID.01H:ECX
	leaf1EDX             // CPUID.01H:EDX
	leaf7EBX             // CPUID.(EAX=07H,ECX=0):EBX
	leaf7ECX             // CPUID.(EAX=07H,ECX=0):ECX
	leafDEAX             // CPUID.(EAX=0DH,ECX=1):EAX
	ext1ECX              // CPUID.80000001H:ECX
	numWords
)

// gate is a condition that must hold, in addition to the CPUID bit, for a
// feature to be reported.
type gate uint8

const (
	gateNone gate = iota
	// gateOSAVX requires XCR0 to enable SSE and AVX state.
	gateOSAVX
	// gateOSAVX512 requires gateOSAVX plus opmask, ZMM_Hi256 and Hi16_ZMM
	// state.
	gateOSAVX512
	// gateAMD requires an AMD-family vendor string.
	gateAMD
)

// entry is one row of the capability catalog.
type entry struct {
	name string
	word word
	bit  uint8
	gate gate
}

type alias struct {
	name    string
	feature Feature
}
