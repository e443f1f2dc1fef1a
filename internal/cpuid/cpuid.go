// Package cpuid wraps the x86 identification instructions and resolves, per
// build, whether issuing CPUID is safe on the compilation target.
//
// The Safety Classification is fixed at build time by GOARCH, GO386 and the
// following build tags:
//
//   - cpufeat_nocpuid: never issue CPUID (isolated or enclave environments).
//   - cpufeat_probe: on targets classified Cautious, compile in the EFLAGS.ID
//     run-time probe and trust its answer.
//   - cpufeat_assume_cpuid: on targets classified Cautious without the probe,
//     assume CPUID is available instead of reporting no features.
//   - purego: no assembly is built; CPUID is never issued.
package cpuid

// Safety describes whether CPUID can be issued on the compilation target.
type Safety uint8

const (
	// Never means CPUID is statically known to trap or be unavailable.
	Never Safety = iota

	// Cautious means safety is unknown. The instruction is only issued when
	// the run-time probe confirms it or the assume-safe policy is built in.
	Cautious

	// Always means CPUID is statically guaranteed to exist.
	Always
)

// String returns a human-readable name for the classification.
func (s Safety) String() string {
	switch s {
	case Never:
		return "never"
	case Cautious:
		return "cautious"
	case Always:
		return "always"
	default:
		return "unknown"
	}
}

// ProbeCompiled reports whether the EFLAGS.ID run-time probe is built in.
const ProbeCompiled = probeCompiled

// AssumeSafe reports whether Cautious targets without a probe assume CPUID
// is available.
const AssumeSafe = assumeSafe

// Classification returns the Safety Classification resolved for this build.
// Builds without the instruction wrappers are always classified Never.
func Classification() Safety {
	if !haveAsm {
		return Never
	}
	return baseline
}

// Usable reports whether CPUID may be issued under s.
func Usable(s Safety) bool {
	switch s {
	case Always:
		return true
	case Cautious:
		if probeCompiled {
			return probe()
		}
		return assumeSafe
	default:
		return false
	}
}

// Registers is a source of CPUID and XGETBV results. Hardware reads the
// executing CPU; tests substitute simulated register files.
type Registers interface {
	// CPUID returns EAX, EBX, ECX and EDX for the given leaf and sub-leaf.
	CPUID(leaf, subleaf uint32) (eax, ebx, ecx, edx uint32)

	// XGETBV returns the low and high words of XCR0.
	XGETBV() (eax, edx uint32)
}

// Hardware issues the real instructions. Callers must check Usable first.
type Hardware struct{}

// CPUID executes the CPUID instruction.
func (Hardware) CPUID(leaf, subleaf uint32) (eax, ebx, ecx, edx uint32) {
	return cpuid(leaf, subleaf)
}

// XGETBV reads XCR0. It must only be called when CPUID.1:ECX reports both
// XSAVE and OSXSAVE.
func (Hardware) XGETBV() (eax, edx uint32) {
	return xgetbv()
}
