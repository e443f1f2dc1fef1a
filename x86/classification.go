package x86

import "github.com/cwbudde/algo-cpufeat/internal/cpuid"

// Safety is the build-time classification of whether CPUID may be issued.
type Safety = cpuid.Safety

const (
	// SafetyNever means CPUID is never issued and every feature is absent.
	SafetyNever = cpuid.Never
	// SafetyCautious means CPUID is only issued when the run-time probe
	// confirms it or the assume-safe policy is built in.
	SafetyCautious = cpuid.Cautious
	// SafetyAlways means CPUID is statically known to exist.
	SafetyAlways = cpuid.Always
)

// Classification returns the Safety Classification of this build.
func Classification() Safety {
	return cpuid.Classification()
}
