//go:build 386 && gc && !purego && cpufeat_probe

package cpuid

const probeCompiled = true

// hasCPUID reports whether the ID flag (bit 21) of EFLAGS can be toggled,
// which is how CPUs that implement CPUID advertise it. Defined in probe_386.s.
func hasCPUID() bool

func probe() bool {
	return hasCPUID()
}
