//go:build !(386 && gc && !purego && cpufeat_probe)

package cpuid

const probeCompiled = false

func probe() bool {
	return false
}
