//go:build !(386 || amd64) || !gc || purego

package cpuid

const haveAsm = false

func cpuid(eaxArg, ecxArg uint32) (eax, ebx, ecx, edx uint32) {
	return 0, 0, 0, 0
}

func xgetbv() (eax, edx uint32) {
	return 0, 0
}
