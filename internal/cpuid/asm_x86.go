//go:build (386 || amd64) && gc && !purego

package cpuid

const haveAsm = true

// cpuid executes the CPUID instruction with the given EAX and ECX inputs.
// Defined in cpuid_x86.s.
//
//go:noescape
func cpuid(eaxArg, ecxArg uint32) (eax, ebx, ecx, edx uint32)

// xgetbv reads XCR0 (ECX = 0). Defined in cpuid_x86.s.
//
//go:noescape
func xgetbv() (eax, edx uint32)
