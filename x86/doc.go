// Package x86 reports, at run time, which x86 instruction-set extensions the
// executing CPU supports.
//
// Detection uses only the CPUID and XGETBV instructions, so it needs no
// operating-system service, no heap and no locks. The first query runs the
// detection once and caches the result in a single atomic word; every later
// query is a load and a bit test.
//
// Two query surfaces are provided:
//
//	if x86.Has(x86.AVX2) { ... }           // static: unknown names do not compile
//	ok, err := x86.Detected("avx2")        // dynamic: unknown names return ErrUnknownFeature
//
// Vector extensions are only reported when the operating system has enabled
// the matching register state in XCR0: a CPU advertising AVX under an OS that
// does not save YMM registers reports AVX as absent.
//
// # Architectures
//
// Detection is implemented for GOARCH=386 and GOARCH=amd64. On every other
// architecture the feature constants and Has do not exist, so unguarded uses
// fail to compile; Detected returns an error wrapping both
// ErrUnsupportedArchitecture and ErrUnknownFeature, and Host returns an
// empty Set. Guard static queries with a build constraint:
//
//	//go:build 386 || amd64
//
// # Safety classification
//
// CPUID is an illegal instruction on sufficiently old 32-bit processors.
// Whether it is issued is decided per build, see Classification and the
// build tags documented in the internal cpuid package (cpufeat_nocpuid,
// cpufeat_probe, cpufeat_assume_cpuid, purego). When CPUID must not be
// issued every feature is reported absent; no error is raised.
package x86
