package allocator

import (
	"fmt"
	"os"
)

// errorClass distinguishes the three classes of trouble this package can
// encounter. Only classOSMappingFailure is ever surfaced as a
// diagnostic; the other two are handled silently (a nil return, or a
// no-op).
type errorClass int

const (
	classAllocationFailure errorClass = iota
	classOSMappingFailure
	classMisuseOnFree
)

// AllocError is the internal representation of the three error classes.
// It is never returned from a public entry point — alloc_X returns a bare
// nil on failure, and Free never reports misuse — but it gives the one
// path that may legitimately abort (OS mapping failure) a consistent
// shape.
type AllocError struct {
	class   errorClass
	message string
}

func (e *AllocError) Error() string {
	return e.message
}

func newMappingError(arena string, size int, cause error) *AllocError {
	return &AllocError{
		class:   classOSMappingFailure,
		message: fmt.Sprintf("allocator: failed to map %d-byte %s arena: %v", size, arena, cause),
	}
}

// fatalf terminates the process with a short diagnostic on os.Stderr.
// This is the only path in the package that may abort the process.
func fatalf(err *AllocError) {
	fmt.Fprintln(os.Stderr, err.Error())
	os.Exit(1)
}
