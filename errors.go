package vmem

import "fmt"

// InvariantError marks a condition that a correct, validated Config should
// make unreachable. Seeing one means the tree or the allocator logic is
// broken, not that the caller passed bad input; callers should treat it
// the way the teacher's "Sanity check failed" panics are treated: a signal
// to fix the code, not to retry.
type InvariantError struct {
	Msg string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("vmem: invariant violated: %s", e.Msg)
}

func invariantViolation(format string, args ...interface{}) {
	panic(&InvariantError{Msg: fmt.Sprintf(format, args...)})
}
