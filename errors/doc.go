// Package errors provides structured error types for the runtime layer.
//
// Every fallible operation in the library returns a *Error carrying the
// processing phase (construct, access, mutate, ...) and a kind drawn from
// the error taxonomy (index_out_of_bounds, readonly, detached,
// invalid_offset, out_of_bounds, allocation). Errors are recoverable and
// caller-surfaced; nothing in the runtime layer aborts the process.
//
// Match errors either exactly:
//
//	errors.Is(err, errors.New(errors.PhaseAccess, errors.KindDetached).Build())
//
// or by kind alone using the sentinels:
//
//	errors.Is(err, errors.ErrDetached)
//
// Construct rich errors with the Builder:
//
//	return errors.New(errors.PhaseMutate, errors.KindIndexOutOfBounds).
//		Detail("insert index %d beyond length %d", i, n).
//		Build()
package errors
