// Package errors provides structured error types for the owned module.
//
// Errors are categorized by Phase (where in the ownership lifecycle the
// error occurred) and Kind (error category). The Error type carries the
// resource name, detail message, and cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseAudit, errors.KindLeak).
//		Resource("db-conn").
//		Detail("still owned at close").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.Leaked(3)
//	err := errors.Load("mod.wasm", cause)
//
// All errors implement the standard error interface and support
// errors.Is/As.
package errors
