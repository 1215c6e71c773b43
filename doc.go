// Package owned provides move-only owning handles for heap resources.
//
// A Ptr[T] holds exclusive responsibility for releasing one resource
// exactly once. Ownership moves between handles instead of being
// duplicated: transferring from a handle leaves it empty, and a
// resource is never referenced by two live handles at once.
//
// # Architecture Overview
//
// The module is organized into a small set of packages:
//
//	owned/          Root package: Ptr[T], the move-only owning handle
//	├── track/      Live-ownership registry with observers and leak audit
//	├── errors/     Structured error types for the tracking layers
//	├── wasmown/    Owned handles over wazero guest lifetimes
//	└── cmd/handles Interactive inspector for a live tracker
//
// # Quick Start
//
// Adopt a resource and let defer dispose it:
//
//	f := openThing()
//	p := owned.Adopt(f, owned.WithDisposer(func(t *Thing) { t.Shutdown() }))
//	defer p.Close()
//
//	use(p.MustGet())
//
// Transfer ownership to another handle:
//
//	q := p.Move() // p is now empty; q will dispose the resource
//
// Hand the raw reference back out of the handle system:
//
//	raw := q.Release() // q is empty; caller must dispose raw itself
//
// # Disposal
//
// Disposal is pluggable. WithDisposer binds an explicit function;
// without it, a resource whose type implements Disposer is disposed
// through that interface. Either way, every exit path (Reset, ResetTo,
// assignment, Close) routes through a single destroy step, so the
// resource is disposed at most once.
//
// # Concurrency
//
// A Ptr is not safe for concurrent use; exactly one goroutine may
// manipulate a given handle at a time. The track.Tracker, being shared
// infrastructure, is internally synchronized.
package owned
