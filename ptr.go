package owned

// Disposer is optionally implemented by resource values that need
// cleanup when their owning handle destroys them.
type Disposer interface {
	Dispose()
}

// Ptr is a move-only owning handle. It is either empty or owns exactly
// one resource, and disposes that resource exactly once when it is
// reset, reassigned, or closed. The zero value is an empty handle.
//
// Handles transfer ownership instead of sharing it: Move and Assign
// leave their source empty. Copying a Ptr by plain Go assignment is a
// misuse (it would create two owners); always transfer through Move,
// Assign, or Swap.
type Ptr[T any] struct {
	raw     *T
	dispose func(*T)
}

// Option configures how an adopted reference is disposed.
type Option[T any] func(*Ptr[T])

// WithDisposer binds an explicit disposal function to the handle. It
// is called at most once, with the owned reference, when the handle
// destroys its resource.
func WithDisposer[T any](fn func(*T)) Option[T] {
	return func(p *Ptr[T]) {
		p.dispose = fn
	}
}

// Adopt takes ownership of v, which may be nil. The caller must hold
// no other owning reference to v after Adopt returns.
//
// If no WithDisposer option is given and *T implements Disposer, the
// resource is disposed through that interface. With neither, destroy
// only empties the handle.
func Adopt[T any](v *T, opts ...Option[T]) Ptr[T] {
	p := Ptr[T]{raw: v}
	for _, opt := range opts {
		opt(&p)
	}
	if p.dispose == nil {
		if _, ok := any(v).(Disposer); ok {
			p.dispose = func(t *T) { any(t).(Disposer).Dispose() }
		}
	}
	return p
}

// Move transfers ownership out of p into the returned handle. p is
// empty afterward. Moving an empty handle yields an empty handle.
func (p *Ptr[T]) Move() Ptr[T] {
	out := Ptr[T]{raw: p.raw, dispose: p.dispose}
	p.raw = nil
	p.dispose = nil
	return out
}

// Assign transfers ownership from src into p, disposing whatever p
// previously held. src is empty afterward. Assigning a handle to
// itself is a no-op.
//
// The transfer goes through a temporary: src's reference moves into
// the temporary, the temporary swaps with p, and the temporary (now
// holding p's old resource) is destroyed.
func (p *Ptr[T]) Assign(src *Ptr[T]) {
	tmp := src.Move()
	p.Swap(&tmp)
	tmp.destroy()
}

// Reset disposes the held resource, if any. The handle is empty
// afterward. Resetting an empty handle is a no-op.
func (p *Ptr[T]) Reset() {
	p.destroy()
}

// ResetTo disposes the current resource and adopts v, keeping the
// handle's disposer. Panics if v is non-nil and is the reference the
// handle already holds: that would dispose v and then own it dead.
func (p *Ptr[T]) ResetTo(v *T) {
	if v != nil && v == p.raw {
		panic("owned: ResetTo called with the currently held reference")
	}
	p.destroy()
	p.raw = v
}

// OnDispose chains fn to run after the handle's current disposal step.
// The chain travels with the resource through Move, Assign, and Swap,
// and runs at most once, when the resource is destroyed. Release
// detaches the resource without running it.
func (p *Ptr[T]) OnDispose(fn func(*T)) {
	prev := p.dispose
	p.dispose = func(t *T) {
		if prev != nil {
			prev(t)
		}
		fn(t)
	}
}

// Swap exchanges the two handles' resources and disposers in place.
// No disposal occurs; both handles remain valid owners of what the
// other previously owned. Swap never fails.
func (p *Ptr[T]) Swap(other *Ptr[T]) {
	p.raw, other.raw = other.raw, p.raw
	p.dispose, other.dispose = other.dispose, p.dispose
}

// Release returns the held reference and empties the handle without
// disposing anything. Ownership escapes to the caller, who becomes
// responsible for eventual disposal.
func (p *Ptr[T]) Release() *T {
	raw := p.raw
	p.raw = nil
	return raw
}

// Valid reports whether the handle currently owns a resource.
func (p *Ptr[T]) Valid() bool {
	return p.raw != nil
}

// Get returns the raw reference without transferring ownership. It is
// nil when the handle is empty.
func (p *Ptr[T]) Get() *T {
	return p.raw
}

// MustGet returns the raw reference, panicking if the handle is empty.
// Use it where an empty handle is a programming error.
func (p *Ptr[T]) MustGet() *T {
	if p.raw == nil {
		panic("owned: handle is empty")
	}
	return p.raw
}

// Deref returns a copy of the owned value, panicking if the handle is
// empty.
func (p *Ptr[T]) Deref() T {
	return *p.MustGet()
}

// Close destroys the held resource, if any, and empties the handle.
// It always returns nil; the error return exists so a Ptr fits defer
// and io.Closer-shaped call sites. Close is idempotent.
func (p *Ptr[T]) Close() error {
	p.destroy()
	return nil
}

// destroy is the single disposal path. Every operation that gives up
// a resource routes through here.
func (p *Ptr[T]) destroy() {
	if p.raw == nil {
		return
	}
	if p.dispose != nil {
		p.dispose(p.raw)
	}
	p.raw = nil
}
