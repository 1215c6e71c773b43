package track

import (
	"github.com/wippyai/owned"
)

// Adopt wraps owned.Adopt so the resulting handle reports its lifetime
// to tr. The returned slot identifies the resource in the tracker for
// as long as it stays owned.
//
// Disposal is reported automatically: the handle's dispose chain
// retires the slot, however the disposal is reached (Reset, Assign,
// Close, scope exit). Release and Move are invisible to a handle's
// dispose chain, so report those through the Release and Move helpers.
//
// Adopting nil registers nothing and returns slot 0.
func Adopt[T any](tr *Tracker, label string, v *T, opts ...owned.Option[T]) (owned.Ptr[T], Handle) {
	p := owned.Adopt(v, opts...)
	if !p.Valid() {
		return p, 0
	}
	h := tr.Register(label)
	if h == 0 {
		// tracker closed; the handle still owns the resource
		return p, 0
	}
	p.OnDispose(func(*T) { tr.Disposed(h) })
	return p, h
}

// Release escapes ownership out of a tracked handle: the raw reference
// is returned, the handle empties, and the slot retires with a
// released event. The caller owns the resource's eventual disposal.
func Release[T any](tr *Tracker, h Handle, p *owned.Ptr[T]) *T {
	raw := p.Release()
	if raw != nil {
		tr.Released(h)
	}
	return raw
}

// Move transfers ownership out of p into the returned handle and
// records the transfer against the slot. The slot stays live; the
// dispose chain travels with the resource.
func Move[T any](tr *Tracker, h Handle, p *owned.Ptr[T]) owned.Ptr[T] {
	out := p.Move()
	if out.Valid() {
		tr.Moved(h)
	}
	return out
}
