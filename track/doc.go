// Package track provides a registry of live owned resources.
//
// A Tracker records which resources are currently owned, emits
// lifecycle events to observers, and audits for leaks when closed.
// It pairs with owned.Ptr: adopt through this package and the handle's
// dispose chain retires the tracker slot automatically.
//
// # Lifecycle
//
// Four events cover a tracked resource's life:
//
//	adopted  - a handle took ownership
//	moved    - ownership transferred to another handle
//	released - ownership escaped the handle system to the caller
//	disposed - the resource was destroyed
//
// # Tracked Adoption
//
//	tr := track.NewTracker()
//
//	p, slot := track.Adopt(tr, "db-conn", conn,
//		owned.WithDisposer(func(c *Conn) { c.Shutdown() }))
//	defer p.Close()
//
// Disposal retires the slot no matter which path reaches it. Release
// and Move go through the package helpers so the tracker sees them:
//
//	raw := track.Release(tr, slot, &p) // caller now owns raw
//	q := track.Move(tr, slot, &p)      // q owns; slot stays live
//
// # Observers
//
// Register observers to follow ownership transitions:
//
//	tr.Subscribe(obs) // obs.OnOwnershipEvent(e) per transition
//
// # Leak Audit
//
// Close audits whatever is still live. Every live slot is a leak: each
// is logged through the package logger (see SetLogger), and the
// returned error carries the leak count.
//
//	if err := tr.Close(); err != nil {
//	    // some resources were never disposed or released
//	}
package track
