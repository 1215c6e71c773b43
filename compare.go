package owned

import "unsafe"

// Comparison over handles is pure reference identity: two handles
// compare by the addresses they hold, never by the pointed-to values.
// The two handles may own different resource types. Empty handles
// compare equal to each other and less than any owning handle.

func addr[T any](p *Ptr[T]) uintptr {
	return uintptr(unsafe.Pointer(p.raw))
}

// Equal reports whether a and b hold the same reference.
func Equal[T, U any](a *Ptr[T], b *Ptr[U]) bool {
	return addr(a) == addr(b)
}

// NotEqual reports whether a and b hold different references.
func NotEqual[T, U any](a *Ptr[T], b *Ptr[U]) bool {
	return addr(a) != addr(b)
}

// Less reports whether a's reference orders before b's.
func Less[T, U any](a *Ptr[T], b *Ptr[U]) bool {
	return addr(a) < addr(b)
}

// LessEqual reports whether a's reference orders before b's or equals it.
func LessEqual[T, U any](a *Ptr[T], b *Ptr[U]) bool {
	return addr(a) <= addr(b)
}

// Greater reports whether a's reference orders after b's.
func Greater[T, U any](a *Ptr[T], b *Ptr[U]) bool {
	return addr(a) > addr(b)
}

// GreaterEqual reports whether a's reference orders after b's or equals it.
func GreaterEqual[T, U any](a *Ptr[T], b *Ptr[U]) bool {
	return addr(a) >= addr(b)
}
