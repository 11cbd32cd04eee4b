package dyncast

import "github.com/roach88/dyncast/internal/eface"

// AsUnchecked returns the value of type T stored in ref without verifying
// that ref's dynamic type is T.
//
// The caller asserts the dynamic type is exactly T. No identity comparison
// is performed; a false assertion is a contract violation and the result
// is unspecified at the memory level. Use only where identity has already
// been established by other means (typically a prior checked downcast
// hoisted out of a hot loop); everywhere else, use As.
//
// T must be a concrete type. For value types the result is a copy of the
// stored value, read out through the same representation a successful
// checked downcast would use; for pointer types it is the stored pointer
// itself.
func AsUnchecked[T any](ref any) T {
	var claimed T
	return eface.Rebox(any(claimed), ref).(T)
}

// RefUnchecked returns a pointer to the T stored inside ref's backing
// storage, without verifying that ref's dynamic type is T.
//
// Same contract as AsUnchecked, plus a representation constraint: T must
// be a type the runtime stores indirectly in an interface (structs,
// arrays, strings, numbers - anything that is not itself pointer-shaped).
// For pointer, map, channel, or function types there is no backing box to
// point into; use AsUnchecked for those.
//
// The result is a shared view: treat it as read-only. The runtime may back
// interface values holding compile-time constants with read-only memory.
// For mutable access store a pointer and downcast it with AsUnchecked[*T],
// mirroring AsMut on the checked path.
func RefUnchecked[T any](ref any) *T {
	return (*T)(eface.Data(ref))
}

// IntoUnchecked consumes ref and returns its underlying value as a T,
// without verifying that ref's dynamic type is T.
//
// Same contract as AsUnchecked; the distinct name records transfer of
// ownership at the call site. After the call the caller must not use ref
// again - the returned T is the value.
func IntoUnchecked[T any](ref any) T {
	return AsUnchecked[T](ref)
}
