package dyncast

// Is reports whether the dynamic type of ref is exactly T.
//
// T should be a concrete type. Is never fails and has no side effects;
// a nil ref has no dynamic type and is not any T.
func Is[T any](ref any) bool {
	_, ok := ref.(T)
	return ok
}

// As performs a checked downcast of ref to the concrete type T.
//
// It returns the stored value and true iff ref's dynamic type is exactly T.
// On mismatch it returns the zero T and false - never a panic - and ref is
// left untouched. As succeeds exactly when Is[T] reports true.
func As[T any](ref any) (T, bool) {
	v, ok := ref.(T)
	return v, ok
}

// AsMut performs a checked downcast of ref to a mutable *T.
//
// Mutable access requires that the caller stored a pointer: AsMut succeeds
// iff ref's dynamic type is exactly *T. Interfaces hold copies of
// non-pointer values, so handing out a pointer into the interface's own
// storage would mutate a copy no other reference can see; AsMut refuses
// that and returns nil, false instead.
//
// The returned pointer aliases the caller's original *T. Exclusive use for
// the duration of a mutation is the caller's obligation, exactly as it is
// for any other Go pointer.
func AsMut[T any](ref any) (*T, bool) {
	p, ok := ref.(*T)
	return p, ok
}
