package dyncast

import "reflect"

// TypeID identifies a concrete type within a single process.
//
// TypeIDs are opaque tokens meant for equality comparison only. They are
// unique per concrete type within one build, but NOT stable across builds
// or processes - never order them, persist them, or send them over a wire.
type TypeID struct {
	rtype reflect.Type
}

// TypeFor returns the TypeID of the concrete type T.
func TypeFor[T any]() TypeID {
	return TypeID{rtype: reflect.TypeFor[T]()}
}

// TypeOf returns the TypeID of ref's dynamic type.
// A nil ref has no dynamic type and yields the invalid zero TypeID.
func TypeOf(ref any) TypeID {
	return TypeID{rtype: reflect.TypeOf(ref)}
}

// Valid reports whether id identifies a type. The zero TypeID is invalid
// and compares unequal to every real type's identity.
func (id TypeID) Valid() bool {
	return id.rtype != nil
}

// Name returns the human-readable name of the identified type.
// For diagnostics and debugging only: the exact spelling is not guaranteed
// stable across compiler versions.
func (id TypeID) Name() string {
	if id.rtype == nil {
		return "<nil>"
	}
	return id.rtype.String()
}

// Name returns the human-readable name of ref's dynamic type.
// Two values constructed as the same concrete type report identical names
// within one build; values of distinct concrete types report distinct names.
func Name(ref any) string {
	return TypeOf(ref).Name()
}

// NameFor returns the human-readable name of the type T.
func NameFor[T any]() string {
	return TypeFor[T]().Name()
}
