// Package eface provides raw access to the runtime representation of
// empty interface values. It exists so the unchecked downcast path can
// reinterpret an interface's data word without the root package touching
// unsafe directly.
//
// An empty interface value is two words: a pointer identifying the dynamic
// type and a data word. For most types the data word points at a heap box
// holding the value; for pointer-shaped types (pointers, maps, channels,
// functions) the runtime stores the value directly in the data word.
package eface

import "unsafe"

// Header is the memory layout of an empty interface value.
type Header struct {
	Type unsafe.Pointer
	Data unsafe.Pointer
}

// Data returns ref's data word. For an indirectly stored value this is a
// pointer to the value's backing storage; for a pointer-shaped value it is
// the value itself.
func Data(ref any) unsafe.Pointer {
	return (*Header)(unsafe.Pointer(&ref)).Data
}

// Rebox returns an interface value carrying proto's type word and ref's
// data word. proto supplies the claimed dynamic type; ref supplies the
// underlying representation. The caller asserts that ref's stored value
// really has proto's dynamic type - Rebox performs no verification, and a
// false assertion produces an interface value whose behavior is undefined.
//
// Rebox is shape-correct for every concrete proto type: when the claimed
// type is stored indirectly both data words are box pointers, and when it
// is pointer-shaped both data words are the value itself.
func Rebox(proto, ref any) any {
	(*Header)(unsafe.Pointer(&proto)).Data = (*Header)(unsafe.Pointer(&ref)).Data
	return proto
}
