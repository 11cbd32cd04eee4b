package dyncast

import (
	"reflect"
	"strings"
)

// Qualifier is a bitmask of concurrency contracts a hierarchy declares for
// its values.
//
// Go has no compiler-enforced thread affinity, so qualifiers are declared
// contracts rather than checked properties: a hierarchy that declares
// Shareable promises its members tolerate concurrent shared use, and one
// that declares Transferable promises members may be handed off between
// goroutines. The declaration is carried on the hierarchy for diagnostics
// and API documentation; enforcement is the implementors' obligation.
type Qualifier uint8

const (
	// Shareable hierarchies promise members are safe for concurrent use
	// from multiple goroutines.
	Shareable Qualifier = 1 << iota

	// Transferable hierarchies promise members may be handed off to
	// another goroutine.
	Transferable
)

// String returns the qualifier set in a fixed order, or "none".
func (q Qualifier) String() string {
	if q == 0 {
		return "none"
	}
	var parts []string
	if q&Shareable != 0 {
		parts = append(parts, "shareable")
	}
	if q&Transferable != 0 {
		parts = append(parts, "transferable")
	}
	return strings.Join(parts, "|")
}

// Hierarchy is a declared capability hierarchy rooted at the interface
// type I.
//
// Declaring a hierarchy retrofits the downcast capabilities onto a custom
// interface. Implementing I is the only membership requirement: IsMember,
// AsMember and AsMemberMut behave exactly like the package-level Is, As
// and AsMut on every value of I. The unchecked operations need no
// hierarchy-scoped spelling - AsUnchecked, RefUnchecked and IntoUnchecked
// accept any interface value, hierarchy values included.
//
// AddMember additionally records types in a named universe for diagnostics
// (Member, Registry.Snapshot); recording never affects downcast results.
// A Hierarchy is safe for concurrent use.
type Hierarchy[I any] struct {
	reg *Registry
	rec *hierarchyRecord
}

// Declare declares a hierarchy named name over the interface type I in the
// default registry.
//
// Typical use declares the hierarchy next to the interface definition:
//
//	type Shape interface {
//		Area() float64
//	}
//
//	var Shapes = dyncast.MustDeclare[Shape]("shapes", dyncast.Shareable)
func Declare[I any](name string, quals Qualifier) (*Hierarchy[I], error) {
	return DeclareIn[I](DefaultRegistry, name, quals)
}

// DeclareIn declares a hierarchy named name over the interface type I in r.
//
// I must be an interface type, and name must not already be declared in r;
// violations return a *RegistryError with ErrCodeNotInterface or
// ErrCodeDuplicateHierarchy.
func DeclareIn[I any](r *Registry, name string, quals Qualifier) (*Hierarchy[I], error) {
	iface := reflect.TypeFor[I]()
	if iface.Kind() != reflect.Interface {
		return nil, &RegistryError{
			Code:      ErrCodeNotInterface,
			Message:   "hierarchy root must be an interface type",
			Hierarchy: name,
			Type:      iface.String(),
		}
	}

	rec, err := r.declareHierarchy(name, iface, quals)
	if err != nil {
		return nil, err
	}
	return &Hierarchy[I]{reg: r, rec: rec}, nil
}

// MustDeclare is like Declare but panics on error. Use for package-level
// hierarchy variables, where a declaration error is a programming bug.
func MustDeclare[I any](name string, quals Qualifier) *Hierarchy[I] {
	h, err := Declare[I](name, quals)
	if err != nil {
		panic(err)
	}
	return h
}

// Name returns the hierarchy's declared name.
func (h *Hierarchy[I]) Name() string {
	return h.rec.name
}

// Qualifiers returns the declared qualifier set.
func (h *Hierarchy[I]) Qualifiers() Qualifier {
	return h.rec.quals
}

// Shareable reports whether the hierarchy declares concurrent shared use.
func (h *Hierarchy[I]) Shareable() bool {
	return h.rec.quals&Shareable != 0
}

// Transferable reports whether the hierarchy declares goroutine handoff.
func (h *Hierarchy[I]) Transferable() bool {
	return h.rec.quals&Transferable != 0
}

// Member reports whether id was recorded in the hierarchy's diagnostic
// universe with AddMember.
func (h *Hierarchy[I]) Member(id TypeID) bool {
	return h.reg.isMember(h.rec, id)
}

// TypeName returns the human-readable name of ref's concrete type, for
// diagnostics. Identical to the package-level Name.
func (h *Hierarchy[I]) TypeName(ref I) string {
	return Name(ref)
}

// AddMember records the concrete type T in h's diagnostic universe, for
// Member queries and registry snapshots. Recording is not required for
// downcasting: every type implementing h's interface downcasts through h
// already.
//
// T must implement h's interface; a type that does not returns a
// *RegistryError with ErrCodeNotMember. Recording the same member twice
// is a no-op.
func AddMember[T any, I any](h *Hierarchy[I]) error {
	id := TypeFor[T]()
	if !id.rtype.Implements(h.rec.iface) {
		return &RegistryError{
			Code:      ErrCodeNotMember,
			Message:   "type does not implement the hierarchy interface",
			Hierarchy: h.rec.name,
			Type:      id.Name(),
		}
	}
	h.reg.addMember(h.rec, id)
	return nil
}

// MustAddMember is like AddMember but panics on error. Use next to the
// member type's definition.
func MustAddMember[T any, I any](h *Hierarchy[I]) {
	if err := AddMember[T](h); err != nil {
		panic(err)
	}
}

// IsMember reports whether ref's dynamic type is exactly T. The identity
// predicate is the same as Is: implementing h's interface is the only
// membership requirement, so the hierarchy-scoped predicate never diverges
// from the built-in one.
func IsMember[T any, I any](h *Hierarchy[I], ref I) bool {
	return Is[T](any(ref))
}

// AsMember performs a checked downcast of ref to the concrete type T.
//
// It behaves exactly like As - same identity predicate, same mismatch
// signal - for every type implementing h's interface, whether or not the
// type was recorded with AddMember.
func AsMember[T any, I any](h *Hierarchy[I], ref I) (T, bool) {
	return As[T](any(ref))
}

// AsMemberMut performs a checked downcast of ref to a mutable *T, with the
// same pointer requirement as AsMut: ref must hold a *T.
func AsMemberMut[T any, I any](h *Hierarchy[I], ref I) (*T, bool) {
	return AsMut[T](any(ref))
}
