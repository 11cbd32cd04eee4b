// Package dyncast makes working with Go's dynamic typing smoother.
//
// Go's interface values already carry runtime type identity, and a type
// assertion is already a checked downcast. This package layers three things
// on top of that built-in facility:
//
//   - Generic helpers (Is, As, AsMut) that read as intent rather than
//     assertion syntax, with exact-identity semantics and a non-panicking
//     mismatch signal.
//   - An unchecked escape hatch (AsUnchecked, RefUnchecked, IntoUnchecked)
//     that reinterprets an interface value as a caller-asserted concrete
//     type with no identity comparison at all. A false assertion is a
//     contract violation with unspecified behavior; these exist for code
//     that has already established identity by other means.
//   - A declaration mechanism (Declare, Hierarchy) for retrofitting the
//     same capabilities onto custom interface hierarchies, with
//     shareable/transferable qualifiers and a diagnostic member universe.
//     Implementing the hierarchy interface is the only membership
//     requirement; hierarchy downcasts never diverge from the built-ins.
//
// # Type identity
//
// TypeID is an opaque, comparable, process-unique token for a concrete
// type. Compare TypeIDs for equality only: they are not ordered, not
// stable across builds, and not suitable for serialization. Type names
// (Name, NameFor) are for diagnostics only and carry the same caveat.
//
// # Concurrency
//
// Every operation is synchronous and non-blocking. The core downcast
// helpers share no mutable state and may be called concurrently on
// distinct interface values. Registry and hierarchy tables are guarded
// internally; reads run concurrently.
//
// # Error handling
//
// Downcasting has exactly one recoverable failure mode: type mismatch,
// signaled by a false ok result, never a panic. Declaration and
// registration return *RegistryError with a code identifying the
// category. Must* variants panic on error and are intended for
// package-level variable initialization.
package dyncast
