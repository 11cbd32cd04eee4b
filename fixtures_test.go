package dyncast

// Shared test fixtures. reading/label/counter exercise the core downcast
// operations; the event hierarchy exercises declaration and membership.

type reading struct {
	Celsius int64
}

type label string

type counter struct {
	hits int64
}

// event is a custom capability hierarchy: values are accessed only through
// this interface, which hides their concrete type.
type event interface {
	eventKind() string
}

type created struct {
	ID string
}

func (created) eventKind() string { return "created" }

type deleted struct {
	ID string
}

func (deleted) eventKind() string { return "deleted" }

// renamed implements event but is deliberately never registered as a
// member in most tests.
type renamed struct {
	From, To string
}

func (renamed) eventKind() string { return "renamed" }

// tick implements event with a pointer receiver, for mutable downcasts.
type tick struct {
	n int64
}

func (*tick) eventKind() string { return "tick" }
