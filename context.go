package automaton

// Handle is the read-only view of a machine passed to a Rule.
// It gives the rule access to the current state and the subject without
// letting it drive the machine.
type Handle[S comparable, T any] interface {
	Current() S
	Subject() T
	ID() string
}

// handle exposes a running machine through Handle.
type handle[S, E comparable, T any] struct{ m *Machine[S, E, T] }

func (h handle[S, E, T]) Current() S { return h.m.current }
func (h handle[S, E, T]) Subject() T { return h.m.subject }
func (h handle[S, E, T]) ID() string { return h.m.id }

// probe is a detached Handle pinned to a single state, used when a rule is
// evaluated outside of any machine.
type probe[S comparable, T any] struct {
	state   S
	subject T
}

func (p probe[S, T]) Current() S { return p.state }
func (p probe[S, T]) Subject() T { return p.subject }
func (p probe[S, T]) ID() string { return "" }
