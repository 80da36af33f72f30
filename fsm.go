// Package automaton provides a generic, synchronous finite state machine.
//
// A Structure holds the immutable definition of an automaton: an initial state
// and a Rule deciding, for a state and an incoming event, whether the event is
// ignored or which state comes next and which Action runs on the way. A
// Structure creates any number of independent Machines, each bound to its own
// subject, the host data that actions mutate.
//
// Events are handled one at a time and to completion. An event the rule
// ignores is not an error: HandleEvent silently does nothing. Trigger is the
// strict variant reporting *ErrInvalidTransition instead.
package automaton

import "github.com/google/uuid"

// New creates a Structure with the given initial state and rule.
func New[S, E comparable, T any](initial S, rule Rule[S, E, T]) *Structure[S, E, T] {
	if rule == nil {
		panic("automaton: nil rule")
	}

	return &Structure[S, E, T]{initial: initial, rule: rule}
}

// Initial returns the state every new machine starts in.
func (st *Structure[S, E, T]) Initial() S { return st.initial }

// Instantiate creates a new machine in the initial state, bound to subject.
// Machines created from the same Structure share its rule and nothing else.
func (st *Structure[S, E, T]) Instantiate(subject T) *Machine[S, E, T] {
	return &Machine[S, E, T]{
		id:      uuid.NewString(),
		current: st.initial,
		subject: subject,
		rule:    st.rule,
	}
}

// Unbound creates a machine that manages no external data.
func Unbound[S, E comparable](st *Structure[S, E, Unit]) *Machine[S, E, Unit] {
	return st.Instantiate(Unit{})
}

// ID returns the identifier assigned to the machine at instantiation.
func (m *Machine[S, E, T]) ID() string { return m.id }

// Current returns the machine's current state.
func (m *Machine[S, E, T]) Current() S { return m.current }

// Subject returns the subject the machine was instantiated with.
func (m *Machine[S, E, T]) Subject() T { return m.subject }

// SetObserver replaces the machine's observer. A nil observer silences
// notifications.
func (m *Machine[S, E, T]) SetObserver(o Observer[S, E]) { m.observer = o }

// ClearObserver removes the machine's observer.
func (m *Machine[S, E, T]) ClearObserver() { m.observer = nil }

// HandleEvent feeds event to the machine.
//
// If the rule ignores the event in the current state, nothing happens.
// Otherwise the transition's action runs first, while Current still reports
// the old state, then the state is updated and finally the observer, if any,
// is called with the old state, the event and the new state.
//
// Panics raised by the action or the observer propagate to the caller
// unchanged; a state already written is not rolled back. Calling HandleEvent
// on the same machine from inside its rule, action or observer panics with
// *ErrReentrant.
func (m *Machine[S, E, T]) HandleEvent(event E) { m.step(event) }

// Trigger behaves like HandleEvent but returns *ErrInvalidTransition when the
// rule ignores the event.
func (m *Machine[S, E, T]) Trigger(event E) error {
	if !m.step(event) {
		return &ErrInvalidTransition{From: name(m.current), Event: name(event)}
	}

	return nil
}

// Can reports whether the rule accepts event in the current state.
// The rule is evaluated, but no action runs and the state does not change.
func (m *Machine[S, E, T]) Can(event E) bool {
	return m.rule(m.current, event, m.subject, handle[S, E, T]{m}).IsSome()
}

// step runs one event through the machine and reports whether it was accepted.
func (m *Machine[S, E, T]) step(event E) bool {
	if m.stepping {
		panic(&ErrReentrant{State: name(m.current), Event: name(event)})
	}

	m.stepping = true
	defer func() { m.stepping = false }()

	from := m.current

	result := m.rule(from, event, m.subject, handle[S, E, T]{m})
	if result.IsNone() {
		return false
	}

	t := result.Some()

	if t.Action != nil {
		t.Action()
	}

	m.current = t.To

	if m.observer != nil {
		m.observer(from, event, t.To)
	}

	return true
}

// Sync returns a thread-safe wrapper around the machine. The machine must not
// be used directly afterwards.
func (m *Machine[S, E, T]) Sync() *SyncMachine[S, E, T] {
	return &SyncMachine[S, E, T]{m: m}
}
