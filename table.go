package automaton

import (
	"errors"
	"fmt"

	"github.com/enetx/g"
)

// Edge is one accepted (state, event) pair of a rule.
type Edge[S, E comparable] struct {
	From   S
	Event  E
	To     S
	Action bool
}

// Table is the transition table of a Structure over a declared set of states
// and events, as produced by Explore.
type Table[S, E comparable] struct {
	initial S
	current g.Option[S]
	states  g.Slice[S]
	events  g.Slice[E]
	edges   g.Slice[Edge[S, E]]
}

// Explore evaluates the rule for every pair of states and events and records
// the accepted ones. Actions are never run. The rule sees a handle reporting
// the evaluated state and subject, and an empty ID.
//
// Rules are caller code and may panic: *ErrUnhandled raised through Unhandled
// is returned as is, any other panic is wrapped in *ErrRule. All failures are
// joined into the returned error, and the table still lists every pair that
// could be evaluated.
func (st *Structure[S, E, T]) Explore(subject T, states g.Slice[S], events g.Slice[E]) (*Table[S, E], error) {
	t := &Table[S, E]{
		initial: st.initial,
		current: g.None[S](),
		states:  g.NewSlice[S](),
		events:  g.NewSlice[E](),
		edges:   g.NewSlice[Edge[S, E]](),
	}

	seenStates := g.NewSet[S]()
	seenStates.Insert(st.initial)
	t.states.Push(st.initial)

	for s := range states.Iter() {
		if !seenStates.Contains(s) {
			seenStates.Insert(s)
			t.states.Push(s)
		}
	}

	seenEvents := g.NewSet[E]()
	for e := range events.Iter() {
		if !seenEvents.Contains(e) {
			seenEvents.Insert(e)
			t.events.Push(e)
		}
	}

	var errs []error

	for s := range t.states.Iter() {
		for e := range t.events.Iter() {
			result, err := st.evaluate(s, e, subject)
			if err != nil {
				errs = append(errs, err)
				continue
			}

			if result.IsNone() {
				continue
			}

			tr := result.Some()
			t.edges.Push(Edge[S, E]{From: s, Event: e, To: tr.To, Action: tr.Action != nil})
		}
	}

	return t, errors.Join(errs...)
}

// Validate reports whether the rule handles every pair of states and events
// without panicking. It is meant for tests: Go has no exhaustive switch, and
// Validate turns a forgotten case ending in Unhandled into an error.
func (st *Structure[S, E, T]) Validate(subject T, states g.Slice[S], events g.Slice[E]) error {
	_, err := st.Explore(subject, states, events)
	return err
}

// evaluate runs the rule once for state and event, recovering from panics.
func (st *Structure[S, E, T]) evaluate(state S, event E, subject T) (result g.Option[Transition[S]], err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		if unhandled, ok := r.(*ErrUnhandled); ok {
			err = unhandled
			return
		}

		cause, ok := r.(error)
		if !ok {
			cause = fmt.Errorf("panic: %v", r)
		}

		err = &ErrRule{State: name(state), Event: name(event), Err: cause}
	}()

	return st.rule(state, event, subject, probe[S, T]{state: state, subject: subject}), nil
}

// Initial returns the initial state of the explored Structure.
func (t *Table[S, E]) Initial() S { return t.initial }

// States returns the explored states, initial state first, in declaration order.
func (t *Table[S, E]) States() g.Slice[S] { return t.states.Clone() }

// Events returns the explored events in declaration order.
func (t *Table[S, E]) Events() g.Slice[E] { return t.events.Clone() }

// Edges returns every accepted transition, ordered by state then event.
func (t *Table[S, E]) Edges() g.Slice[Edge[S, E]] { return t.edges.Clone() }

// Target returns the state the rule moves to from state on event, or None if
// the event is ignored there.
func (t *Table[S, E]) Target(state S, event E) g.Option[S] {
	for edge := range t.edges.Iter() {
		if edge.From == state && edge.Event == event {
			return g.Some(edge.To)
		}
	}

	return g.None[S]()
}

// Accepts reports whether event is accepted in state.
func (t *Table[S, E]) Accepts(state S, event E) bool { return t.Target(state, event).IsSome() }

// Terminal returns the states that accept no event at all.
func (t *Table[S, E]) Terminal() g.Slice[S] {
	outgoing := g.NewSet[S]()
	for edge := range t.edges.Iter() {
		outgoing.Insert(edge.From)
	}

	terminal := g.NewSlice[S]()
	for s := range t.states.Iter() {
		if !outgoing.Contains(s) {
			terminal.Push(s)
		}
	}

	return terminal
}

// Mark returns a copy of the table highlighting current as the state a
// machine is in, for ToDOT and MarshalJSON.
func (t *Table[S, E]) Mark(current S) *Table[S, E] {
	marked := *t
	marked.current = g.Some(current)

	return &marked
}
