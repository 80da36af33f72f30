package automaton

import "github.com/enetx/g"

// Next accepts the event and moves to state s without a side effect.
func Next[S comparable](s S) g.Option[Transition[S]] {
	return g.Some(Transition[S]{To: s})
}

// NextDo accepts the event, runs action and moves to state s.
func NextDo[S comparable](s S, action Action) g.Option[Transition[S]] {
	return g.Some(Transition[S]{To: s, Action: action})
}

// Ignore rejects the event: the machine keeps its state and nobody is notified.
func Ignore[S comparable]() g.Option[Transition[S]] {
	return g.None[Transition[S]]()
}

// Unhandled panics with *ErrUnhandled. Rules call it from the default branch
// of their switch statements, so that a (state, event) pair missing from the
// rule fails loudly instead of being silently ignored.
//
//	switch state {
//	case Idle:
//		...
//	default:
//		return automaton.Unhandled(state, event)
//	}
func Unhandled[S, E comparable](state S, event E) g.Option[Transition[S]] {
	panic(&ErrUnhandled{State: name(state), Event: name(event)})
}
