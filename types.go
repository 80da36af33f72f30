package automaton

import (
	"sync"

	"github.com/enetx/g"
)

type (
	// Unit is the subject type of a machine that manages no external data.
	Unit = struct{}

	// Action is a side effect run when a transition is accepted, before the
	// machine's state is overwritten.
	Action func()

	// Observer is notified after every accepted transition, once the machine
	// already reports the new state.
	Observer[S, E comparable] func(from S, event E, to S)

	// Rule decides what an event does in a given state. It returns None when
	// the event is ignored in that state, or Some transition otherwise.
	// A rule must handle every (state, event) pair; use Unhandled for the
	// combinations that must never occur.
	Rule[S, E comparable, T any] func(state S, event E, subject T, m Handle[S, T]) g.Option[Transition[S]]

	// Transition is the outcome of an accepted event: the next state and an
	// optional action to run before entering it.
	Transition[S comparable] struct {
		To     S
		Action Action
	}

	// Structure is the immutable definition of an automaton: an initial state
	// and a rule. It is safe to share between goroutines and is used to create
	// any number of independent machines.
	Structure[S, E comparable, T any] struct {
		initial S
		rule    Rule[S, E, T]
	}

	// Machine is a running automaton bound to one subject.
	// A Machine is not safe for concurrent use; see Sync.
	Machine[S, E comparable, T any] struct {
		id       string
		current  S
		subject  T
		rule     Rule[S, E, T]
		observer Observer[S, E]
		stepping bool
	}

	// SyncMachine is a thread-safe wrapper around a Machine.
	// It serializes every operation with a sync.RWMutex, so events delivered
	// from different goroutines are still handled one at a time.
	SyncMachine[S, E comparable, T any] struct {
		m  *Machine[S, E, T]
		mu sync.RWMutex
	}
)
