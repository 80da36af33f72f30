package automaton

import (
	"fmt"

	"github.com/enetx/g"
)

// name formats a state or event the way fmt prints it. The error types below
// carry such names rather than typed values, which keeps them usable with
// errors.As whatever the machine's type arguments are.
func name(v any) g.String { return g.String(fmt.Sprint(v)) }

// ErrInvalidTransition is returned by Trigger when the rule ignores the event
// in the machine's current state. HandleEvent never reports it.
type ErrInvalidTransition struct {
	From  g.String
	Event g.String
}

func (e *ErrInvalidTransition) Error() string {
	return fmt.Sprintf("automaton: no transition for event %q from state %q", string(e.Event), string(e.From))
}

// ErrUnhandled is the panic value of Unhandled. Explore and Validate recover it
// and return it as an error. It marks a (state, event) pair the rule does not
// cover, which is a defect in the rule rather than an ignored event.
type ErrUnhandled struct {
	State g.String
	Event g.String
}

func (e *ErrUnhandled) Error() string {
	return fmt.Sprintf("automaton: unhandled state/event combination: state %q, event %q", string(e.State), string(e.Event))
}

// ErrReentrant is the panic value raised when HandleEvent or Trigger is called
// on a machine from inside its own rule, action or observer.
type ErrReentrant struct {
	State g.String
	Event g.String
}

func (e *ErrReentrant) Error() string {
	return fmt.Sprintf("automaton: reentrant event %q while handling a transition from state %q", string(e.Event), string(e.State))
}

// ErrRule is returned by Explore and Validate when a rule panics with anything
// other than *ErrUnhandled. It wraps the recovered value, allowing it to be
// inspected using errors.Is and errors.As.
type ErrRule struct {
	State g.String
	Event g.String
	Err   error
}

func (e *ErrRule) Error() string {
	return fmt.Sprintf("automaton: rule failed for state %q, event %q: %v", string(e.State), string(e.Event), e.Err)
}

// Unwrap returns the error recovered from the rule.
func (e *ErrRule) Unwrap() error { return e.Err }
