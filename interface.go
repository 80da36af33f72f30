package automaton

// StateMachine is implemented by both Machine and SyncMachine.
type StateMachine[S, E comparable, T any] interface {
	HandleEvent(E)
	Trigger(E) error
	Can(E) bool
	Current() S
	Subject() T
	ID() string
	SetObserver(Observer[S, E])
	ClearObserver()
}
