package automaton

// Interface compliance check.
var (
	_ StateMachine[int, int, Unit] = (*Machine[int, int, Unit])(nil)
	_ StateMachine[int, int, Unit] = (*SyncMachine[int, int, Unit])(nil)
)

// HandleEvent is the thread-safe version of Machine.HandleEvent.
// Calling it from the machine's own rule, action or observer deadlocks.
func (sm *SyncMachine[S, E, T]) HandleEvent(event E) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.m.HandleEvent(event)
}

// Trigger is the thread-safe version of Machine.Trigger.
func (sm *SyncMachine[S, E, T]) Trigger(event E) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	return sm.m.Trigger(event)
}

// Can is the thread-safe version of Machine.Can.
// It takes the write lock: the rule is caller code and may read the subject
// while another goroutine's action is mutating it.
func (sm *SyncMachine[S, E, T]) Can(event E) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	return sm.m.Can(event)
}

// Current is the thread-safe version of Machine.Current.
func (sm *SyncMachine[S, E, T]) Current() S {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	return sm.m.Current()
}

// Subject returns the machine's subject. Reading or writing the subject's
// contents outside of an action is not synchronized.
func (sm *SyncMachine[S, E, T]) Subject() T { return sm.m.Subject() }

// ID returns the wrapped machine's identifier.
func (sm *SyncMachine[S, E, T]) ID() string { return sm.m.ID() }

// SetObserver is the thread-safe version of Machine.SetObserver.
func (sm *SyncMachine[S, E, T]) SetObserver(o Observer[S, E]) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.m.SetObserver(o)
}

// ClearObserver is the thread-safe version of Machine.ClearObserver.
func (sm *SyncMachine[S, E, T]) ClearObserver() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.m.ClearObserver()
}
