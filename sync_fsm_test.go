package automaton_test

import (
	"sync"
	"testing"

	. "github.com/enetx/automaton"
	"github.com/enetx/g"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type (
	PumpState int
	PumpEvent int
)

const (
	Stopped PumpState = iota
	Running
)

const (
	Start PumpEvent = iota
	Tick
	Stop
)

type Counter struct{ Ticks int }

func pumpRule(state PumpState, event PumpEvent, c *Counter, _ Handle[PumpState, *Counter]) g.Option[Transition[PumpState]] {
	switch state {
	case Stopped:
		if event == Start {
			return Next(Running)
		}

		return Ignore[PumpState]()
	case Running:
		switch event {
		case Tick:
			return NextDo(Running, func() { c.Ticks++ })
		case Stop:
			return Next(Stopped)
		case Start:
			return Ignore[PumpState]()
		}
	}

	return Unhandled(state, event)
}

func TestSyncMachine_ConcurrentEvents(t *testing.T) {
	const (
		workers = 32
		ticks   = 200
	)

	counter := &Counter{}
	sm := New(Stopped, pumpRule).Instantiate(counter).Sync()

	notified := 0
	sm.SetObserver(func(PumpState, PumpEvent, PumpState) { notified++ })

	require.NoError(t, sm.Trigger(Start))

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for range ticks {
				sm.HandleEvent(Tick)
				_ = sm.Current()
				_ = sm.Can(Stop)
			}
		}()
	}

	wg.Wait()

	assert.Equal(t, workers*ticks, counter.Ticks)
	assert.Equal(t, workers*ticks+1, notified)
	assert.Equal(t, Running, sm.Current())
}

func TestSyncMachine_StateMachine(t *testing.T) {
	m := New(Stopped, pumpRule).Instantiate(&Counter{})

	machines := []StateMachine[PumpState, PumpEvent, *Counter]{
		New(Stopped, pumpRule).Instantiate(&Counter{}),
		m.Sync(),
	}

	for _, sm := range machines {
		assert.NotEmpty(t, sm.ID())
		assert.Equal(t, Stopped, sm.Current())

		var invalid *ErrInvalidTransition
		require.ErrorAs(t, sm.Trigger(Tick), &invalid)

		calls := 0
		sm.SetObserver(func(PumpState, PumpEvent, PumpState) { calls++ })

		assert.True(t, sm.Can(Start))
		sm.HandleEvent(Start)
		sm.HandleEvent(Tick)
		sm.ClearObserver()
		sm.HandleEvent(Stop)

		assert.Equal(t, Stopped, sm.Current())
		assert.Equal(t, 2, calls)
		assert.Equal(t, 1, sm.Subject().Ticks)
	}

	assert.Equal(t, m.ID(), machines[1].ID())
}
