package automaton

import (
	"context"
	"log/slog"

	"github.com/enetx/g"
)

// LogObserver returns an Observer writing one structured record per
// transition to logger. id is attached to every record, usually the machine's
// ID. If logger is nil, slog.Default() is used.
//
//	m.SetObserver(automaton.LogObserver[State, Event](logger, m.ID()))
func LogObserver[S, E comparable](logger *slog.Logger, id string) Observer[S, E] {
	if logger == nil {
		logger = slog.Default()
	}

	return func(from S, event E, to S) {
		logger.Info("transition",
			slog.String("machine", id),
			slog.Any("from", from),
			slog.Any("event", event),
			slog.Any("to", to),
		)
	}
}

// LogIgnored wraps rule so that every event it ignores is logged at debug
// level, including evaluations made by Machine.Can. The rule's decisions
// are left untouched. If logger is nil, slog.Default() is used.
func LogIgnored[S, E comparable, T any](rule Rule[S, E, T], logger *slog.Logger) Rule[S, E, T] {
	if logger == nil {
		logger = slog.Default()
	}

	return func(state S, event E, subject T, m Handle[S, T]) (result g.Option[Transition[S]]) {
		result = rule(state, event, subject, m)
		if result.IsNone() && logger.Enabled(context.Background(), slog.LevelDebug) {
			logger.Debug("event ignored",
				slog.String("machine", m.ID()),
				slog.Any("state", state),
				slog.Any("event", event),
			)
		}

		return result
	}
}
