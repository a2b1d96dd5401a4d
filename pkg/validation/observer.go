package validation

import (
	"context"
	"log/slog"
)

// Observer is notified of engine activity. Implementations must not mutate
// fields; they run synchronously inside the triggering call.
type Observer interface {
	OnRevalidate(result Result)
	OnPropagate(source string, results []Result)
	OnSubmit(outcome Outcome)
}

// NopObserver ignores every notification.
type NopObserver struct{}

func (NopObserver) OnRevalidate(Result) {}

func (NopObserver) OnPropagate(string, []Result) {}

func (NopObserver) OnSubmit(Outcome) {}

// Observers fans notifications out to each non-nil observer in order.
type Observers []Observer

func (o Observers) OnRevalidate(result Result) {
	for _, obs := range o {
		if obs != nil {
			obs.OnRevalidate(result)
		}
	}
}

func (o Observers) OnPropagate(source string, results []Result) {
	for _, obs := range o {
		if obs != nil {
			obs.OnPropagate(source, results)
		}
	}
}

func (o Observers) OnSubmit(outcome Outcome) {
	for _, obs := range o {
		if obs != nil {
			obs.OnSubmit(outcome)
		}
	}
}

type logObserver struct {
	logger *slog.Logger
}

// NewLogObserver logs evaluations and propagations at debug level and
// submissions at info level.
func NewLogObserver(logger *slog.Logger) Observer {
	if logger == nil {
		logger = slog.Default()
	}
	return logObserver{logger: logger}
}

func (l logObserver) OnRevalidate(result Result) {
	l.logger.LogAttrs(context.Background(), slog.LevelDebug, "field revalidated",
		slog.String("field", result.FieldID),
		slog.Bool("valid", result.Valid),
		slog.String("rule", result.Rule),
	)
}

func (l logObserver) OnPropagate(source string, results []Result) {
	dependents := make([]string, len(results))
	for i, r := range results {
		dependents[i] = r.FieldID
	}
	l.logger.LogAttrs(context.Background(), slog.LevelDebug, "dependents revalidated",
		slog.String("source", source),
		slog.Any("dependents", dependents),
	)
}

func (l logObserver) OnSubmit(outcome Outcome) {
	l.logger.LogAttrs(context.Background(), slog.LevelInfo, "form submitted",
		slog.Bool("valid", outcome.Valid),
		slog.String("first_invalid", outcome.FirstInvalid),
	)
}
