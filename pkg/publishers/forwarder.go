package publishers

import (
	"context"
	"errors"
	"fmt"

	"github.com/Adda-Baaj/quicknews/internal/logger"
)

// Report counts deliveries for one Forward call. Delivered and Failed are
// per (sink, event) pair.
type Report struct {
	Events    int
	Delivered int
	Failed    int
}

// Forwarder sends every headline of a batch to every sink.
type Forwarder struct {
	sinks []Sink
	log   logger.Logger
}

// NewForwarder returns a Forwarder over sinks, skipping nil entries.
func NewForwarder(sinks []Sink, log logger.Logger) *Forwarder {
	if log == nil {
		log = &logger.NopLogger{}
	}
	cp := make([]Sink, 0, len(sinks))
	for _, s := range sinks {
		if s != nil {
			cp = append(cp, s)
		}
	}
	return &Forwarder{sinks: cp, log: log}
}

// Sinks returns the number of active sinks.
func (f *Forwarder) Sinks() int {
	if f == nil {
		return 0
	}
	return len(f.sinks)
}

// Forward delivers the batch sink by sink, each in headline order. A failing
// sink does not stop the others; all failures come back joined. Forward
// returns early only when ctx is done.
func (f *Forwarder) Forward(ctx context.Context, b Batch) (Report, error) {
	events := b.Events()
	rep := Report{Events: len(events)}
	if f.Sinks() == 0 || len(events) == 0 {
		return rep, nil
	}

	var errs []error
	for _, s := range f.sinks {
		for _, evt := range events {
			if err := ctx.Err(); err != nil {
				return rep, errors.Join(append(errs, err)...)
			}
			if err := s.Deliver(ctx, evt); err != nil {
				rep.Failed++
				errs = append(errs, fmt.Errorf("%s: headline %d: %w", s.Name(), evt.Position, err))
				continue
			}
			rep.Delivered++
		}
	}

	if err := errors.Join(errs...); err != nil {
		f.log.WarnObj("headline forwarding incomplete", "forward_report", map[string]any{
			"events":    rep.Events,
			"sinks":     len(f.sinks),
			"delivered": rep.Delivered,
			"failed":    rep.Failed,
		})
		return rep, err
	}
	return rep, nil
}
