// Package resilience decorates the region directory with a circuit breaker
// and an in-process cache.
package resilience

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"moving/internal/core/domain/model/region"
	"moving/internal/core/ports"

	"github.com/sony/gobreaker"
)

// ErrCircuitOpen is returned while the breaker rejects calls.
var ErrCircuitOpen = errors.New("circuit open")

// StateListener is told about every breaker state change.
type StateListener interface {
	BreakerState(name string, state gobreaker.State)
}

type BreakerSettings struct {
	Name        string
	MaxRequests uint32
	Interval    time.Duration
	Timeout     time.Duration
	// MinRequests and FailureRatio decide when the breaker trips.
	MinRequests  uint32
	FailureRatio float64
}

func DefaultBreakerSettings(name string) BreakerSettings {
	return BreakerSettings{
		Name:         name,
		MaxRequests:  3,
		Interval:     15 * time.Second,
		Timeout:      30 * time.Second,
		MinRequests:  3,
		FailureRatio: 0.6,
	}
}

// BreakingDirectory stops calling a failing RegionDirectory until it recovers.
type BreakingDirectory struct {
	next ports.RegionDirectory
	cb   *gobreaker.CircuitBreaker
}

func NewBreakingDirectory(
	next ports.RegionDirectory,
	settings BreakerSettings,
	listener StateListener,
	logger *slog.Logger,
) *BreakingDirectory {
	logger = logger.With("component", "region_breaker")

	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        settings.Name,
		MaxRequests: settings.MaxRequests,
		Interval:    settings.Interval,
		Timeout:     settings.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < settings.MinRequests {
				return false
			}
			return float64(counts.TotalFailures)/float64(counts.Requests) >= settings.FailureRatio
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Info("circuit breaker state changed", "circuit", name, "from", from.String(), "to", to.String())
			if listener != nil {
				listener.BreakerState(name, to)
			}
		},
	})
	if listener != nil {
		listener.BreakerState(settings.Name, gobreaker.StateClosed)
	}

	return &BreakingDirectory{next: next, cb: cb}
}

func (d *BreakingDirectory) ListAll(ctx context.Context) (region.List, error) {
	out, err := d.cb.Execute(func() (any, error) {
		return d.next.ListAll(ctx)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return nil, fmt.Errorf("%w: %s: %w", ErrCircuitOpen, d.cb.Name(), err)
	}
	if err != nil {
		return nil, err
	}
	return out.(region.List), nil
}

// State returns the current breaker state.
func (d *BreakingDirectory) State() gobreaker.State {
	return d.cb.State()
}
