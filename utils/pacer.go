package utils

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Pacer spaces out calls to a rate-limited collaborator. The pipeline waits on
// a pacer between geocode, photo, transport and restaurant-search calls; tests
// inject NopPacer to run without real delays.
type Pacer interface {
	Wait(ctx context.Context)
}

type intervalPacer struct {
	limiter *rate.Limiter
}

// NewIntervalPacer returns a Pacer that allows one call per interval.
func NewIntervalPacer(interval time.Duration) Pacer {
	return &intervalPacer{limiter: rate.NewLimiter(rate.Every(interval), 1)}
}

func (p *intervalPacer) Wait(ctx context.Context) {
	// Wait only fails on context cancellation; the pipeline treats that the
	// same as the delay having elapsed and lets the next call fail naturally.
	_ = p.limiter.Wait(ctx)
}

type nopPacer struct{}

// NopPacer never waits.
func NopPacer() Pacer { return nopPacer{} }

func (nopPacer) Wait(context.Context) {}
