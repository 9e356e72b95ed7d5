package reporter

import (
	"context"
	"errors"
	"time"
)

// Acquisition failures, categorized so operators can tell a revoked
// permission apart from a flaky receiver.
var (
	ErrPermissionDenied    = errors.New("location permission denied")
	ErrPositionUnavailable = errors.New("position unavailable")
	ErrAcquisitionTimeout  = errors.New("position acquisition timed out")
)

// Position is a single device fix. Accuracy is the estimated error
// radius in meters as reported by the source.
type Position struct {
	Latitude  float64
	Longitude float64
	Accuracy  float64
	SampledAt time.Time
}

// WatchHandle identifies an active position watch so it can be cleared.
type WatchHandle int

// GeolocationSource abstracts the device positioning backend. Implementations
// must invoke the watch callbacks from a single goroutine and must report
// failures using the categorized errors above (wrapped or bare).
type GeolocationSource interface {
	// GetCurrentPosition blocks for one high-accuracy fix.
	GetCurrentPosition(ctx context.Context) (Position, error)

	// WatchPosition starts continuous acquisition. Each new fix is passed to
	// onSample, acquisition failures to onError. The watch keeps running
	// after an error is reported; stopping is the caller's decision.
	WatchPosition(onSample func(Position), onError func(error)) (WatchHandle, error)

	// ClearWatch stops the watch. Clearing an unknown handle is a no-op.
	ClearWatch(handle WatchHandle)
}
