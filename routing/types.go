// File: types.go
// Role: sentinel errors, Horizon and functional options for the search.

package routing

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/lvtransit/clock"
)

// Sentinel errors returned by the routing package.
var (
	// ErrNilNetwork indicates that a nil *core.Network was passed.
	ErrNilNetwork = errors.New("routing: network is nil")

	// ErrStationNotFound indicates a source or destination id that is not in the network.
	ErrStationNotFound = errors.New("routing: station not found in network")

	// ErrBadHorizon indicates a horizon outside [0, 24] hours.
	ErrBadHorizon = errors.New("routing: horizon must be within [0, 24] hours")

	// ErrBadChangeTime indicates a negative change time.
	ErrBadChangeTime = errors.New("routing: change time must be non-negative")

	// ErrCorruptLabels indicates that following predecessor edges did not
	// reach the source within the edge count of the network.
	ErrCorruptLabels = errors.New("routing: predecessor chain does not reach the source")
)

// MaxHorizon is the largest horizon in hours: one full day.
const MaxHorizon Horizon = 24

// Horizon bounds, in hours, how far after the query start an edge may depart.
type Horizon int

// NewHorizon validates hours against [0, 24].
func NewHorizon(hours int) (Horizon, error) {
	if hours < 0 || hours > int(MaxHorizon) {
		return 0, fmt.Errorf("%w: got %d", ErrBadHorizon, hours)
	}
	return Horizon(hours), nil
}

// Hours returns the horizon in hours.
func (h Horizon) Hours() int { return int(h) }

// Minutes returns the inclusive departure limit in minutes after the query start.
func (h Horizon) Minutes() int { return int(h) * clock.MinutesPerHour }

// Options configures a search.
//
// ChangeTime – minimum minutes between arriving and boarding a different line (≥ 0).
// Horizon    – departure window in hours after the query start, [0, 24].
// Logger     – receives debug records per query; silent by default.
type Options struct {
	ChangeTime int
	Horizon    Horizon
	Logger     *slog.Logger
}

// Option represents a functional option for configuring a search.
type Option func(*Options)

// DefaultOptions returns ChangeTime 0, Horizon 24 and a discarding logger.
func DefaultOptions() Options {
	return Options{
		ChangeTime: 0,
		Horizon:    MaxHorizon,
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithChangeTime sets the stopover penalty for switching lines, in minutes.
// Panics on negative values.
func WithChangeTime(minutes int) Option {
	if minutes < 0 {
		panic(ErrBadChangeTime.Error())
	}
	return func(o *Options) { o.ChangeTime = minutes }
}

// WithHorizon sets the departure window. Panics outside [0, 24]; use
// NewHorizon to validate user input first.
func WithHorizon(h Horizon) Option {
	if h < 0 || h > MaxHorizon {
		panic(ErrBadHorizon.Error())
	}
	return func(o *Options) { o.Horizon = h }
}

// WithLogger routes debug output to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("routing: WithLogger(nil)")
	}
	return func(o *Options) { o.Logger = l }
}

func buildOptions(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
