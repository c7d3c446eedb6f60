// File: engine.go
// Role: long-lived query front end bound to one Network.
// Concurrency:
//   - SetHorizon/Horizon use an atomic; queries read the horizon once and
//     pass it into the search, so concurrent queries never see it change
//     mid-search.

package routing

import (
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/katalvlaran/lvtransit/clock"
	"github.com/katalvlaran/lvtransit/core"
)

// Engine answers routing queries over one Network with a process-wide,
// reconfigurable horizon.
type Engine struct {
	net     *core.Network
	logger  *slog.Logger
	horizon atomic.Int32
}

// NewEngine binds an Engine to net. Only the Horizon and Logger of opts are
// used; change time is given per query.
func NewEngine(net *core.Network, opts ...Option) (*Engine, error) {
	if net == nil {
		return nil, ErrNilNetwork
	}
	cfg := buildOptions(opts)
	e := &Engine{net: net, logger: cfg.Logger}
	e.horizon.Store(int32(cfg.Horizon))

	return e, nil
}

// Network returns the bound network.
func (e *Engine) Network() *core.Network { return e.net }

// SetHorizon changes the horizon. Values outside [0, 24] are rejected with
// ErrBadHorizon and the previous horizon is kept.
func (e *Engine) SetHorizon(hours int) error {
	h, err := NewHorizon(hours)
	if err != nil {
		return err
	}
	e.horizon.Store(int32(h))
	e.logger.Debug("horizon changed", "hours", hours)

	return nil
}

// Horizon returns the current horizon.
func (e *Engine) Horizon() Horizon { return Horizon(e.horizon.Load()) }

func (e *Engine) options(changeTime int) ([]Option, error) {
	if changeTime < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBadChangeTime, changeTime)
	}
	return []Option{
		WithChangeTime(changeTime),
		WithHorizon(e.Horizon()),
		WithLogger(e.logger),
	}, nil
}

// RouteTo finds the earliest-arrival route from source to dest.
func (e *Engine) RouteTo(source, dest int, start clock.Clock, changeTime int) (Route, error) {
	opts, err := e.options(changeTime)
	if err != nil {
		return Route{}, err
	}
	return RouteTo(e.net, source, dest, start, opts...)
}

// RoutesFrom returns one Route per station, indexed by station id.
func (e *Engine) RoutesFrom(source int, start clock.Clock, changeTime int) ([]Route, error) {
	opts, err := e.options(changeTime)
	if err != nil {
		return nil, err
	}
	return RoutesFrom(e.net, source, start, opts...)
}
