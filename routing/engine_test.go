package routing_test

import (
	"bytes"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtransit/clock"
	"github.com/katalvlaran/lvtransit/routing"
)

func TestNewEngine_NilNetwork(t *testing.T) {
	_, err := routing.NewEngine(nil)
	assert.ErrorIs(t, err, routing.ErrNilNetwork)
}

func TestEngine_Horizon(t *testing.T) {
	net := network(t, 2, hop{l1, 0, 0, 1, "09:30", "09:40"})
	e, err := routing.NewEngine(net)
	require.NoError(t, err)
	assert.Equal(t, routing.MaxHorizon, e.Horizon())
	assert.Same(t, net, e.Network())

	r, err := e.RouteTo(0, 1, clock.New(8, 0), 0)
	require.NoError(t, err)
	assert.False(t, r.Empty())

	require.NoError(t, e.SetHorizon(1))
	assert.Equal(t, 1, e.Horizon().Hours())
	r, err = e.RouteTo(0, 1, clock.New(8, 0), 0)
	require.NoError(t, err)
	assert.True(t, r.Empty(), "departure 90 minutes out is beyond a 1h horizon")

	// Rejected values keep the previous horizon.
	assert.ErrorIs(t, e.SetHorizon(25), routing.ErrBadHorizon)
	assert.ErrorIs(t, e.SetHorizon(-3), routing.ErrBadHorizon)
	assert.Equal(t, 1, e.Horizon().Hours())
}

func TestEngine_BadChangeTime(t *testing.T) {
	e, err := routing.NewEngine(network(t, 1))
	require.NoError(t, err)

	_, err = e.RouteTo(0, 0, clock.Midnight, -1)
	assert.ErrorIs(t, err, routing.ErrBadChangeTime)
	_, err = e.RoutesFrom(0, clock.Midnight, -1)
	assert.ErrorIs(t, err, routing.ErrBadChangeTime)
}

func TestEngine_LogsQueries(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	net := network(t, 2, hop{l1, 0, 0, 1, "08:00", "08:10"})

	e, err := routing.NewEngine(net, routing.WithLogger(logger), routing.WithHorizon(6))
	require.NoError(t, err)
	assert.Equal(t, 6, e.Horizon().Hours())

	_, err = e.RoutesFrom(0, clock.New(8, 0), 3)
	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "route search finished")
	assert.Contains(t, out, "query=")
	assert.Contains(t, out, "settled=1")
	assert.Contains(t, out, "change_time=3")
}

// Queries are independent: concurrent searches with a concurrently changing
// horizon must all complete and each see a consistent horizon.
func TestEngine_ConcurrentQueries(t *testing.T) {
	net := network(t, 4,
		hop{l1, 0, 0, 1, "08:00", "08:10"},
		hop{l1, 0, 1, 2, "08:10", "08:20"},
		hop{l2, 0, 2, 3, "08:30", "08:40"},
	)
	e, err := routing.NewEngine(net)
	require.NoError(t, err)

	const workers = 32
	var wg sync.WaitGroup
	wg.Add(workers + 1)
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			_ = e.SetHorizon(i % 25)
		}
	}()
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := 0; i < 20; i++ {
				routes, err := e.RoutesFrom(0, clock.New(8, 0), 5)
				if !assert.NoError(t, err) || !assert.Len(t, routes, 4) {
					return
				}
				// Whatever horizon was read, a reachable C implies a reachable B.
				if !routes[2].Empty() {
					assert.False(t, routes[1].Empty())
				}
			}
		}()
	}
	wg.Wait()
}
