package navigation

import (
	"context"

	"github.com/zeusync/navsim/internal/core/systems/physics"
	"github.com/zeusync/navsim/pkg/concurrent"
)

// Options configures Simulate.
type Options struct {
	// Waypoint is the starting waypoint offset for ModeWaypoint.
	Waypoint physics.Point
	// Concurrent runs both modes on separate goroutines.
	Concurrent bool
	// Observer receives every step of both modes. May be nil.
	Observer Observer
}

// DefaultOptions returns options matching the standard puzzle rules.
func DefaultOptions() Options {
	return Options{
		Waypoint:   DefaultWaypoint,
		Concurrent: true,
	}
}

// Report holds the result of each mode.
type Report struct {
	Heading  Result
	Waypoint Result
}

// Results returns the mode results in reporting order.
func (r Report) Results() []Result {
	return []Result{r.Heading, r.Waypoint}
}

// Simulate runs both interpretations over the same instructions. Each mode
// owns its own navigator, so the only shared value is the read-only
// instruction slice.
func Simulate(ctx context.Context, ins Instructions, opts Options) (Report, error) {
	navs := []Navigator{
		NewHeadingNavigator(),
		NewWaypointNavigator(opts.Waypoint),
	}
	results := make([]Result, len(navs))

	run := func(ctx context.Context, idx int) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		results[idx] = Run(navs[idx], ins, opts.Observer)
		return nil
	}

	indexes := []int{0, 1}
	var err error
	if opts.Concurrent {
		err = concurrent.ConcurrentContext(ctx, indexes, run)
	} else {
		err = concurrent.Sequential(ctx, indexes, run)
	}
	if err != nil {
		return Report{}, err
	}

	return Report{Heading: results[0], Waypoint: results[1]}, nil
}
