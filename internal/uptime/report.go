package uptime

import (
	"context"
	"fmt"
	"time"

	"github.com/rugwirobaker/uptime/internal/sys"
	"github.com/rugwirobaker/uptime/internal/utmp"
)

// Reporter gathers a Report from its collaborators.
type Reporter struct {
	Clock    func() time.Time
	Querier  sys.Querier
	Sessions utmp.Source
}

// NewReporter returns a Reporter backed by the host clock and kernel.
func NewReporter(sessions utmp.Source) *Reporter {
	return &Reporter{
		Clock:    time.Now,
		Querier:  sys.Host(),
		Sessions: sessions,
	}
}

// Collect queries every source once, in order, and stops at the first
// kernel query failure. A report gathered after ctx is done is discarded.
func (r *Reporter) Collect(ctx context.Context) (Report, error) {
	now := r.Clock()

	boot, err := sys.QueryBootTime(r.Querier)
	if err != nil {
		return Report{}, fmt.Errorf("failed to read boot time: %w", err)
	}

	load, err := sys.QueryLoadAverage(r.Querier)
	if err != nil {
		return Report{}, fmt.Errorf("failed to read load averages: %w", err)
	}

	users := utmp.Count(ctx, r.Sessions)
	if err := ctx.Err(); err != nil {
		return Report{}, err
	}

	return Report{
		Now:    now,
		Load:   load,
		Uptime: Compute(now, boot),
		Users:  users,
	}, nil
}
