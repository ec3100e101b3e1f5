// Package uptime turns kernel and session state into the traditional
// one-line uptime report.
package uptime

import (
	"log/slog"
	"time"

	"github.com/rugwirobaker/uptime/internal/sys"
)

// Duration is the time since boot expressed at four independent
// magnitudes. Each field is the whole elapsed time truncated to its unit;
// remainders are taken when the report is rendered.
type Duration struct {
	Days    int64
	Hours   int64
	Minutes int64
	Seconds int64
}

// Compute derives the time since boot. A boot time later than now is
// clamped to zero elapsed seconds.
func Compute(now time.Time, boot sys.BootTime) Duration {
	elapsed := now.Unix() - boot.Sec
	if elapsed < 0 {
		slog.Debug("boot time is in the future, clamping uptime", "boot", boot.Sec, "now", now.Unix())
		elapsed = 0
	}

	return Duration{
		Days:    elapsed / 86400,
		Hours:   elapsed / 3600,
		Minutes: elapsed / 60,
		Seconds: elapsed,
	}
}
