package uptime_test

import (
	"context"
	"syscall"
	"testing"
	"time"

	"github.com/rugwirobaker/uptime/internal/sys"
	"github.com/rugwirobaker/uptime/internal/sys/systest"
	"github.com/rugwirobaker/uptime/internal/uptime"
	"github.com/rugwirobaker/uptime/internal/utmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sessions []utmp.Record

func (s sessions) Records(context.Context) ([]utmp.Record, error) {
	return s, nil
}

func newReporter(k *systest.Kernel, s utmp.Source) *uptime.Reporter {
	return &uptime.Reporter{
		Clock:    func() time.Time { return morning },
		Querier:  k,
		Sessions: s,
	}
}

func TestReporterCollect(t *testing.T) {
	k := &systest.Kernel{
		Boot: sys.BootTime{Sec: morning.Add(-(25*time.Hour + time.Minute)).Unix()},
		Load: load,
	}
	s := sessions{
		{Type: utmp.BootTime},
		{Type: utmp.UserProcess, User: "alice"},
		{Type: utmp.UserProcess, User: "bob"},
	}

	r, err := newReporter(k, s).Collect(context.Background())
	require.NoError(t, err)

	assert.Equal(t, uint(2), r.Users)
	assert.Equal(t, int64(1), r.Uptime.Days)
	assert.Equal(t, "09:05  up 1 day, 1:01, 2 users, load averages: 1.23 0.87 0.45\n", uptime.Format(r))
}

func TestReporterStopsOnQueryFailure(t *testing.T) {
	tests := []struct {
		name   string
		kernel *systest.Kernel
		want   error
	}{
		{
			name:   "errno",
			kernel: &systest.Kernel{Err: syscall.EPERM},
			want:   syscall.EPERM,
		},
		{
			name:   "short reply",
			kernel: &systest.Kernel{Boot: sys.BootTime{Sec: 1}, Load: load, Short: 4},
			want:   sys.ErrSizeMismatch,
		},
		{
			name:   "zero scale",
			kernel: &systest.Kernel{Boot: sys.BootTime{Sec: 1}, Load: sys.LoadAverage{Ldavg: [3]uint32{1, 1, 1}}},
			want:   sys.ErrZeroScale,
		},
		{
			name:   "zero boot time",
			kernel: &systest.Kernel{Load: load},
			want:   sys.ErrZeroBootTime,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := newReporter(tt.kernel, sessions{}).Collect(context.Background())
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, uptime.Report{}, r)
		})
	}
}

func TestReporterCanceled(t *testing.T) {
	k := &systest.Kernel{Boot: sys.BootTime{Sec: 1}, Load: load}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r, err := newReporter(k, sessions{{Type: utmp.UserProcess}}).Collect(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, uptime.Report{}, r)
}
