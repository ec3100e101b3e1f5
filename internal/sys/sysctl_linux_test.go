package sys

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestSysinfoLoadAverage(t *testing.T) {
	la, err := QueryLoadAverage(Host())
	require.NoError(t, err)
	assert.Equal(t, uint64(1<<siLoadShift), la.Fscale)
}

func TestSysinfoBootTime(t *testing.T) {
	now := time.Unix(1700000000, 0)
	bt, err := QueryBootTime(sysinfo{now: func() time.Time { return now }})
	require.NoError(t, err)
	assert.LessOrEqual(t, bt.Sec, now.Unix())
	assert.Zero(t, bt.Usec)
}

func TestSysinfoUnknownPath(t *testing.T) {
	_, err := Host().Query(MIB{1, 65}, make([]byte, 64))
	assert.True(t, errors.Is(err, unix.ENOENT))
}

func TestSysinfoShortBuffer(t *testing.T) {
	_, err := Host().Query(loadavgMIB, make([]byte, 4))
	assert.True(t, errors.Is(err, unix.ENOMEM))
}
