package utmp_test

import (
	"context"
	"errors"
	"runtime"
	"testing"

	"github.com/rugwirobaker/uptime/internal/utmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticSource struct {
	records []utmp.Record
	err     error
}

func (s staticSource) Records(context.Context) ([]utmp.Record, error) {
	return s.records, s.err
}

func TestCountOnlyUserProcesses(t *testing.T) {
	src := staticSource{records: []utmp.Record{
		{Type: utmp.BootTime, Line: "~"},
		{Type: utmp.RunLevel, Line: "~"},
		{Type: utmp.LoginProcess, Line: "tty1"},
		{Type: utmp.UserProcess, User: "alice", Line: "pts/0"},
		{Type: utmp.DeadProcess, Line: "pts/1"},
		{Type: utmp.UserProcess, User: "bob", Line: "pts/2"},
	}}

	assert.Equal(t, uint(2), utmp.Count(context.Background(), src))
}

func TestCountEmptySource(t *testing.T) {
	assert.Zero(t, utmp.Count(context.Background(), staticSource{}))
}

func TestCountUnavailableSource(t *testing.T) {
	src := staticSource{err: errors.New("permission denied")}
	assert.Zero(t, utmp.Count(context.Background(), src))
}

func TestTypeString(t *testing.T) {
	assert.Equal(t, "USER_PROCESS", utmp.UserProcess.String())
	assert.Equal(t, "EMPTY", utmp.Empty.String())
	assert.Equal(t, "Type(42)", utmp.Type(42).String())
}

func TestNew(t *testing.T) {
	src, err := utmp.New("host", "")
	require.NoError(t, err)
	assert.Equal(t, utmp.Host{}, src)

	_, err = utmp.New("wtmp", "")
	assert.ErrorContains(t, err, `unknown session source "wtmp"`)
}

func TestNewAccountingFile(t *testing.T) {
	if runtime.GOOS != "linux" {
		_, err := utmp.New("utmp", "/tmp/utmp")
		assert.ErrorContains(t, err, `session source "utmp" is not supported on `+runtime.GOOS)
		return
	}

	src, err := utmp.New("utmp", "/tmp/utmp")
	require.NoError(t, err)
	assert.Equal(t, utmp.File{Path: "/tmp/utmp"}, src)

	src, err = utmp.New("utmp", "")
	require.NoError(t, err)
	assert.Equal(t, utmp.File{Path: utmp.DefaultPath}, src)

	src, err = utmp.New("auto", "")
	require.NoError(t, err)
	assert.Equal(t, utmp.File{Path: utmp.DefaultPath}, src)
}
