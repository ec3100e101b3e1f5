// Package sys reads the kernel state the uptime report is built from: the
// boot timestamp and the fixed-point load averages.
package sys

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	ctlKern      = 1
	ctlVM        = 2
	kernBoottime = 21
	vmLoadavg    = 2
)

var (
	ErrSizeMismatch = errors.New("reply size does not match structure size")
	ErrZeroScale    = errors.New("load average scale is zero")
	ErrZeroBootTime = errors.New("boot time is zero")
	ErrUnsupported  = errors.New("kernel query not supported on this platform")
)

// MIB is a numeric sysctl path.
type MIB []int32

var (
	bootTimeMIB = MIB{ctlKern, kernBoottime}
	loadavgMIB  = MIB{ctlVM, vmLoadavg}
)

func (m MIB) String() string {
	switch {
	case m.equal(bootTimeMIB):
		return "kern.boottime"
	case m.equal(loadavgMIB):
		return "vm.loadavg"
	}
	parts := make([]string, len(m))
	for i, v := range m {
		parts[i] = strconv.Itoa(int(v))
	}
	return strings.Join(parts, ".")
}

func (m MIB) equal(o MIB) bool {
	if len(m) != len(o) {
		return false
	}
	for i := range m {
		if m[i] != o[i] {
			return false
		}
	}
	return true
}

// Querier is the raw kernel query primitive. Query fills buf with the value
// found at mib and returns the number of bytes the kernel wrote.
type Querier interface {
	Query(mib MIB, buf []byte) (int, error)
}

// QueryError reports a failed or untrustworthy kernel query.
type QueryError struct {
	Path MIB
	Err  error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("sysctl %s: %v", e.Path, e.Err)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

// LoadAverage holds the 1, 5 and 15 minute load averages as fixed-point
// values sharing a single scale.
type LoadAverage struct {
	Ldavg  [3]uint32
	Fscale uint64
}

// Values returns the load averages as floating-point numbers.
func (la LoadAverage) Values() [3]float64 {
	var v [3]float64
	if la.Fscale == 0 {
		return v
	}
	for i, x := range la.Ldavg {
		v[i] = float64(x) / float64(la.Fscale)
	}
	return v
}

// BootTime is the moment the kernel considers itself started.
type BootTime struct {
	Sec  int64
	Usec int64
}

func (b BootTime) Time() time.Time {
	return time.Unix(b.Sec, b.Usec*int64(time.Microsecond))
}

// QueryLoadAverage reads vm.loadavg.
func QueryLoadAverage(q Querier) (LoadAverage, error) {
	l := Native()

	buf := make([]byte, l.LoadAverageSize())
	if err := query(q, loadavgMIB, buf); err != nil {
		return LoadAverage{}, err
	}

	la := l.decodeLoadAverage(buf)
	if la.Fscale == 0 {
		return LoadAverage{}, &QueryError{Path: loadavgMIB, Err: ErrZeroScale}
	}
	return la, nil
}

// QueryBootTime reads kern.boottime.
func QueryBootTime(q Querier) (BootTime, error) {
	l := Native()

	buf := make([]byte, l.TimevalSize())
	if err := query(q, bootTimeMIB, buf); err != nil {
		return BootTime{}, err
	}

	bt := l.decodeBootTime(buf)
	if bt.Sec == 0 {
		return BootTime{}, &QueryError{Path: bootTimeMIB, Err: ErrZeroBootTime}
	}
	return bt, nil
}

func query(q Querier, mib MIB, buf []byte) error {
	n, err := q.Query(mib, buf)
	if err != nil {
		return &QueryError{Path: mib, Err: err}
	}
	if n != len(buf) {
		return &QueryError{
			Path: mib,
			Err:  fmt.Errorf("%w: got %d bytes, want %d", ErrSizeMismatch, n, len(buf)),
		}
	}
	return nil
}
