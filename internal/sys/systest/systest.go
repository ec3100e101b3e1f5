// Package systest provides an in-memory kernel for tests.
package systest

import (
	"syscall"

	"github.com/rugwirobaker/uptime/internal/sys"
)

// Kernel answers kern.boottime and vm.loadavg from fixed values. Short, when
// set, is subtracted from every reply size. Err fails every query.
type Kernel struct {
	Boot  sys.BootTime
	Load  sys.LoadAverage
	Short int
	Err   error
}

func (k *Kernel) Query(mib sys.MIB, buf []byte) (int, error) {
	if k.Err != nil {
		return 0, k.Err
	}

	l := sys.Native()
	switch mib.String() {
	case "kern.boottime":
		l.PutBootTime(buf, k.Boot)
	case "vm.loadavg":
		l.PutLoadAverage(buf, k.Load)
	default:
		return 0, syscall.ENOENT
	}
	return len(buf) - k.Short, nil
}
