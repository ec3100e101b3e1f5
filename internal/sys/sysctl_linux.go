package sys

import (
	"strconv"
	"time"

	"golang.org/x/sys/unix"
)

// suseconds_t is a long on linux.
const usecWidth = strconv.IntSize / 8

// sysinfo(2) reports load averages shifted by SI_LOAD_SHIFT.
const siLoadShift = 16

// sysinfo serves kern.boottime and vm.loadavg from sysinfo(2), encoded the
// way a BSD kernel would reply, since linux has no numeric sysctl paths.
type sysinfo struct {
	now func() time.Time
}

// Host returns the sysinfo(2) backed primitive.
func Host() Querier {
	return sysinfo{now: time.Now}
}

func (s sysinfo) Query(mib MIB, buf []byte) (int, error) {
	l := Native()

	var size int
	switch {
	case mib.equal(bootTimeMIB):
		size = l.TimevalSize()
	case mib.equal(loadavgMIB):
		size = l.LoadAverageSize()
	default:
		return 0, unix.ENOENT
	}
	if len(buf) < size {
		return 0, unix.ENOMEM
	}

	var info unix.Sysinfo_t
	if err := unix.Sysinfo(&info); err != nil {
		return 0, err
	}

	if mib.equal(bootTimeMIB) {
		l.PutBootTime(buf, BootTime{Sec: s.now().Unix() - int64(info.Uptime)})
		return size, nil
	}

	la := LoadAverage{Fscale: 1 << siLoadShift}
	for i := range la.Ldavg {
		la.Ldavg[i] = uint32(info.Loads[i])
	}
	l.PutLoadAverage(buf, la)
	return size, nil
}
