// Package utmp enumerates login accounting records and counts the active
// user sessions among them.
package utmp

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"time"
)

// DefaultPath is the accounting file read on linux.
const DefaultPath = "/var/run/utmp"

// Type is the ut_type discriminant of an accounting record.
type Type int16

const (
	Empty Type = iota
	RunLevel
	BootTime
	NewTime
	OldTime
	InitProcess
	LoginProcess
	UserProcess
	DeadProcess
	Accounting
)

var typeNames = [...]string{
	Empty:        "EMPTY",
	RunLevel:     "RUN_LVL",
	BootTime:     "BOOT_TIME",
	NewTime:      "NEW_TIME",
	OldTime:      "OLD_TIME",
	InitProcess:  "INIT_PROCESS",
	LoginProcess: "LOGIN_PROCESS",
	UserProcess:  "USER_PROCESS",
	DeadProcess:  "DEAD_PROCESS",
	Accounting:   "ACCOUNTING",
}

func (t Type) String() string {
	if t >= 0 && int(t) < len(typeNames) {
		return typeNames[t]
	}
	return fmt.Sprintf("Type(%d)", int16(t))
}

// Record is a single accounting entry.
type Record struct {
	Type Type
	PID  int32
	Line string
	ID   string
	User string
	Host string
	Time time.Time
}

// Source yields the accounting records present at the time of the call.
type Source interface {
	Records(ctx context.Context) ([]Record, error)
}

// Count returns the number of user-process records in src. A source that is
// empty or cannot be read counts as zero sessions.
func Count(ctx context.Context, src Source) uint {
	records, err := src.Records(ctx)
	if err != nil {
		slog.Debug("session source unavailable", "error", err)
		return 0
	}

	var n uint
	for _, r := range records {
		if r.Type == UserProcess {
			n++
		}
	}
	return n
}

// New returns the source named by kind: "utmp", "host" or "auto", which
// picks the accounting file on linux and the host session list elsewhere.
// path overrides the accounting file location. File decodes the glibc
// record layout, so "utmp" is only accepted on linux.
func New(kind, path string) (Source, error) {
	if path == "" {
		path = DefaultPath
	}

	switch kind {
	case "", "auto":
		if runtime.GOOS == "linux" {
			return File{Path: path}, nil
		}
		return Host{}, nil
	case "utmp":
		if runtime.GOOS != "linux" {
			return nil, fmt.Errorf("session source %q is not supported on %s", kind, runtime.GOOS)
		}
		return File{Path: path}, nil
	case "host":
		return Host{}, nil
	default:
		return nil, fmt.Errorf("unknown session source %q", kind)
	}
}
