package sys

import (
	"encoding/binary"
	"strconv"
)

// Layout describes how the kernel lays out struct loadavg and struct timeval
// in a reply buffer. Word is the width of a C long, UsecWidth the width of
// tv_usec.
type Layout struct {
	Word      int
	UsecWidth int
	Order     binary.ByteOrder
}

// Native returns the layout of the running kernel.
func Native() Layout {
	return Layout{
		Word:      strconv.IntSize / 8,
		UsecWidth: usecWidth,
		Order:     binary.NativeEndian,
	}
}

// LoadAverageSize is the size of struct loadavg { fixpt_t ldavg[3]; long fscale; }.
func (l Layout) LoadAverageSize() int {
	return l.fscaleOffset() + l.Word
}

// TimevalSize is the size of struct timeval { time_t tv_sec; suseconds_t tv_usec; }.
func (l Layout) TimevalSize() int {
	return align(l.Word+l.UsecWidth, l.Word)
}

func (l Layout) fscaleOffset() int {
	return align(3*4, l.Word)
}

func (l Layout) decodeLoadAverage(b []byte) LoadAverage {
	var la LoadAverage
	for i := range la.Ldavg {
		la.Ldavg[i] = l.Order.Uint32(b[i*4:])
	}
	la.Fscale = l.readUint(b[l.fscaleOffset():], l.Word)
	return la
}

func (l Layout) decodeBootTime(b []byte) BootTime {
	return BootTime{
		Sec:  l.readInt(b, l.Word),
		Usec: l.readInt(b[l.Word:], l.UsecWidth),
	}
}

// PutLoadAverage encodes la into b the way the kernel replies to vm.loadavg.
func (l Layout) PutLoadAverage(b []byte, la LoadAverage) {
	for i, v := range la.Ldavg {
		l.Order.PutUint32(b[i*4:], v)
	}
	l.putUint(b[l.fscaleOffset():], l.Word, la.Fscale)
}

// PutBootTime encodes bt into b as a struct timeval.
func (l Layout) PutBootTime(b []byte, bt BootTime) {
	l.putUint(b, l.Word, uint64(bt.Sec))
	l.putUint(b[l.Word:], l.UsecWidth, uint64(bt.Usec))
}

func (l Layout) readUint(b []byte, width int) uint64 {
	if width == 8 {
		return l.Order.Uint64(b)
	}
	return uint64(l.Order.Uint32(b))
}

func (l Layout) readInt(b []byte, width int) int64 {
	if width == 8 {
		return int64(l.Order.Uint64(b))
	}
	return int64(int32(l.Order.Uint32(b)))
}

func (l Layout) putUint(b []byte, width int, v uint64) {
	if width == 8 {
		l.Order.PutUint64(b, v)
		return
	}
	l.Order.PutUint32(b, uint32(v))
}

func align(n, to int) int {
	return (n + to - 1) / to * to
}
