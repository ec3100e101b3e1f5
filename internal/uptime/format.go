package uptime

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/rugwirobaker/uptime/internal/sys"
	"github.com/valyala/bytebufferpool"
)

// Report is everything the uptime line shows.
type Report struct {
	Now    time.Time
	Load   sys.LoadAverage
	Uptime Duration
	Users  uint
}

// Format renders r as a newline terminated line:
//
//	09:05  up 1 day, 1:01, 2 users, load averages: 1.23 0.87 0.45
func Format(r Report) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	render(buf, r)
	return buf.String()
}

// Write renders r to w in a single write.
func Write(w io.Writer, r Report) error {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	render(buf, r)
	_, err := w.Write(buf.B)
	return err
}

func render(b *bytebufferpool.ByteBuffer, r Report) {
	d := r.Uptime

	b.WriteString(r.Now.Format("15:04"))
	b.WriteString("  up ")

	if d.Days > 0 {
		fmt.Fprintf(b, "%d %s, ", d.Days, plural(d.Days, "day"))
	}

	switch {
	case d.Hours > 0 && (d.Minutes%60 > 0 || d.Days > 0):
		fmt.Fprintf(b, "%d:%02d, ", d.Hours%24, d.Minutes%60)
	case d.Hours > 0:
		fmt.Fprintf(b, "%d %s, ", d.Hours%24, plural(d.Hours, "hr"))
	case d.Minutes > 0:
		fmt.Fprintf(b, "%d %s, ", d.Minutes%60, plural(d.Minutes, "min"))
	default:
		fmt.Fprintf(b, "%d %s, ", d.Seconds%60, plural(d.Seconds, "sec"))
	}

	fmt.Fprintf(b, "%d %s, ", r.Users, plural(int64(r.Users), "user"))

	b.WriteString("load averages:")
	for _, v := range r.Load.Values() {
		b.WriteByte(' ')
		b.WriteString(loadFigure(v))
	}
	b.WriteByte('\n')
}

// loadFigure keeps at most two fractional digits and drops trailing zeros,
// so 0.50 prints as 0.5 and 12.00 as 12.
func loadFigure(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

func plural(n int64, unit string) string {
	if n == 1 {
		return unit
	}
	return unit + "s"
}
