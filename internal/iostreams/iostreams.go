// forked from https://github.com/cli/cli/tree/trunk/pkg/iostreams

package iostreams

import (
	"context"
	"io"
	"os"

	"github.com/mgutz/ansi"
	"golang.org/x/term"
)

type IOStreams struct {
	In     io.ReadCloser
	Out    io.Writer
	ErrOut io.Writer
}

func NewStream(stdin io.ReadCloser, stdout, stderr io.Writer) *IOStreams {
	return &IOStreams{
		In:     stdin,
		Out:    stdout,
		ErrOut: stderr,
	}
}

func System() *IOStreams {
	return NewStream(os.Stdin, os.Stdout, os.Stderr)
}

// IsStderrTTY reports whether ErrOut is a terminal.
func (s *IOStreams) IsStderrTTY() bool {
	f, ok := s.ErrOut.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// ErrorPrefix is the label diagnostics start with, red on a terminal.
func (s *IOStreams) ErrorPrefix() string {
	if s.IsStderrTTY() {
		return ansi.Color("Error:", "red+b")
	}
	return "Error:"
}

type contextKey struct{}

func NewContext(ctx context.Context, io *IOStreams) context.Context {
	return context.WithValue(ctx, contextKey{}, io)
}

// FromContext returns the streams ctx carries, or the process stdio.
func FromContext(ctx context.Context) *IOStreams {
	if io, ok := ctx.Value(contextKey{}).(*IOStreams); ok {
		return io
	}
	return System()
}
