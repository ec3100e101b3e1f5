package flag

import (
	"context"

	"github.com/spf13/pflag"
)

type contextKey struct{}

// NewContext derives a Context that carries fs.
func NewContext(ctx context.Context, fs *pflag.FlagSet) context.Context {
	return context.WithValue(ctx, contextKey{}, fs)
}

// FromContext returns the FlagSet ctx carries, or nil.
func FromContext(ctx context.Context) *pflag.FlagSet {
	fs, _ := ctx.Value(contextKey{}).(*pflag.FlagSet)
	return fs
}

// GetString returns the value of the named string flag, or "" when ctx
// carries no such flag.
func GetString(ctx context.Context, name string) string {
	fs := FromContext(ctx)
	if fs == nil {
		return ""
	}
	v, err := fs.GetString(name)
	if err != nil {
		return ""
	}
	return v
}

// GetBool returns the value of the named boolean flag.
func GetBool(ctx context.Context, name string) bool {
	fs := FromContext(ctx)
	if fs == nil {
		return false
	}
	v, err := fs.GetBool(name)
	if err != nil {
		return false
	}
	return v
}
