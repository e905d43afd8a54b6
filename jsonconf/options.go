package jsonconf

import (
	"log/slog"
	"time"

	"github.com/cfgtree/cfgtree/format"

	"github.com/spf13/afero"
)

type Option func(*options)

type options struct {
	env      map[string]string
	envSet   bool
	envFiles []string
	fs       afero.Fs
	format   *format.Format
	patches  [][]byte
	dir      string
	log      *slog.Logger
	debounce time.Duration
}

func newOptions(opts []Option) *options {
	o := &options{
		fs:       afero.NewOsFs(),
		debounce: 200 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithEnv replaces the process environment as the source of environment
// variables. WithEnv(nil) loads without any environment.
func WithEnv(env map[string]string) Option {
	return func(o *options) {
		o.env = env
		o.envSet = true
	}
}

// WithEnvFiles reads variables from dotenv files after the environment.
// A name already set by the environment keeps its environment value.
func WithEnvFiles(paths ...string) Option {
	return func(o *options) {
		o.envFiles = append(o.envFiles, paths...)
	}
}

// WithFS sets the filesystem configuration and dotenv files are read
// from.
func WithFS(fs afero.Fs) Option {
	return func(o *options) {
		o.fs = fs
	}
}

// WithFormat overrides format detection.
func WithFormat(f format.Format) Option {
	return func(o *options) {
		o.format = &f
	}
}

// WithPatch applies a JSON patch (RFC 6902) or merge patch (RFC 7386)
// to the document before it is wrapped. Patches apply in order.
func WithPatch(p []byte) Option {
	return func(o *options) {
		o.patches = append(o.patches, p)
	}
}

// WithDir sets config_dir for documents not loaded from a file.
func WithDir(dir string) Option {
	return func(o *options) {
		o.dir = dir
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.log = l
	}
}

// WithDebounce sets how long a Watcher waits for a burst of file events
// to settle before reloading.
func WithDebounce(d time.Duration) Option {
	return func(o *options) {
		o.debounce = d
	}
}
