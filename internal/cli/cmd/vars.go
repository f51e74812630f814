package cmd

import (
	"io"
	"os"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/berrythewa/c2f/internal/clipboard"
	"github.com/berrythewa/c2f/internal/config"
	"github.com/berrythewa/c2f/internal/detect"
	"github.com/berrythewa/c2f/pkg/format"
)

// Version information - set by main
var (
	version   = "dev"
	buildTime = "unknown"
	commit    = "none"
)

// SetVersionInfo allows setting version info from outside
func SetVersionInfo(v, bt, c string) {
	version = v
	buildTime = bt
	commit = c
}

// Env is everything a command touches outside the process
type Env struct {
	Fs     afero.Fs
	In     io.Reader
	Out    io.Writer
	Err    io.Writer
	Colors bool

	// Source opens the clipboard
	Source func(logger *zap.Logger) detect.Source
	// Logger, when set, replaces the logger built from config
	Logger *zap.Logger
}

// DefaultEnv wires commands to the real terminal, filesystem and clipboard
func DefaultEnv() *Env {
	return &Env{
		Fs:     afero.NewOsFs(),
		In:     os.Stdin,
		Out:    os.Stdout,
		Err:    os.Stderr,
		Colors: format.ColorsFor(os.Stdout),
		Source: func(logger *zap.Logger) detect.Source {
			return clipboard.New(logger)
		},
	}
}

// state is filled in by the root command's PersistentPreRunE
type state struct {
	cfg     *config.Config
	logger  *zap.Logger
	cfgFile string
	verbose bool
}

func (e *Env) formatter(st *state) *format.Formatter {
	opts := format.DefaultOptions()
	opts.UseColors = e.Colors
	opts.ShowMetadata = st.verbose
	return format.New(opts)
}
