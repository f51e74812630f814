// Package clipboard adapts the platform clipboard to detect.Source.
//
// The native backend reads both images and text through
// golang.design/x/clipboard. When it cannot be initialised (no display,
// missing cgo) the atotto backend is used instead, which only sees text.
package clipboard

import (
	"errors"

	"go.uber.org/zap"

	"github.com/berrythewa/c2f/internal/detect"
)

// ErrNoImage is returned by Image when the clipboard holds no image
var ErrNoImage = errors.New("no image on clipboard")

// Backend is a detect.Source with a name for logging
type Backend interface {
	detect.Source
	Name() string
}

// New returns the best available backend for this machine
func New(logger *zap.Logger) Backend {
	if logger == nil {
		logger = zap.NewNop()
	}

	sys, err := NewSystem(logger)
	if err == nil {
		logger.Debug("Using clipboard backend", zap.String("backend", sys.Name()))
		return sys
	}

	logger.Warn("Native clipboard unavailable, falling back to text only",
		zap.Error(err))
	return NewAtotto()
}
