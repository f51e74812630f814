package clipboard

import (
	"fmt"

	xclip "golang.design/x/clipboard"
	"go.uber.org/zap"

	"github.com/berrythewa/c2f/internal/types"
)

// System reads the native clipboard, images included
type System struct {
	logger *zap.Logger
	read   func(xclip.Format) []byte
}

// NewSystem initialises the native clipboard. It fails when no clipboard
// service is reachable, e.g. without an X11 or Wayland display.
func NewSystem(logger *zap.Logger) (*System, error) {
	if err := xclip.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize clipboard: %w", err)
	}
	return &System{logger: logger, read: xclip.Read}, nil
}

func (s *System) Name() string { return "native" }

// Image decodes the clipboard image, whatever format the platform handed
// over, into a raw RGBA buffer.
func (s *System) Image() (*types.RasterBuffer, error) {
	data := s.read(xclip.FmtImage)
	if len(data) == 0 {
		return nil, ErrNoImage
	}

	raster, err := DecodeRaster(data)
	if err != nil {
		s.logger.Debug("Clipboard image could not be decoded",
			zap.Int("bytes", len(data)),
			zap.Error(err))
		return nil, fmt.Errorf("failed to decode clipboard image: %w", err)
	}

	s.logger.Debug("Read clipboard image",
		zap.Int("width", raster.Width),
		zap.Int("height", raster.Height))
	return raster, nil
}

// Text returns the clipboard text. An empty clipboard is not an error.
func (s *System) Text() (string, error) {
	return string(s.read(xclip.FmtText)), nil
}
