package detect

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"math"

	"github.com/berrythewa/c2f/internal/types"
)

// EncodePNG re-encodes a raw RGBA buffer as PNG. A buffer whose length does
// not match its dimensions is an error, not a classification miss.
func EncodePNG(raster *types.RasterBuffer) ([]byte, error) {
	if raster == nil {
		return nil, &EncodeError{Err: errors.New("no image buffer")}
	}
	if raster.Width <= 0 || raster.Height <= 0 {
		return nil, &EncodeError{Err: fmt.Errorf("invalid dimensions %dx%d", raster.Width, raster.Height)}
	}
	if raster.Width > math.MaxInt/4/raster.Height {
		return nil, &EncodeError{Err: fmt.Errorf("dimensions %dx%d too large", raster.Width, raster.Height)}
	}
	if want := raster.Width * raster.Height * 4; len(raster.Pix) != want {
		return nil, &EncodeError{Err: fmt.Errorf("buffer holds %d bytes, %dx%d RGBA needs %d",
			len(raster.Pix), raster.Width, raster.Height, want)}
	}

	img := &image.NRGBA{
		Pix:    raster.Pix,
		Stride: raster.Width * 4,
		Rect:   image.Rect(0, 0, raster.Width, raster.Height),
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, &EncodeError{Err: err}
	}
	return buf.Bytes(), nil
}
