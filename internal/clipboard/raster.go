package clipboard

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/berrythewa/c2f/internal/types"
)

// DecodeRaster turns encoded image bytes (PNG, JPEG, GIF, BMP, TIFF or WebP)
// into a tightly packed, non-premultiplied RGBA buffer anchored at 0,0.
func DecodeRaster(data []byte) (*types.RasterBuffer, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	b := img.Bounds()
	if b.Empty() {
		return nil, fmt.Errorf("empty %s image", format)
	}

	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)

	return &types.RasterBuffer{
		Width:  b.Dx(),
		Height: b.Dy(),
		Pix:    dst.Pix,
	}, nil
}
