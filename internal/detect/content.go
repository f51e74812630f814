package detect

import (
	"time"

	"github.com/berrythewa/c2f/internal/types"
)

//go:generate mockgen -destination=../mocks/mock_source.go -package=mocks github.com/berrythewa/c2f/internal/detect Source

// Source is the clipboard capability the classifier consumes. Image returns
// an error whenever no image is available; Text returns the clipboard text,
// which may be empty.
type Source interface {
	Image() (*types.RasterBuffer, error)
	Text() (string, error)
}

// Prepare reads the clipboard once and classifies it. With detectType set an
// image is tried first and short-circuits to TypeImage with PNG data;
// otherwise, or when no image is present, the text is read and classified.
// With detectType unset the text is returned as TypePlainText unexamined.
func Prepare(src Source, detectType bool) (*types.ClipboardContent, error) {
	if detectType {
		if raster, err := src.Image(); err == nil && raster != nil {
			data, err := EncodePNG(raster)
			if err != nil {
				return nil, err
			}
			return newContent(types.TypeImage, data), nil
		}
	}

	text, err := src.Text()
	if err != nil {
		return nil, &ReadError{Err: err}
	}
	if text == "" {
		return nil, ErrEmptyClipboard
	}

	contentType := types.TypePlainText
	if detectType {
		contentType = DetectText(text)
	}
	return newContent(contentType, []byte(text)), nil
}

func newContent(t types.ContentType, data []byte) *types.ClipboardContent {
	return &types.ClipboardContent{
		Type:    t,
		Data:    data,
		Created: time.Now(),
	}
}
