package detect

import (
	"errors"
	"fmt"
)

// ErrEmptyClipboard is returned when the clipboard holds neither an image
// nor any text.
var ErrEmptyClipboard = errors.New("clipboard is empty")

// ReadError wraps a failure of the clipboard backend to produce text
type ReadError struct {
	Err error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("error reading clipboard: %v", e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// EncodeError reports a raster buffer that could not be turned into PNG
type EncodeError struct {
	Err error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("failed to encode PNG: %v", e.Err)
}

func (e *EncodeError) Unwrap() error { return e.Err }
