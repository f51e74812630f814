package clipboard

import (
	"fmt"

	atottoClip "github.com/atotto/clipboard"

	"github.com/berrythewa/c2f/internal/types"
)

// Atotto is a fallback backend built on the platform clipboard utilities
// (xclip, xsel, wl-paste, pbpaste). It only supports text content.
type Atotto struct {
	readAll func() (string, error)
}

func NewAtotto() *Atotto {
	return &Atotto{readAll: readAllText}
}

func readAllText() (string, error) {
	if atottoClip.Unsupported {
		return "", fmt.Errorf("no clipboard utilities available")
	}
	return atottoClip.ReadAll()
}

func (a *Atotto) Name() string { return "atotto" }

func (a *Atotto) Image() (*types.RasterBuffer, error) {
	return nil, ErrNoImage
}

func (a *Atotto) Text() (string, error) {
	text, err := a.readAll()
	if err != nil {
		return "", fmt.Errorf("failed to read clipboard text: %w", err)
	}
	return text, nil
}
