package output

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/afero"

	"github.com/berrythewa/c2f/internal/types"
)

// ErrAppendImage is returned when asked to append PNG data to a file
var ErrAppendImage = errors.New("cannot append to image files")

const filePerm = 0644

// Write stores content in name. Without appendMode the file is replaced;
// with it the data is appended, creating the file if needed. Image content
// cannot be appended.
func Write(fs afero.Fs, name string, content *types.ClipboardContent, appendMode bool) error {
	if !appendMode {
		if err := afero.WriteFile(fs, name, content.Data, filePerm); err != nil {
			return fmt.Errorf("failed to write %s: %w", name, err)
		}
		return nil
	}

	if content.IsImage() {
		return ErrAppendImage
	}

	f, err := fs.OpenFile(name, os.O_CREATE|os.O_APPEND|os.O_WRONLY, filePerm)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", name, err)
	}
	if _, err := f.Write(content.Data); err != nil {
		f.Close()
		return fmt.Errorf("failed to append to %s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", name, err)
	}
	return nil
}
