// Package output decides where clipboard content goes and writes it there.
// All file access goes through an afero.Fs so callers can swap in memory
// filesystems.
package output

import (
	"fmt"
	"strings"

	"github.com/spf13/afero"

	"github.com/berrythewa/c2f/internal/types"
)

// BaseName is the stem of generated filenames
const BaseName = "clipboard"

// Request describes the target file for a single save
type Request struct {
	Filename  string            // explicit filename, empty to generate one
	Type      types.ContentType // detected (or plain text) content type
	AppendExt bool              // add the detected extension to Filename
	Detect    bool              // whether detection ran
	Append    bool              // append instead of overwrite
}

// ResolveFilename picks the file to write. An explicit filename is used as
// given, plus the detected extension when AppendExt and Detect are both set
// and the name does not already end with it. Otherwise clipboard.<ext> is
// used, numbered clipboard-2.<ext>, clipboard-3.<ext>, ... when taken and not
// appending.
func ResolveFilename(fs afero.Fs, req Request) string {
	ext := req.Type.Extension()

	if req.Filename != "" {
		if req.AppendExt && req.Detect && !strings.HasSuffix(req.Filename, "."+ext) {
			return req.Filename + "." + ext
		}
		return req.Filename
	}

	name := fmt.Sprintf("%s.%s", BaseName, ext)
	if req.Append || !exists(fs, name) {
		return name
	}
	for counter := 2; ; counter++ {
		name = fmt.Sprintf("%s-%d.%s", BaseName, counter, ext)
		if !exists(fs, name) {
			return name
		}
	}
}

// exists treats a failed stat as absent
func exists(fs afero.Fs, name string) bool {
	ok, err := afero.Exists(fs, name)
	return err == nil && ok
}
