package output

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/afero"
)

// Actions shown in the confirmation prompt
const (
	ActionAppend    = "append to"
	ActionOverwrite = "overwrite"
	ActionCreate    = "create"
)

// DetermineAction describes what writing name will do
func DetermineAction(fs afero.Fs, name string, appendMode bool) string {
	switch {
	case appendMode:
		return ActionAppend
	case exists(fs, name):
		return ActionOverwrite
	default:
		return ActionCreate
	}
}

// Confirm prompts on out and reads one line from in. Only "y", in any case
// and surrounded by any whitespace, confirms.
func Confirm(in io.Reader, out io.Writer, name, action string) bool {
	fmt.Fprintf(out, "Are you sure you want to %s '%s'? (y/n): ", action, name)

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(line), "y")
}
