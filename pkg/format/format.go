// Package format renders c2f's terminal output: save confirmations and the
// history listing.
package format

import (
	"fmt"
	"strings"

	"github.com/berrythewa/c2f/internal/storage"
	"github.com/berrythewa/c2f/internal/types"
	"github.com/berrythewa/c2f/pkg/utils"
)

// Formatter renders output with a fixed set of options
type Formatter struct {
	options Options
}

// New creates a new formatter with the given options
func New(opts Options) *Formatter {
	return &Formatter{options: opts}
}

// Detected is the line announcing the detected format
func (f *Formatter) Detected(t types.ContentType) string {
	name := ColorizeIf(t.DisplayName(), TypeColor(t), f.options.UseColors)
	return fmt.Sprintf("Detected format: %s", name)
}

// Saved is the line reporting a successful write
func (f *Formatter) Saved(filename string, appended bool) string {
	action := "written to"
	if appended {
		action = "appended to"
	}
	return fmt.Sprintf("Successfully %s '%s'", action, BoldIf(filename, f.options.UseColors))
}

// FormatRecord renders one history entry on a single line
func (f *Formatter) FormatRecord(r *storage.Record) string {
	useColors := f.options.UseColors

	parts := []string{
		DimIf(fmt.Sprintf("%-14s", FormatRelativeTime(r.Created)), useColors),
		ColorizeIf(fmt.Sprintf("%-16s", r.Type.DisplayName()), TypeColor(r.Type), useColors),
		TruncateText(r.Filename, f.options.MaxWidth),
		DimIf("("+FormatSize(int64(r.Size))+")", useColors),
	}
	if r.Appended {
		parts = append(parts, ColorizeIf("appended", Yellow, useColors))
	}
	if f.options.ShowMetadata {
		parts = append(parts, DimIf(utils.ShortHash(r.Hash)+" "+r.ID, useColors))
	}
	return strings.Join(parts, " ")
}

// FormatRecordList renders a numbered history listing
func (f *Formatter) FormatRecordList(records []*storage.Record) string {
	if len(records) == 0 {
		return ColorizeIf("No saved files in history", Gray, f.options.UseColors)
	}

	noun := "entries"
	if len(records) == 1 {
		noun = "entry"
	}
	lines := []string{
		BoldIf(fmt.Sprintf("Save history (%d %s)", len(records), noun), f.options.UseColors),
	}
	for i, r := range records {
		lines = append(lines, fmt.Sprintf("%3d. %s", i+1, f.FormatRecord(r)))
	}
	return strings.Join(lines, "\n")
}
