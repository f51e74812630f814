package format

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/berrythewa/c2f/internal/storage"
	"github.com/berrythewa/c2f/internal/types"
)

func plain() *Formatter {
	opts := DefaultOptions()
	opts.UseColors = false
	return New(opts)
}

func TestMessages(t *testing.T) {
	f := plain()

	assert.Equal(t, "Detected format: JSON", f.Detected(types.TypeJSON))
	assert.Equal(t, "Detected format: Image (PNG)", f.Detected(types.TypeImage))
	assert.Equal(t, "Successfully written to 'clipboard.json'", f.Saved("clipboard.json", false))
	assert.Equal(t, "Successfully appended to 'log.txt'", f.Saved("log.txt", true))
}

func TestMessagesWithColors(t *testing.T) {
	f := New(DefaultOptions())

	got := f.Detected(types.TypeJSON)
	assert.Equal(t, "Detected format: "+Cyan+"JSON"+Reset, got)
	assert.Contains(t, f.Saved("a.txt", false), Bold+"a.txt"+Reset)
}

func TestFormatRecordList(t *testing.T) {
	f := plain()

	assert.Equal(t, "No saved files in history", f.FormatRecordList(nil))

	records := []*storage.Record{
		{Filename: "clipboard.json", Type: types.TypeJSON, Size: 2048, Created: time.Now()},
		{Filename: "notes.md", Type: types.TypeMarkdown, Size: 10, Appended: true, Created: time.Now().Add(-2 * time.Hour)},
	}
	out := f.FormatRecordList(records)
	lines := strings.Split(out, "\n")

	assert.Len(t, lines, 3)
	assert.Equal(t, "Save history (2 entries)", lines[0])
	assert.Contains(t, lines[1], "  1. just now")
	assert.Contains(t, lines[1], "clipboard.json (2.0 KB)")
	assert.Contains(t, lines[2], "2 hours ago")
	assert.Contains(t, lines[2], "Markdown")
	assert.True(t, strings.HasSuffix(lines[2], "notes.md (10 B) appended"))
}

func TestFormatRecordMetadata(t *testing.T) {
	opts := DefaultOptions()
	opts.UseColors = false
	opts.ShowMetadata = true

	r := &storage.Record{ID: "id-1", Hash: "0123456789abcdef", Filename: "x.txt", Type: types.TypePlainText, Created: time.Now()}
	assert.True(t, strings.HasSuffix(New(opts).FormatRecord(r), "0123456789ab id-1"))
}

func TestFormatSize(t *testing.T) {
	tests := map[int64]string{
		0:               "0 B",
		1023:            "1023 B",
		1024:            "1.0 KB",
		1536:            "1.5 KB",
		5 * 1024 * 1024: "5.0 MB",
	}
	for in, want := range tests {
		assert.Equal(t, want, FormatSize(in), "FormatSize(%d)", in)
	}
}

func TestFormatRelativeTime(t *testing.T) {
	now := time.Now()

	assert.Equal(t, "just now", FormatRelativeTime(now))
	assert.Equal(t, "1 minute ago", FormatRelativeTime(now.Add(-90*time.Second)))
	assert.Equal(t, "5 minutes ago", FormatRelativeTime(now.Add(-5*time.Minute-time.Second)))
	assert.Equal(t, "3 days ago", FormatRelativeTime(now.Add(-73*time.Hour)))

	old := time.Date(2020, 3, 4, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "Mar 4, 2020", FormatRelativeTime(old))
}

func TestTruncateText(t *testing.T) {
	assert.Equal(t, "short", TruncateText("short", 10))
	assert.Equal(t, "abcdefg...", TruncateText("abcdefghijklmnop", 10))
	assert.Equal(t, "ab", TruncateText("abcdef", 2))
	assert.Equal(t, "héllo wö...", TruncateText("héllo wörld and more", 11))
	assert.Equal(t, "unchanged", TruncateText("unchanged", 0))
}

func TestTypeColor(t *testing.T) {
	assert.Equal(t, Cyan, TypeColor(types.TypeCSV))
	assert.Equal(t, Green, TypeColor(types.TypeGo))
	assert.Equal(t, BrightMagenta, TypeColor(types.TypeImage))
	assert.Equal(t, Gray, TypeColor(types.TypePlainText))
}
