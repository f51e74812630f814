package format

import "github.com/berrythewa/c2f/internal/types"

// Options controls formatting behavior
type Options struct {
	UseColors    bool
	ShowMetadata bool // Show id and hash in listings
	MaxWidth     int  // Max filename width (0 = no limit)
}

// DefaultOptions returns sensible defaults
func DefaultOptions() Options {
	return Options{
		UseColors: true,
		MaxWidth:  48,
	}
}

// TypeColor returns the color a content type is shown in
func TypeColor(t types.ContentType) string {
	switch t {
	case types.TypeImage:
		return BrightMagenta
	case types.TypeJSON, types.TypeXML, types.TypeYAML, types.TypeTOML, types.TypeCSV, types.TypeSQL:
		return Cyan
	case types.TypeHTML, types.TypeMarkdown, types.TypeLaTeX, types.TypeCSS, types.TypeSCSS:
		return Yellow
	case types.TypeDockerfile, types.TypeGitIgnore, types.TypeMakefile, types.TypeDotEnv, types.TypeINI:
		return Magenta
	case types.TypePlainText:
		return Gray
	default:
		return Green
	}
}
