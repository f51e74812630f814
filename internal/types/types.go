package types

import (
	"bytes"
	"time"
)

// ContentType represents the detected kind of clipboard content
type ContentType string

const (
	// image: always persisted as png
	TypeImage ContentType = "image"

	// data
	TypeJSON ContentType = "json"
	TypeXML  ContentType = "xml"
	TypeYAML ContentType = "yaml"
	TypeTOML ContentType = "toml"
	TypeCSV  ContentType = "csv"
	TypeSQL  ContentType = "sql"

	// languages
	TypeRust       ContentType = "rust"
	TypePython     ContentType = "python"
	TypeJavaScript ContentType = "javascript"
	TypeTypeScript ContentType = "typescript"
	TypeGo         ContentType = "go"
	TypeJava       ContentType = "java"
	TypeCSharp     ContentType = "csharp"
	TypeCpp        ContentType = "cpp"
	TypeC          ContentType = "c"
	TypeShell      ContentType = "shell"
	TypePowerShell ContentType = "powershell"
	TypeRuby       ContentType = "ruby"
	TypePHP        ContentType = "php"
	TypeSwift      ContentType = "swift"
	TypeKotlin     ContentType = "kotlin"

	// markup, styles
	TypeHTML     ContentType = "html"
	TypeMarkdown ContentType = "markdown"
	TypeLaTeX    ContentType = "latex"
	TypeCSS      ContentType = "css"
	TypeSCSS     ContentType = "scss"

	// config and special files
	TypeDockerfile ContentType = "dockerfile"
	TypeGitIgnore  ContentType = "gitignore"
	TypeMakefile   ContentType = "makefile"
	TypeDotEnv     ContentType = "dotenv"
	TypeINI        ContentType = "ini"

	// fallback
	TypePlainText ContentType = "plaintext"
)

// ClipboardContent is a classified clipboard snapshot. For TypeImage, Data
// holds PNG bytes; for every other type it holds the clipboard text as read.
type ClipboardContent struct {
	Type    ContentType `json:"type"`
	Data    []byte      `json:"data"`
	Created time.Time   `json:"created"`
}

// Equal compares two ClipboardContent instances for equality
func (c1 *ClipboardContent) Equal(c2 *ClipboardContent) bool {
	if c1 == nil || c2 == nil {
		return c1 == c2
	}
	return c1.Type == c2.Type && bytes.Equal(c1.Data, c2.Data)
}

// IsImage reports whether the content carries encoded image data
func (c *ClipboardContent) IsImage() bool {
	return c != nil && c.Type == TypeImage
}

// RasterBuffer is an unencoded image as handed over by a clipboard backend.
// Pix holds non-premultiplied RGBA samples, 4 bytes per pixel, row-major.
type RasterBuffer struct {
	Width  int
	Height int
	Pix    []byte
}
