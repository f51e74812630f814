package types

type typeInfo struct {
	extension   string
	displayName string
}

var registry = map[ContentType]typeInfo{
	TypeImage: {"png", "Image (PNG)"},

	TypeJSON: {"json", "JSON"},
	TypeXML:  {"xml", "XML"},
	TypeYAML: {"yaml", "YAML"},
	TypeTOML: {"toml", "TOML"},
	TypeCSV:  {"csv", "CSV"},
	TypeSQL:  {"sql", "SQL"},

	TypeRust:       {"rs", "Rust"},
	TypePython:     {"py", "Python"},
	TypeJavaScript: {"js", "JavaScript"},
	TypeTypeScript: {"ts", "TypeScript"},
	TypeGo:         {"go", "Go"},
	TypeJava:       {"java", "Java"},
	TypeCSharp:     {"cs", "C#"},
	TypeCpp:        {"cpp", "C++"},
	TypeC:          {"c", "C"},
	TypeShell:      {"sh", "Shell script"},
	TypePowerShell: {"ps1", "PowerShell"},
	TypeRuby:       {"rb", "Ruby"},
	TypePHP:        {"php", "PHP"},
	TypeSwift:      {"swift", "Swift"},
	TypeKotlin:     {"kt", "Kotlin"},

	TypeHTML:     {"html", "HTML"},
	TypeMarkdown: {"md", "Markdown"},
	TypeLaTeX:    {"tex", "LaTeX"},
	TypeCSS:      {"css", "CSS"},
	TypeSCSS:     {"scss", "SCSS"},

	TypeDockerfile: {"dockerfile", "Dockerfile"},
	TypeGitIgnore:  {"gitignore", "Git ignore"},
	TypeMakefile:   {"makefile", "Makefile"},
	TypeDotEnv:     {"env", "Environment file"},
	TypeINI:        {"ini", "INI config"},

	TypePlainText: {"txt", "Plain text"},
}

// AllContentTypes returns every known content type in declaration order
func AllContentTypes() []ContentType {
	return []ContentType{
		TypeImage,
		TypeJSON, TypeXML, TypeYAML, TypeTOML, TypeCSV, TypeSQL,
		TypeRust, TypePython, TypeJavaScript, TypeTypeScript, TypeGo, TypeJava,
		TypeCSharp, TypeCpp, TypeC, TypeShell, TypePowerShell, TypeRuby, TypePHP,
		TypeSwift, TypeKotlin,
		TypeHTML, TypeMarkdown, TypeLaTeX, TypeCSS, TypeSCSS,
		TypeDockerfile, TypeGitIgnore, TypeMakefile, TypeDotEnv, TypeINI,
		TypePlainText,
	}
}

// Known reports whether t is one of the registered content types
func (t ContentType) Known() bool {
	_, ok := registry[t]
	return ok
}

// Extension returns the canonical file extension, without the leading dot.
// Unknown values resolve to the plain text extension.
func (t ContentType) Extension() string {
	return t.info().extension
}

// DisplayName returns the human readable name used in user messages
func (t ContentType) DisplayName() string {
	return t.info().displayName
}

func (t ContentType) info() typeInfo {
	if info, ok := registry[t]; ok {
		return info
	}
	return registry[TypePlainText]
}
