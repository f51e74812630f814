package detect

import "strings"

var htmlTags = []string{
	"<!DOCTYPE", "<html", "<body", "<div", "<span", "<p>", "<h1", "<h2", "<a ", "<img",
	"</div>", "</span>", "</body>", "</html>",
}

var cssProperties = []string{"color:", "font-", "margin:", "padding:"}

// IsHTML is case sensitive, unlike the exclusion list used by IsXML.
func IsHTML(text string) bool {
	return containsAny(text, htmlTags...)
}

// IsMarkdown matches headings at line start, fenced code, inline links and
// bullet lists.
func IsMarkdown(text string) bool {
	if hasAnyPrefix(text, "# ", "## ") || containsAny(text, "\n# ", "\n## ", "```") {
		return true
	}
	if strings.Contains(text, "[") && strings.Contains(text, "](") {
		return true
	}
	return anyLine(text, func(l string) bool {
		return strings.HasPrefix(l, "- ") || strings.HasPrefix(l, "* ")
	})
}

func IsLaTeX(text string) bool {
	return containsAny(text, `\documentclass`, `\begin{`, `\section{`, `\usepackage{`)
}

func IsCSS(text string) bool {
	return strings.Contains(text, "{") && strings.Contains(text, "}") &&
		containsAny(text, cssProperties...)
}

func IsSCSS(text string) bool {
	return (strings.Contains(text, "$") && strings.Contains(text, ":") && strings.Contains(text, ";")) ||
		containsAny(text, "@mixin", "@include")
}
