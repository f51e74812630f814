package detect

import "strings"

// htmlMarkers disqualify text from being generic XML. Matched against the
// lower-cased input.
var htmlMarkers = []string{
	"<div", "<span", "<p>", "<body", "<html", "<!doctype",
	"<h1", "<h2", "<a ", "<img",
}

var sqlKeywords = []string{
	"SELECT ", "INSERT ", "UPDATE ", "DELETE ", "CREATE TABLE", "ALTER TABLE",
}

// IsJSON only checks the outer brackets, no parse is attempted.
func IsJSON(text string) bool {
	return (strings.HasPrefix(text, "{") && strings.HasSuffix(text, "}")) ||
		(strings.HasPrefix(text, "[") && strings.HasSuffix(text, "]"))
}

// IsXML accepts an XML declaration outright. Otherwise anything carrying an
// HTML tag is rejected before the generic <tag>...</ check runs.
func IsXML(text string) bool {
	if strings.HasPrefix(text, "<?xml") {
		return true
	}
	if containsAny(strings.ToLower(text), htmlMarkers...) {
		return false
	}
	return strings.HasPrefix(text, "<") && strings.Contains(text, "</")
}

func IsYAML(text string) bool {
	if strings.HasPrefix(text, "---") {
		return true
	}

	var hasList, hasKeyValue bool
	for _, l := range lines(text) {
		l = strings.TrimSpace(l)
		if strings.HasPrefix(l, "- ") || strings.HasPrefix(l, "* ") {
			hasList = true
		}
		if strings.Contains(l, ": ") && !strings.HasPrefix(l, "//") && !strings.HasPrefix(l, "#") {
			hasKeyValue = true
		}
	}

	return hasKeyValue || (strings.Contains(text, ":\n") && hasList)
}

func IsTOML(text string) bool {
	return strings.Contains(text, "[") && strings.Contains(text, "]") && strings.Contains(text, " = ")
}

// IsCSV looks at the first three lines only.
func IsCSV(text string) bool {
	head := lines(text)
	if len(head) > 3 {
		head = head[:3]
	}
	if len(head) < 2 {
		return false
	}
	for _, l := range head {
		if !strings.Contains(l, ",") {
			return false
		}
	}
	return true
}

func IsSQL(text string) bool {
	return containsAny(strings.ToUpper(text), sqlKeywords...)
}
