// Package detect classifies clipboard content into a types.ContentType.
//
// Text classification is an ordered list of cheap substring predicates.
// Predicates overlap on purpose; the first match in the list wins, so the
// order of rules below is what defines the classifier's behaviour.
package detect

import (
	"strings"

	"github.com/berrythewa/c2f/internal/types"
)

// Rule pairs a content type with the predicate that claims it
type Rule struct {
	Type  types.ContentType
	Match func(text string) bool
}

var rules = []Rule{
	// strict structural formats
	{types.TypeJSON, IsJSON},
	{types.TypeXML, IsXML},

	// config files, before yaml swallows "key:" lines
	{types.TypeDockerfile, IsDockerfile},
	{types.TypeGitIgnore, IsGitIgnore},
	{types.TypeMakefile, IsMakefile},

	// remaining data formats
	{types.TypeYAML, IsYAML},
	{types.TypeTOML, IsTOML},
	{types.TypeCSV, IsCSV},
	{types.TypeSQL, IsSQL},
	{types.TypeDotEnv, IsDotEnv},
	{types.TypeINI, IsINI},

	// markup
	{types.TypeHTML, IsHTML},
	{types.TypeMarkdown, IsMarkdown},
	{types.TypeLaTeX, IsLaTeX},

	// languages
	{types.TypeRust, IsRust},
	{types.TypePython, IsPython},
	{types.TypeTypeScript, IsTypeScript},
	{types.TypeJavaScript, IsJavaScript},
	{types.TypeGo, IsGo},
	{types.TypeJava, IsJava},
	{types.TypeCSharp, IsCSharp},
	{types.TypeCpp, IsCpp},
	{types.TypeC, IsC},
	{types.TypeShell, IsShell},
	{types.TypePowerShell, IsPowerShell},
	{types.TypeRuby, IsRuby},
	{types.TypePHP, IsPHP},
	{types.TypeSwift, IsSwift},
	{types.TypeKotlin, IsKotlin},

	// styles
	{types.TypeSCSS, IsSCSS},
	{types.TypeCSS, IsCSS},
}

// Rules returns a copy of the ordered rule list
func Rules() []Rule {
	out := make([]Rule, len(rules))
	copy(out, rules)
	return out
}

// Order returns the content types in the order they are tried
func Order() []types.ContentType {
	order := make([]types.ContentType, len(rules))
	for i, r := range rules {
		order[i] = r.Type
	}
	return order
}

// DetectText classifies text. It trims surrounding whitespace once, returns
// the type of the first matching rule and falls back to TypePlainText.
// It never fails, empty input included.
func DetectText(text string) types.ContentType {
	return MatchRules(rules, strings.TrimSpace(text))
}

// MatchRules runs an already trimmed text through rules in order
func MatchRules(chain []Rule, trimmed string) types.ContentType {
	for _, r := range chain {
		if r.Match(trimmed) {
			return r.Type
		}
	}
	return types.TypePlainText
}
