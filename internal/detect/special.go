package detect

import "strings"

var dockerInstructions = []string{"\nFROM ", "RUN ", "CMD ", "EXPOSE ", "WORKDIR "}

func IsDockerfile(text string) bool {
	return strings.HasPrefix(text, "FROM ") || containsAny(text, dockerInstructions...)
}

func IsGitIgnore(text string) bool {
	return anyLine(text, func(l string) bool {
		return strings.HasPrefix(l, "*.") || strings.HasPrefix(l, "/") || l == "node_modules"
	})
}

// IsMakefile wants a rule header followed by a tab-indented recipe, or a
// .PHONY declaration.
func IsMakefile(text string) bool {
	if strings.Contains(text, ":\n\t") || strings.Contains(text, ".PHONY:") {
		return true
	}
	hasTarget := anyLine(text, func(l string) bool {
		return strings.HasSuffix(l, ":") && !strings.HasPrefix(l, "#")
	})
	return hasTarget && anyLine(text, func(l string) bool {
		return strings.HasPrefix(l, "\t")
	})
}

// IsDotEnv rejects comment-only input: at least one uncommented assignment
// is required.
func IsDotEnv(text string) bool {
	var hasAssignment bool
	for _, l := range lines(text) {
		if l == "" {
			continue
		}
		isComment := strings.HasPrefix(l, "#")
		hasEquals := strings.Contains(l, "=")
		if !isComment && !hasEquals {
			return false
		}
		if hasEquals && !isComment {
			hasAssignment = true
		}
	}
	return hasAssignment
}

func IsINI(text string) bool {
	return strings.Contains(text, "[") && strings.Contains(text, "]") &&
		anyLine(text, func(l string) bool { return strings.Contains(l, "=") })
}
