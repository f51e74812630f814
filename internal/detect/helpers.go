package detect

import "strings"

// lines splits text the way a line reader would: "\n" separated, a trailing
// "\r" dropped from each line and no empty element for a final newline.
func lines(text string) []string {
	if text == "" {
		return nil
	}
	parts := strings.Split(text, "\n")
	if parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	for i, p := range parts {
		parts[i] = strings.TrimSuffix(p, "\r")
	}
	return parts
}

func containsAny(text string, substrs ...string) bool {
	for _, s := range substrs {
		if strings.Contains(text, s) {
			return true
		}
	}
	return false
}

func hasAnyPrefix(text string, prefixes ...string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(text, p) {
			return true
		}
	}
	return false
}

func anyLine(text string, pred func(string) bool) bool {
	for _, l := range lines(text) {
		if pred(l) {
			return true
		}
	}
	return false
}
