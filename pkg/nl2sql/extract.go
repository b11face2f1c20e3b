package nl2sql

import (
	"regexp"
	"strings"
)

var fenceRe = regexp.MustCompile("(?s)```(?:sql)?\\s*(.*?)```")

// ExtractSQL pulls a candidate SQL statement out of a model reply. It prefers
// a fenced code block and falls back to a bare reply that itself looks like a
// SELECT. A reply with no recognizable SQL returns ok=false — that is the
// "no SQL present" case, not an error.
func ExtractSQL(reply string) (string, bool) {
	if m := fenceRe.FindStringSubmatch(reply); m != nil {
		candidate := strings.TrimSpace(m[1])
		if isSelectLike(candidate) {
			return candidate, true
		}
		return "", false
	}

	trimmed := strings.TrimSpace(reply)
	if isSelectLike(trimmed) {
		return trimmed, true
	}
	return "", false
}

func isSelectLike(s string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(s)), "select")
}
