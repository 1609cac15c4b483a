package glue

import (
	"regexp"
	"strings"
)

// Substitution order matters: once non-capturing groups are elided, the
// remaining parenthesized groups are all capturing, and neither placeholder
// re-matches a later pass.
var (
	nonCapturingPattern = regexp.MustCompile(`\(\?:.*?\)`)
	capturingPattern    = regexp.MustCompile(`\(.*?\)`)
	optionalPattern     = regexp.MustCompile(`\[(.*?)\]\?`)
)

const (
	anyPlaceholder     = "<span class='any'>...</span>"
	capturePlaceholder = "XXXX"
)

// ExtractPhrase turns the match pattern inside a Given/When/Then annotation
// into a display phrase. The pattern is the text between the first '^' and
// the last '$'; grouping constructs are replaced with display placeholders
// and optional brackets keep their literal content wrapped in an opt marker.
//
// The rewrite is pure and idempotent: running it on an already substituted
// phrase finds nothing left to replace.
func ExtractPhrase(annotation string) (string, error) {
	start := strings.Index(annotation, "^")
	end := strings.LastIndex(annotation, "$")
	if start < 0 || end < 0 || start > end {
		return "", &MalformedPatternError{Annotation: annotation}
	}

	phrase := annotation[start+1 : end]
	phrase = nonCapturingPattern.ReplaceAllString(phrase, anyPlaceholder)
	phrase = capturingPattern.ReplaceAllString(phrase, capturePlaceholder)
	phrase = optionalPattern.ReplaceAllString(phrase, "<span class='opt'>$1</span>")
	return phrase, nil
}
