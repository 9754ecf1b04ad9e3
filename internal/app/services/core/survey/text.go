package survey

import (
	"strings"

	"intake-service/internal/pkg/constvars"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// foldAnswer reduces an answer to the form used for keyword matching:
// NFKC-normalized, trimmed and case-folded. Stored values are never folded.
func foldAnswer(text string) string {
	return cases.Fold().String(norm.NFKC.String(strings.TrimSpace(text)))
}

func matchesAny(text string, tokens []string) bool {
	folded := foldAnswer(text)
	for _, token := range tokens {
		if folded == token {
			return true
		}
	}
	return false
}

func isSkipAnswer(text string) bool {
	return strings.TrimSpace(text) == "" || matchesAny(text, constvars.SurveySkipTokens)
}

// IsCompletionCommand reports whether a free-text answer asks to end the
// survey ("done", "finish" or "stop").
func IsCompletionCommand(text string) bool {
	return matchesAny(text, constvars.SurveyCompletionCommands)
}

// SplitFreeTextList splits a free-text list answer on commas, slashes and
// newlines, trimming and dropping empty fragments. A lone skip token yields an
// empty list.
func SplitFreeTextList(text string) []string {
	fragments := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == '/' || r == '\n'
	})

	items := make([]string, 0, len(fragments))
	for _, fragment := range fragments {
		fragment = strings.TrimSpace(fragment)
		if fragment != "" {
			items = append(items, fragment)
		}
	}

	if len(items) == 1 && matchesAny(items[0], constvars.SurveySkipTokens) {
		return []string{}
	}
	return items
}
