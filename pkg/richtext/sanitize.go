package richtext

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	questionPolicyOnce sync.Once
	questionPolicy     *bluemonday.Policy
)

// Sanitize restricts raw HTML to the inline formatting and basic structural
// tags the question surface supports. Anything else, scripts and event
// handlers included, is stripped. Malformed input degrades to whatever safe
// subset survives parsing, never to an error.
func Sanitize(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(questionSanitizer().Sanitize(trimmed))
}

func questionSanitizer() *bluemonday.Policy {
	questionPolicyOnce.Do(func() {
		policy := bluemonday.NewPolicy()
		policy.AllowElements(
			"b", "strong", "i", "em", "u", "s", "strike", "del",
			"p", "br", "div", "span",
		)
		questionPolicy = policy
	})
	return questionPolicy
}
