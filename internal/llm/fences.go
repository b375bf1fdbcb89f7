package llm

import (
	"regexp"
	"strings"
)

var (
	reOpeningFence = regexp.MustCompile("(?i)^```json[\r\n]*")
	reBareFence    = regexp.MustCompile("^```[\r\n]*")
	reClosingFence = regexp.MustCompile("```$")
)

// StripFences removes markdown code-fence markers from both ends of a model
// reply so the remainder can be parsed as JSON. The content between the
// fences is returned untouched.
func StripFences(s string) string {
	s = strings.TrimSpace(s)
	s = reOpeningFence.ReplaceAllString(s, "")
	s = reBareFence.ReplaceAllString(s, "")
	s = reClosingFence.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}
