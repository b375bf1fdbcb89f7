package offers

import (
	"fmt"
	"strings"

	"github.com/Zoli1212/awsflow/internal/llm"
)

// conversionNotesHeader precedes the list of items that were not found in
// the tenant price list during legacy offer conversion.
const conversionNotesHeader = "=== Új tételek (még nincsenek a vállalkozói árlistában) ==="

// BuildNotes assembles the free-text notes stored on a generated offer:
// location, the raw requirement text, one block per custom item (every
// deferred item is listed, priced or not), and the model's open questions.
func BuildNotes(location, userInput string, customItems []llm.ProposedItem, questions []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n%s\n\n", location, userInput)

	if len(customItems) > 0 {
		b.WriteString("További információ:\n\n")
		for _, item := range customItems {
			reason := item.CustomReason
			if reason == "" {
				reason = "Egyedi tétel"
			}
			fmt.Fprintf(&b, "A következő tétel nem volt az adatbázisban: '%s (egyedi tétel)'.\n\n", item.Task)
			fmt.Fprintf(&b, "Indoklás: %s\n\n", reason)
		}
	}

	if len(questions) > 0 {
		b.WriteString("Tisztázandó kérdések:\n\n")
		for i, q := range questions {
			fmt.Fprintf(&b, "%d. %s\n\n", i+1, q)
		}
	}
	return b.String()
}

// BuildConversionNotes appends the new-item list to the caller-supplied
// notes lines. Returns "" when there is nothing to record.
func BuildConversionNotes(lines []string, newTaskNames []string) string {
	notes := make([]string, 0, len(lines)+1+len(newTaskNames))
	notes = append(notes, lines...)
	if len(newTaskNames) > 0 {
		notes = append(notes, "\n"+conversionNotesHeader)
		for _, name := range newTaskNames {
			notes = append(notes, "- "+name)
		}
	}
	if len(notes) == 0 {
		return ""
	}
	return strings.Join(notes, "\n")
}
