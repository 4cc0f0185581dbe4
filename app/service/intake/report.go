package intake

import (
	"fmt"
	"strings"

	"legalmind/app/client/deepseek"
	"legalmind/app/domain"
)

func categoryLabel(c domain.Category) string {
	return strings.ReplaceAll(string(c), "_", " ")
}

// formatReply renders the analysis block shown to the user, optionally
// followed by the category's legal resources.
func formatReply(a *domain.Analysis, includeResources bool) string {
	var b strings.Builder

	b.WriteString("ניתוח ראשוני של התיק\n\n")
	b.WriteString(fmt.Sprintf("תחום: %s\n", categoryLabel(a.Category)))
	b.WriteString(fmt.Sprintf("מורכבות: %s\n", a.Complexity))
	b.WriteString(fmt.Sprintf("רמת ודאות: %.0f%%\n\n", a.Confidence*100))
	b.WriteString(a.Summary)

	if len(a.MissingInfo) > 0 {
		b.WriteString("\n\nמידע שעשוי לחזק את התיק:\n")
		for _, item := range a.MissingInfo {
			b.WriteString("  • " + item + "\n")
		}
	}

	if includeResources {
		b.WriteString("\n\nמשאבים משפטיים רלוונטיים:\n")
		b.WriteString(ResourcesFor(a.Category))
	}

	return b.String()
}

// finalReport assembles the completed-case output: analysis, resources, the
// collected slot values in catalog order, and a closing prompt.
// Caller must hold the session lock.
func finalReport(sess *domain.Session) string {
	reply := formatReply(sess.Analysis, true)

	if len(sess.Slots) > 0 {
		var collected strings.Builder
		for _, f := range followupsFor(sess.Analysis.Category) {
			if value, ok := sess.Slots[f.Slot]; ok {
				collected.WriteString(fmt.Sprintf("  • %s: %s\n", deepseek.SlotLabel(f.Slot), value))
			}
		}
		reply += "\n\nמידע שנאסף:\n" + strings.TrimRight(collected.String(), "\n")
	}

	reply += "\n\nלסיום התיק: /end"

	return reply
}
