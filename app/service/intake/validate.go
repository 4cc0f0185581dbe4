package intake

import (
	"strings"

	"legalmind/app/domain"
)

// Accepted yes/no tokens, including short forms and casual confirmations.
var (
	yesTokens = map[string]struct{}{
		"כן": {}, "כ": {}, "yes": {}, "y": {}, "נכון": {},
		"נ": {}, "אכן": {}, "בטח": {}, "יפ": {}, "יפה": {},
	}

	noTokens = map[string]struct{}{
		"לא": {}, "ל": {}, "no": {}, "n": {}, "שלילי": {},
		"לא נכון": {}, "ממש לא": {},
	}
)

// Validate checks a followup answer against its expected kind and returns
// the normalized value. It is pure; an unknown kind is always invalid.
func Validate(kind domain.AnswerKind, text string) (string, bool) {
	t := strings.TrimSpace(text)

	switch kind {
	case domain.KindBool:
		lower := strings.ToLower(t)
		if _, ok := yesTokens[lower]; ok {
			return "כן", true
		}
		if _, ok := noTokens[lower]; ok {
			return "לא", true
		}
		return "", false

	case domain.KindNumber:
		// Strips thousands separators, currency words and units. The
		// result stays a digit string, no locale-dependent parsing.
		var digits strings.Builder
		for _, r := range t {
			if r >= '0' && r <= '9' {
				digits.WriteRune(r)
			}
		}
		if digits.Len() == 0 {
			return "", false
		}
		return digits.String(), true

	case domain.KindText:
		if len([]rune(t)) < 2 {
			return "", false
		}
		return t, true
	}

	return "", false
}
