package deepseek

import (
	"legalmind/app/domain"
)

// Slot is one collected followup answer, passed along to enrich re-analysis.
// Order is preserved so the prompt lists answers the way they were asked.
type Slot struct {
	Name  string
	Value string
}

// payload mirrors the JSON object the model is instructed to emit. Pointer
// fields distinguish "absent" from zero values so defaults can be applied.
type payload struct {
	Category    *string   `json:"category"`
	Complexity  *string   `json:"complexity"`
	Summary     *string   `json:"summary"`
	MissingInfo *[]string `json:"missing_info"`
	Confidence  *float64  `json:"confidence"`
}

// ParseError means no usable structured payload could be recovered from the
// model output.
type ParseError struct {
	Detail string
}

func (e *ParseError) Error() string {
	return "no valid structured payload: " + e.Detail
}

const (
	summaryConnectionError = "אירעה שגיאה בהתחברות לשירות הניתוח. נא לנסות שוב."
	summaryTimeout         = "הניתוח לקח זמן רב מהצפוי. נא לנסות שוב."
	summaryParseError      = "אירעה שגיאה בעיבוד התשובה. נא לנסח את הבעיה בצורה ברורה יותר."
	summaryUnexpected      = "אירעה שגיאה בלתי צפויה. נא ליצור קשר עם התמיכה הטכנית."
	summaryNoCredential    = "הניתוח אינו זמין כרגע. אנא בדוק את הגדרות המערכת."
)

// fallbackAnalysis is the degraded result returned when live classification
// failed after an attempt was made. Only the summary differentiates causes.
func fallbackAnalysis(summary string) *domain.Analysis {
	return &domain.Analysis{
		Category:   domain.CategoryOther,
		Complexity: domain.ComplexityMedium,
		Summary:    summary,
		MissingInfo: []string{
			"תיאור מפורט יותר של הבעיה",
			"תאריכים מדויקים של האירועים",
			"סכומים כספיים רלוונטיים",
		},
		Confidence: 0.2,
	}
}

// degradedAnalysis is returned when no API credential is configured at all.
// The zero confidence marks the condition for operators.
func degradedAnalysis() *domain.Analysis {
	return &domain.Analysis{
		Category:   domain.CategoryOther,
		Complexity: domain.ComplexityMedium,
		Summary:    summaryNoCredential,
		MissingInfo: []string{
			"תאריך מדויק של האירוע",
			"ערך הסכום או הנזק",
			"הצדדים המעורבים",
		},
		Confidence: 0.0,
	}
}
