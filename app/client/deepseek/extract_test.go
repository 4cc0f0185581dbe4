package deepseek

import (
	"testing"

	"legalmind/app/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractAnalysis_EmbeddedInProse(t *testing.T) {
	raw := `הנה התוצאה: {"category":"שכירות","complexity":"גבוהה","summary":"סכסוך פיקדון","missing_info":["סכום הפיקדון"],"confidence":0.85} בהצלחה`

	analysis, err := ExtractAnalysis(raw)
	require.NoError(t, err)

	assert.Equal(t, domain.CategoryRental, analysis.Category)
	assert.Equal(t, domain.ComplexityHigh, analysis.Complexity)
	assert.Equal(t, "סכסוך פיקדון", analysis.Summary)
	assert.Equal(t, []string{"סכום הפיקדון"}, analysis.MissingInfo)
	assert.InDelta(t, 0.85, analysis.Confidence, 0.0001)
}

func TestExtractAnalysis_FencedBlock(t *testing.T) {
	raw := "here is the result:\n```json\n{\"category\":\"אחר\",\"complexity\":\"נמוכה\",\"summary\":\"x\",\"missing_info\":[],\"confidence\":0.9}\n```\nthanks"

	analysis, err := ExtractAnalysis(raw)
	require.NoError(t, err)

	assert.Equal(t, domain.CategoryOther, analysis.Category)
	assert.Equal(t, domain.ComplexityLow, analysis.Complexity)
	assert.Equal(t, "x", analysis.Summary)
	assert.Empty(t, analysis.MissingInfo)
	assert.InDelta(t, 0.9, analysis.Confidence, 0.0001)
}

func TestExtractAnalysis_NestedObject(t *testing.T) {
	raw := `{"category":"חוזים","complexity":"בינונית","summary":"הפרת חוזה","missing_info":["תאריך"],"confidence":0.7,"extra":{"note":"ignored"}}`

	analysis, err := ExtractAnalysis(raw)
	require.NoError(t, err)

	assert.Equal(t, domain.CategoryContracts, analysis.Category)
	assert.Equal(t, "הפרת חוזה", analysis.Summary)
}

func TestExtractAnalysis_CollapsedSpan(t *testing.T) {
	// Raw control characters inside the string value make the balanced
	// scan's strict parse fail, so the collapse strategy kicks in.
	raw := "{\"category\":\"פרטיות\",\"summary\":\"תקציר\tעם\rטאבים\",\"confidence\":0.6}"

	analysis, err := ExtractAnalysis(raw)
	require.NoError(t, err)

	assert.Equal(t, domain.CategoryPrivacy, analysis.Category)
}

func TestExtractAnalysis_DefaultsForMissingFields(t *testing.T) {
	analysis, err := ExtractAnalysis(`{"summary":"רק תקציר"}`)
	require.NoError(t, err)

	assert.Equal(t, domain.CategoryOther, analysis.Category)
	assert.Equal(t, domain.ComplexityMedium, analysis.Complexity)
	assert.Equal(t, "רק תקציר", analysis.Summary)
	assert.Empty(t, analysis.MissingInfo)
	assert.InDelta(t, 0.5, analysis.Confidence, 0.0001)
}

func TestExtractAnalysis_EmptyObjectGetsAllDefaults(t *testing.T) {
	analysis, err := ExtractAnalysis(`{}`)
	require.NoError(t, err)

	assert.Equal(t, domain.CategoryOther, analysis.Category)
	assert.Equal(t, "התיק התקבל ונמצא בבדיקה", analysis.Summary)
}

func TestExtractAnalysis_UnknownCategoryFails(t *testing.T) {
	_, err := ExtractAnalysis(`{"category":"פלילי","complexity":"נמוכה","summary":"x"}`)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestExtractAnalysis_UnknownComplexityFails(t *testing.T) {
	_, err := ExtractAnalysis(`{"category":"אחר","complexity":"עצומה","summary":"x"}`)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestExtractAnalysis_NoPayload(t *testing.T) {
	_, err := ExtractAnalysis("סתם טקסט חופשי בלי שום מבנה")

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestScanBalancedObject(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
		ok   bool
	}{
		{"plain", `x {"a":1} y`, `{"a":1}`, true},
		{"nested", `{"a":{"b":2}}`, `{"a":{"b":2}}`, true},
		{"too deep", `{"a":{"b":{"c":3}}}`, "", false},
		{"unclosed", `{"a":1`, "", false},
		{"no braces", `abc`, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := scanBalancedObject(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestScanFencedBlock(t *testing.T) {
	got, ok := scanFencedBlock("intro ```json\n{\"a\":1}\n``` outro")
	require.True(t, ok)
	assert.Equal(t, `{"a":1}`, got)

	_, ok = scanFencedBlock("no fences here")
	assert.False(t, ok)

	_, ok = scanFencedBlock("``` unclosed fence {")
	assert.False(t, ok)
}
