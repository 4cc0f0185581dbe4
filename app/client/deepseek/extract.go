package deepseek

import (
	"encoding/json"
	"strings"

	"legalmind/app/domain"
)

// Model output is not guaranteed to be clean JSON. The payload is recovered
// by trying an ordered list of strategies, first success wins.
var extractStrategies = []func(string) (string, bool){
	scanBalancedObject,
	scanFencedBlock,
	scanCollapsedSpan,
}

// ExtractAnalysis recovers the structured analysis embedded in raw model
// text, fills defaults for missing fields, and constructs the typed record.
// Enum values outside the known sets are a *ParseError, not coerced.
func ExtractAnalysis(raw string) (*domain.Analysis, error) {
	var parsed *payload

	for _, strategy := range extractStrategies {
		candidate, ok := strategy(raw)
		if !ok {
			continue
		}

		var p payload
		if err := json.Unmarshal([]byte(candidate), &p); err != nil {
			continue
		}

		parsed = &p
		break
	}

	if parsed == nil {
		return nil, &ParseError{Detail: "no JSON object found in model output"}
	}

	category := domain.CategoryOther
	if parsed.Category != nil {
		category = domain.Category(*parsed.Category)
	}

	complexity := domain.ComplexityMedium
	if parsed.Complexity != nil {
		complexity = domain.Complexity(*parsed.Complexity)
	}

	summary := "התיק התקבל ונמצא בבדיקה"
	if parsed.Summary != nil {
		summary = *parsed.Summary
	}

	missingInfo := []string{}
	if parsed.MissingInfo != nil {
		missingInfo = *parsed.MissingInfo
	}

	confidence := 0.5
	if parsed.Confidence != nil {
		confidence = *parsed.Confidence
	}

	analysis, err := domain.NewAnalysis(category, complexity, summary, missingInfo, confidence)
	if err != nil {
		return nil, &ParseError{Detail: err.Error()}
	}

	return analysis, nil
}

// scanBalancedObject finds the first balanced brace-delimited object in the
// text. One level of nested braces is supported; deeper nesting fails the
// strategy rather than returning a truncated object.
func scanBalancedObject(text string) (string, bool) {
	start := strings.IndexByte(text, '{')
	if start < 0 {
		return "", false
	}

	depth := 0
	for i := start; i < len(text); i++ {
		switch text[i] {
		case '{':
			depth++
			if depth > 2 {
				return "", false
			}
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1], true
			}
		}
	}

	return "", false
}

// scanFencedBlock extracts the interior of the first fenced code block,
// optionally tagged as json.
func scanFencedBlock(text string) (string, bool) {
	open := strings.Index(text, "```")
	if open < 0 {
		return "", false
	}

	inner := text[open+3:]
	inner = strings.TrimPrefix(inner, "json")

	closing := strings.Index(inner, "```")
	if closing < 0 {
		return "", false
	}
	inner = inner[:closing]

	first := strings.IndexByte(inner, '{')
	last := strings.LastIndexByte(inner, '}')
	if first < 0 || last <= first {
		return "", false
	}

	return inner[first : last+1], true
}

// scanCollapsedSpan collapses newlines and tabs to spaces, then takes the
// span from the first '{' to the last '}'.
func scanCollapsedSpan(text string) (string, bool) {
	collapsed := strings.NewReplacer("\n", " ", "\r", " ", "\t", " ").Replace(text)

	first := strings.IndexByte(collapsed, '{')
	last := strings.LastIndexByte(collapsed, '}')
	if first < 0 || last <= first {
		return "", false
	}

	return collapsed[first : last+1], true
}
