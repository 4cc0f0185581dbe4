package domain

import (
	"fmt"
)

// Category is the closed set of case types the classifier may assign.
// The wire values are the Hebrew tags the model is instructed to emit.
type Category string

const (
	CategoryShopping   Category = "קניות_אונליין"
	CategoryRental     Category = "שכירות"
	CategoryPrivacy    Category = "פרטיות"
	CategoryContracts  Category = "חוזים"
	CategoryDamage     Category = "נזקים_כספיים"
	CategoryEmployment Category = "עבודה_ותעסוקה"
	CategoryOther      Category = "אחר"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryShopping, CategoryRental, CategoryPrivacy, CategoryContracts,
		CategoryDamage, CategoryEmployment, CategoryOther:
		return true
	}

	return false
}

type Complexity string

const (
	ComplexityLow    Complexity = "נמוכה"
	ComplexityMedium Complexity = "בינונית"
	ComplexityHigh   Complexity = "גבוהה"
)

func (c Complexity) Valid() bool {
	switch c {
	case ComplexityLow, ComplexityMedium, ComplexityHigh:
		return true
	}

	return false
}

// AnswerKind declares what a followup question expects back from the user.
type AnswerKind string

const (
	KindBool   AnswerKind = "bool"
	KindNumber AnswerKind = "number"
	KindText   AnswerKind = "text"
)

// Followup is a single catalog entry of a category's question list.
type Followup struct {
	Slot     string
	Kind     AnswerKind
	Question string
}

// Analysis is the structured classification produced for a case.
// It is immutable once constructed.
type Analysis struct {
	Category    Category
	Complexity  Complexity
	Summary     string
	MissingInfo []string
	Confidence  float64
}

// NewAnalysis validates enum membership; out-of-set values are a
// construction failure, never coerced.
func NewAnalysis(category Category, complexity Complexity, summary string, missingInfo []string, confidence float64) (*Analysis, error) {
	if !category.Valid() {
		return nil, fmt.Errorf("unknown category %q", category)
	}
	if !complexity.Valid() {
		return nil, fmt.Errorf("unknown complexity %q", complexity)
	}

	return &Analysis{
		Category:    category,
		Complexity:  complexity,
		Summary:     summary,
		MissingInfo: missingInfo,
		Confidence:  confidence,
	}, nil
}
