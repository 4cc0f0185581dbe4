package deepseek

// slotLabels maps slot names to the Hebrew display label used when feeding
// collected answers back into the prompt. Unknown names pass through as-is.
var slotLabels = map[string]string{
	// online shopping
	"purchase_date":    "תאריך הרכישה",
	"purchase_amount":  "סכום הרכישה",
	"has_invoice":      "קיום חשבונית",
	"contacted_seller": "פנייה למוכר",
	"seller_response":  "תגובת המוכר",

	// rental
	"has_contract":      "קיום חוזה כתוב",
	"contract_duration": "משך החוזה",
	"monthly_rent":      "שכר דירה חודשי",
	"deposit_amount":    "סכום הפיקדון",
	"handover_protocol": "פרוטוקול מסירה",
	"written_complaint": "תלונה כתובה",

	// privacy
	"incident_date":      "תאריך האירוע",
	"privacy_type":       "סוג המידע שהופר",
	"violation_platform": "פלטפורמת ההפרה",
	"has_evidence":       "קיום ראיות",
	"requested_removal":  "בקשת הסרה",
	"ongoing_threat":     "איום מתמשך",

	// contracts
	"has_written_contract": "חוזה כתוב",
	"contract_date":        "תאריך החוזה",
	"contract_value":       "ערך החוזה",
	"breach_type":          "סוג ההפרה",
	"notified_other_party": "הודעה לצד השני",
	"damages_occurred":     "נגרמו נזקים",

	// financial damage
	"damage_date":             "תאריך הנזק",
	"damage_amount":           "שווי הנזק",
	"damage_cause":            "סיבת הנזק",
	"responsible_party_known": "זיהוי הצד האחראי",
	"compensation_requested":  "דרישת פיצוי",

	// employment
	"has_employment_contract": "חוזה עבודה",
	"employment_duration":     "משך התעסוקה",
	"monthly_salary":          "שכר חודשי",
	"issue_type":              "סוג הבעיה",
	"complaint_filed":         "הגשת תלונה",
	"has_payslips":            "תלושי שכר",

	// general
	"financial_impact":  "השפעה כספית",
	"parties_involved":  "הצדדים המעורבים",
	"has_documentation": "קיום תיעוד",
	"attempts_made":     "צעדים שננקטו",
}

// SlotLabel returns the display label for a slot name.
func SlotLabel(name string) string {
	if label, ok := slotLabels[name]; ok {
		return label
	}

	return name
}
