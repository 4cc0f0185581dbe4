package intake

import (
	"legalmind/app/domain"
)

// followupCatalog holds the ordered followup questions per category. Loaded
// once, never mutated.
var followupCatalog = map[domain.Category][]domain.Followup{
	domain.CategoryShopping: {
		{
			Slot:     "purchase_date",
			Kind:     domain.KindText,
			Question: "מתי בוצעה הרכישה? (דוגמה: לפני שבועיים, בתאריך 01/12/2024)",
		},
		{
			Slot:     "purchase_amount",
			Kind:     domain.KindNumber,
			Question: "מה סכום התשלום? (הזן מספר בלבד בשקלים)",
		},
		{
			Slot:     "has_invoice",
			Kind:     domain.KindBool,
			Question: "האם יש לך חשבונית או קבלה? (כן/לא)",
		},
		{
			Slot:     "contacted_seller",
			Kind:     domain.KindBool,
			Question: "האם פנית למוכר או לשירות לקוחות? (כן/לא)",
		},
		{
			Slot:     "seller_response",
			Kind:     domain.KindText,
			Question: "מה הייתה תגובת המוכר? (אם לא פנית, כתוב: לא פניתי)",
		},
	},

	domain.CategoryRental: {
		{
			Slot:     "has_contract",
			Kind:     domain.KindBool,
			Question: "האם קיים חוזה שכירות כתוב וחתום? (כן/לא)",
		},
		{
			Slot:     "contract_duration",
			Kind:     domain.KindText,
			Question: "מה משך חוזה השכירות? (דוגמה: שנה אחת, שלוש שנים)",
		},
		{
			Slot:     "monthly_rent",
			Kind:     domain.KindNumber,
			Question: "מה שכר הדירה החודשי? (הזן מספר בלבד בשקלים)",
		},
		{
			Slot:     "deposit_amount",
			Kind:     domain.KindNumber,
			Question: "מה סכום הפיקדון ששולם? (הזן מספר בלבד)",
		},
		{
			Slot:     "handover_protocol",
			Kind:     domain.KindBool,
			Question: "האם קיים פרוטוקול מסירה מתועד? (כן/לא)",
		},
		{
			Slot:     "written_complaint",
			Kind:     domain.KindBool,
			Question: "האם הגשת תלונה כתובה לבעל הבית/שוכר? (כן/לא)",
		},
	},

	domain.CategoryPrivacy: {
		{
			Slot:     "incident_date",
			Kind:     domain.KindText,
			Question: "מתי התרחשה ההפרה? (דוגמה: לפני 3 ימים, בתאריך 10/12/2024)",
		},
		{
			Slot:     "privacy_type",
			Kind:     domain.KindText,
			Question: "מה סוג המידע שהופר? (דוגמה: תמונות אישיות, מידע פיננסי, נתונים רפואיים)",
		},
		{
			Slot:     "violation_platform",
			Kind:     domain.KindText,
			Question: "היכן התרחשה ההפרה? (דוגמה: פייסבוק, וואטסאפ, אתר אינטרנט)",
		},
		{
			Slot:     "has_evidence",
			Kind:     domain.KindBool,
			Question: "האם יש לך ראיות מתועדות (צילומי מסך, הקלטות)? (כן/לא)",
		},
		{
			Slot:     "requested_removal",
			Kind:     domain.KindBool,
			Question: "האם ביקשת להסיר את התוכן או להפסיק את ההפרה? (כן/לא)",
		},
		{
			Slot:     "ongoing_threat",
			Kind:     domain.KindBool,
			Question: "האם ההפרה ממשיכה או יש איום לפרסם עוד? (כן/לא)",
		},
	},

	domain.CategoryContracts: {
		{
			Slot:     "has_written_contract",
			Kind:     domain.KindBool,
			Question: "האם החוזה כתוב וחתום על ידי שני הצדדים? (כן/לא)",
		},
		{
			Slot:     "contract_date",
			Kind:     domain.KindText,
			Question: "מתי נחתם החוזה? (דוגמה: לפני חודשיים, ב-15/10/2024)",
		},
		{
			Slot:     "contract_value",
			Kind:     domain.KindNumber,
			Question: "מה הערך הכספי של החוזה? (הזן מספר בשקלים, או 0 אם אין)",
		},
		{
			Slot:     "breach_type",
			Kind:     domain.KindText,
			Question: "מה סוג ההפרה? (דוגמה: אי תשלום, אי אספקה, עיכוב בביצוע)",
		},
		{
			Slot:     "notified_other_party",
			Kind:     domain.KindBool,
			Question: "האם הודעת לצד השני בכתב על ההפרה? (כן/לא)",
		},
		{
			Slot:     "damages_occurred",
			Kind:     domain.KindBool,
			Question: "האם נגרמו לך נזקים כספיים? (כן/לא)",
		},
	},

	domain.CategoryDamage: {
		{
			Slot:     "damage_date",
			Kind:     domain.KindText,
			Question: "מתי נגרם הנזק הכספי? (דוגמה: לפני חודש, ב-20/11/2024)",
		},
		{
			Slot:     "damage_amount",
			Kind:     domain.KindNumber,
			Question: "מה שווי הנזק הכספי? (הזן מספר בלבד בשקלים)",
		},
		{
			Slot:     "damage_cause",
			Kind:     domain.KindText,
			Question: "מה גרם לנזק? (דוגמה: הונאה, רמאות, רשלנות, תאונה)",
		},
		{
			Slot:     "has_evidence",
			Kind:     domain.KindBool,
			Question: "האם יש לך ראיות מסמכיות (חשבוניות, העברות, חוזים)? (כן/לא)",
		},
		{
			Slot:     "responsible_party_known",
			Kind:     domain.KindBool,
			Question: "האם אתה יודע מי אחראי לנזק? (כן/לא)",
		},
		{
			Slot:     "compensation_requested",
			Kind:     domain.KindBool,
			Question: "האם דרשת פיצוי באופן רשמי? (כן/לא)",
		},
	},

	domain.CategoryEmployment: {
		{
			Slot:     "has_employment_contract",
			Kind:     domain.KindBool,
			Question: "האם יש לך חוזה עבודה כתוב? (כן/לא)",
		},
		{
			Slot:     "employment_duration",
			Kind:     domain.KindText,
			Question: "כמה זמן אתה עובד במקום? (דוגמה: שנתיים, 6 חודשים)",
		},
		{
			Slot:     "monthly_salary",
			Kind:     domain.KindNumber,
			Question: "מה שכרך החודשי? (הזן מספר בלבד בשקלים)",
		},
		{
			Slot:     "issue_type",
			Kind:     domain.KindText,
			Question: "מה בדיוק סוג הבעיה? (דוגמה: אי תשלום שכר, פיטורים שלא כדין, שעות נוספות)",
		},
		{
			Slot:     "complaint_filed",
			Kind:     domain.KindBool,
			Question: "האם הגשת תלונה פנימית להנהלה? (כן/לא)",
		},
		{
			Slot:     "has_payslips",
			Kind:     domain.KindBool,
			Question: "האם יש לך תלושי שכר ומסמכים? (כן/לא)",
		},
	},

	domain.CategoryOther: {
		{
			Slot:     "incident_date",
			Kind:     domain.KindText,
			Question: "מתי התרחשה הבעיה? (ציין תאריך או תקופה בקירוב)",
		},
		{
			Slot:     "financial_impact",
			Kind:     domain.KindNumber,
			Question: "האם יש ערך כספי שנפגע? (הזן מספר בשקלים, או 0 אם אין)",
		},
		{
			Slot:     "parties_involved",
			Kind:     domain.KindText,
			Question: "מי הצדדים המעורבים? (דוגמה: פרט, חברה, מוסד ממשלתי)",
		},
		{
			Slot:     "has_documentation",
			Kind:     domain.KindBool,
			Question: "האם יש לך מסמכים או ראיות? (כן/לא)",
		},
		{
			Slot:     "attempts_made",
			Kind:     domain.KindText,
			Question: "אילו צעדים נקטת עד כה? (כתוב בקצרה או: לא נקטתי צעדים)",
		},
	},
}

// followupsFor is the catalog lookup. Any category without its own list
// degrades to the catch-all list.
func followupsFor(category domain.Category) []domain.Followup {
	if list, ok := followupCatalog[category]; ok {
		return list
	}

	return followupCatalog[domain.CategoryOther]
}
