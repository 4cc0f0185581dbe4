package intake

import (
	"legalmind/app/domain"
)

// legalResources maps a category to the static directory text shown in the
// final report and in the /resources_* commands.
var legalResources = map[domain.Category]string{
	domain.CategoryShopping: `• המועצה הישראלית לצרכנות - ייעוץ וטיפול בתלונות צרכנים
• הרשות להגנת הצרכן ולסחר הוגן - אכיפת חוק הגנת הצרכן
• חוק הגנת הצרכן, תשמ"א-1981 - ביטול עסקה והחזר כספי
• תביעות קטנות - עד 34,600 ₪ ללא צורך בעורך דין`,

	domain.CategoryRental: `• חוק השכירות והשאילה, תשל"א-1971
• חוק שכירות הוגנת, תשע"ז-2017 - חובות המשכיר ותקינות הדירה
• סיוע משפטי של משרד המשפטים - ייעוץ חינם לזכאים
• בית משפט לתביעות קטנות - סכסוכי פיקדון ושכירות`,

	domain.CategoryPrivacy: `• הרשות להגנת הפרטיות - דיווח על הפרות מידע אישי
• חוק הגנת הפרטיות, תשמ"א-1981 - פיצוי ללא הוכחת נזק
• חוק למניעת הטרדה מאיימת, תשס"ב-2001
• משטרת ישראל (דיווח מקוון) - תכנים פוגעניים ואיומים`,

	domain.CategoryContracts: `• חוק החוזים (חלק כללי), תשל"ג-1973
• חוק החוזים (תרופות בשל הפרת חוזה), תשל"א-1970
• לשכת עורכי הדין - שכר טרחה מומלץ וייעוץ ראשוני
• מוסדות גישור ובוררות - יישוב סכסוכים מחוץ לבית המשפט`,

	domain.CategoryDamage: `• פקודת הנזיקין [נוסח חדש] - עוולות ופיצויים
• בית משפט לתביעות קטנות - תביעות עד 34,600 ₪
• המוקד לנפגעי הונאה - סיוע בתלונות על הונאות מקוונות
• משטרת ישראל - תלונה פלילית במקרי הונאה`,

	domain.CategoryEmployment: `• משרד העבודה - זרוע העבודה, אגף האכיפה
• חוק הגנת השכר, תשי"ח-1958 - הלנת שכר ופיצויים
• בית הדין האזורי לעבודה - סכסוכי עבודה
• קו לעובד - סיוע חינם לעובדים בזכויותיהם`,

	domain.CategoryOther: `• אתר "כל זכות" - מידע על זכויות בכל התחומים
• סיוע משפטי של משרד המשפטים - ייעוץ חינם לזכאים
• לשכת עורכי הדין - הכוונה לעורך דין מתאים
• בית משפט לתביעות קטנות - הליך פשוט ללא עורך דין`,
}

// ResourcesFor returns the resource directory for a category, falling back
// to the general list.
func ResourcesFor(category domain.Category) string {
	if text, ok := legalResources[category]; ok {
		return text
	}

	return legalResources[domain.CategoryOther]
}
