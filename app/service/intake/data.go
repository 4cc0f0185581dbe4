package intake

const msgWelcome = `ברוכים הבאים ל-AI LegalMind
העוזר המשפטי החכם

אנחנו כאן לעזור לך לקבל הכוונה משפטית ראשונית בתחומים:
- קניות אונליין וזכויות צרכן
- סכסוכי שכירות
- הפרות פרטיות
- סכסוכים חוזיים
- תביעות פיצוי
- נושאי עבודה ותעסוקה

פקודות זמינות:
/new - התחל תיק חדש
/end - סיים תיק
/resources - משאבים משפטיים
/help - עזרה

הערה: זהו ייעוץ ראשוני בלבד, לא תחליף לעורך דין.

להתחלת תיק חדש: /new`

const msgHelp = `איך משתמשים בבוט?

1. התחל תיק חדש: /new
2. תאר את הבעיה בשתי-שלוש משפטים
3. ענה על השאלות שהבוט שואל
4. קבל ניתוח, המלצות ומשאבים משפטיים
5. סיים את התיק: /end

טיפים:
- היה ברור ומדויק
- ציין תאריכים וסכומים אם אפשר
- ענה בכנות
- שמור העתק של הניתוח

פקודות:
/new - תיק חדש
/end - סיום תיק
/resources - משאבים משפטיים
/help - הודעה זו`

const msgNewCase = `התחלת תיק משפטי חדש

תאר את הבעיה המשפטית בצורה ברורה ותמציתית.

דוגמה:
"קניתי טלפון באתר באינטרנט ב-2000 ₪, המוצר הגיע פגום ולא עובד, והחברה מסרבת להחזיר את הכסף או להחליף."

שתי-שלוש משפטים מספיקות.`

const msgNoOpenCase = `אין תיק פתוח כרגע.

להתחלת תיק חדש: /new`

const msgTooShort = `התיאור קצר מדי. אנא תאר את הבעיה ביתר פירוט.

דוגמה: קניתי מוצר באתר והגיע פגום, והחברה מסרבת להחזיר כסף.`

const msgInvalidAnswer = "התשובה לא תקינה.\n\nנסה שוב:\n\n"

const msgResourcesMenu = `משאבים משפטיים זמינים

בחר תחום:

/resources_shopping - קניות וצרכנות
/resources_rent - שכירות
/resources_privacy - פרטיות
/resources_contracts - חוזים
/resources_damage - נזקים ופיצויים
/resources_work - עבודה ותעסוקה
/resources_general - כללי

חזרה לתפריט: /start`
