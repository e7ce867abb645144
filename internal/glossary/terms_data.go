package glossary

// bundled is the hand-authored term list, grouped by category.
var bundled = []Term{
	// Pseudo code
	{
		ID:          "p1",
		Title:       "השמה (Assignment)",
		Category:    CategoryPseudo,
		Description: "הכנסת ערך לתוך משתנה. בדרך כלל מחליפה את הערך הקודם שהיה בו.",
		Code: `1. שים ב-A את המספר 5
2. שים ב-B את הערך של A + 2
// בסוף: A=5, B=7`,
		Explanation: "הפקודה \"שים ב...\" או \"=\" מעדכנת את הזיכרון של המשתנה. כל ערך שהיה ב-A לפני כן נמחק.",
	},
	{
		ID:          "p2",
		Title:       "תנאי (If/Else)",
		Category:    CategoryPseudo,
		Description: "ביצוע פקודות רק אם מתקיים תנאי מסוים.",
		Code: `1. שים ב-X את 10
2. אם X > 5 אז:
3.    חסר מ-X את 2
4. אחרת:
5.    הוסף ל-X את 2
// בסוף: X=8 (כי 10 גדול מ-5)`,
		Explanation: "המחשב בודק את התנאי. אם הוא אמת - מבצע את הבלוק הראשון. אם שקר - מבצע את הבלוק של \"אחרת\" (אם קיים).",
	},
	{
		ID:          "p3",
		Title:       "לולאה (Loop/While)",
		Category:    CategoryPseudo,
		Description: "חזרה על קטע קוד כל עוד תנאי מסוים מתקיים.",
		Code: `1. שים ב-K את 0
2. כל עוד K < 3 בצע:
3.    הוסף ל-K את 1
4. סוף לולאה
// הלולאה תרוץ 3 פעמים. בסוף K=3`,
		Explanation: "לולאת \"כל עוד\" בודקת את התנאי לפני כל הרצה. ברגע ש-K מגיע ל-3, התנאי (3 < 3) הוא שקר והלולאה מסתיימת.",
	},
	{
		ID:          "p4",
		Title:       "קפיצה (Jump/Goto)",
		Category:    CategoryPseudo,
		Description: "דילוג לשורה אחרת בקוד, לעיתים קרובות בשילוב עם תנאי.",
		Code: `1. שים ב-A את 1
2. הוסף ל-A את 1
3. אם A < 4 עבור לשורה 2
4. הדפס A
// הקוד יחזור לשורה 2 פעמיים נוספות. בסוף יודפס 4`,
		Explanation: "פקודת \"עבור ל...\" משנה את סדר הריצה הרגיל (מלמעלה למטה) ומאפשרת ליצור לולאות בצורה ידנית.",
	},
	{
		ID:          "p5",
		Title:       "מערך (Array)",
		Category:    CategoryPseudo,
		Description: "אוסף של משתנים תחת שם אחד, כאשר ניגשים לכל אחד מהם לפי אינדקס (מיקום).",
		Code: `ARR = [10, 20, 30]
שים ב-X את ARR[0]  // X יקבל 10
שים ב-ARR[1] את 50 // המערך יהיה [10, 50, 30]`,
		Explanation: "זכור! במדעי המחשב הספירה מתחילה לרוב מ-0. האיבר הראשון הוא באינדקס 0.",
		Illustration: `<svg viewBox="0 0 300 80" class="w-full h-full">
      <defs>
        <marker id="arrow" markerWidth="10" markerHeight="10" refX="0" refY="3" orient="auto" markerUnits="strokeWidth">
          <path d="M0,0 L0,6 L9,3 z" fill="#64748b" />
        </marker>
      </defs>
      <rect x="10" y="20" width="50" height="50" fill="#e0f2fe" stroke="#0ea5e9" stroke-width="2"/>
      <text x="35" y="50" text-anchor="middle" dominant-baseline="middle" font-family="monospace" font-weight="bold" fill="#0369a1">10</text>
      <text x="35" y="15" text-anchor="middle" font-size="10" fill="#64748b">Idx 0</text>
      
      <rect x="60" y="20" width="50" height="50" fill="#e0f2fe" stroke="#0ea5e9" stroke-width="2"/>
      <text x="85" y="50" text-anchor="middle" dominant-baseline="middle" font-family="monospace" font-weight="bold" fill="#0369a1">20</text>
      <text x="85" y="15" text-anchor="middle" font-size="10" fill="#64748b">Idx 1</text>
      
      <rect x="110" y="20" width="50" height="50" fill="#e0f2fe" stroke="#0ea5e9" stroke-width="2"/>
      <text x="135" y="50" text-anchor="middle" dominant-baseline="middle" font-family="monospace" font-weight="bold" fill="#0369a1">30</text>
      <text x="135" y="15" text-anchor="middle" font-size="10" fill="#64748b">Idx 2</text>
    </svg>`,
	},
	{
		ID:          "p6",
		Title:       "מודולו (Modulo)",
		Category:    CategoryPseudo,
		Description: "פעולה המחשבת את שארית החלוקה.",
		Code: `A = 10 Mod 3
// 10 לחלק ל-3 זה 3 עם שארית 1.
// לכן A יהיה שווה ל-1.
B = 12 Mod 4
// 12 מתחלק ב-4 ללא שארית. B=0.`,
		Explanation: "שימושי מאוד לבדיקת זוגיות (Mod 2) או למחזוריות.",
	},
	{
		ID:          "p7",
		Title:       "החלפת משתנים (Swap)",
		Category:    CategoryPseudo,
		Description: "טכניקה להחלפת ערכים בין שני משתנים באמצעות משתנה עזר.",
		Code: `TEMP = A
A = B
B = TEMP
// כעת הערכים של A ו-B הוחלפו`,
		Explanation: "אי אפשר פשוט לכתוב A=B ואז B=A, כי הפקודה הראשונה דורסת את הערך המקורי של A. חייבים \"לשמור בצד\" את הערך במשתנה זמני.",
	},
	{
		ID:          "p8",
		Title:       "לוגיקה בוליאנית (AND/OR/NOT)",
		Category:    CategoryPseudo,
		Description: "פעולות לוגיות המחזירות אמת או שקר, משמשות בתנאים מורכבים.",
		Code: `אם (A > 5) וגם (B < 3):
   // יתבצע רק אם שני התנאים נכונים
אם (A > 5) או (B < 3):
   // יתבצע אם לפחות אחד מהם נכון`,
		Explanation: "AND (וגם) דורש שכולם יהיו אמת. OR (או) מסתפק באחד. NOT (לא) הופך את התוצאה.",
	},
	{
		ID:          "p9",
		Title:       "לולאה מקוננת (Nested Loop)",
		Category:    CategoryPseudo,
		Description: "לולאה בתוך לולאה. הלולאה הפנימית רצה במלואה עבור כל סיבוב של הלולאה החיצונית.",
		Code: `עבור I מ-1 עד 3:
   עבור J מ-1 עד 3:
      הדפס I,J
// יודפס: 1,1 | 1,2 | 1,3 | 2,1 ...`,
		Explanation: "מספר הפעולות הכולל הוא מכפלת מספר האיטרציות. כאן: 3 כפול 3 = 9 ריצות סה\"כ.",
	},
	{
		ID:          "p10",
		Title:       "טבלת מעקב (Trace Table)",
		Category:    CategoryPseudo,
		Description: "שיטה ידנית למעקב אחרי השתנות המשתנים בקוד, שורה אחר שורה.",
		Code: `קוד:
1. X=2
2. X=X+3
טבלה:
שורה | X
----------
1    | 2
2    | 5`,
		Explanation: "במבחן מחשבון קרב, חובה לצייר טבלת מעקב כדי לא ללכת לאיבוד עם משתנים שמשתנים הרבה פעמים.",
	},
	{
		ID:          "p11",
		Title:       "פונקציה (Function)",
		Category:    CategoryPseudo,
		Description: "בלוק קוד בעל שם המבצע משימה ספציפית וניתן לקרוא לו ממקומות שונים.",
		Code: `פונקציה חשב_סכום(A, B):
    החזר A + B

...
תוצאה = חשב_סכום(5, 3) // תוצאה תהיה 8`,
		Explanation: "פונקציות עוזרות לארגן את הקוד ולמנוע חזרות. הן מקבלות \"פרמטרים\" (קלט) ומחזירות \"ערך החזרה\" (פלט).",
	},
	{
		ID:          "p12",
		Title:       "מחרוזת (String)",
		Category:    CategoryPseudo,
		Description: "רצף של תווים (אותיות, מספרים, סימנים) המיוצג כטקסט.",
		Code: `שם = "דני"
הודעה = "שלום " + שם
// הודעה תכיל: "שלום דני"
אורך = אורך_של(שם) // 3`,
		Explanation: "בניגוד למספרים, במחרוזות פעולת ה-\"+\" בדרך כלל משרשרת (מחברת) את הטקסטים זה לזה.",
	},
	{
		ID:          "p13",
		Title:       "מטריצה / מערך דו-ממדי (2D Array)",
		Category:    CategoryPseudo,
		Description: "טבלה של נתונים עם שורות ועמודות.",
		Code: `M = [[1, 2, 3], 
     [4, 5, 6], 
     [7, 8, 9]]
// גישה לאיבר בשורה 1, עמודה 2 (המספר 6)
X = M[1][2] 
// מעבר על האלכסון הראשי:
עבור I מ-0 עד 2:
   הדפס M[I][I] // 1, 5, 9`,
		Explanation: "משמש לייצוג לוחות משחק, תמונות, או טבלאות נתונים. דורש בדרך כלל לולאות מקוננות.",
		Illustration: `<svg viewBox="0 0 200 120" class="w-full h-full">
      <rect x="20" y="20" width="30" height="30" fill="#fff" stroke="#334155"/> <text x="35" y="40" text-anchor="middle" font-size="10">0,0</text>
      <rect x="50" y="20" width="30" height="30" fill="#fff" stroke="#334155"/> <text x="65" y="40" text-anchor="middle" font-size="10">0,1</text>
      <rect x="80" y="20" width="30" height="30" fill="#fff" stroke="#334155"/> <text x="95" y="40" text-anchor="middle" font-size="10">0,2</text>
      
      <rect x="20" y="50" width="30" height="30" fill="#fff" stroke="#334155"/> <text x="35" y="70" text-anchor="middle" font-size="10">1,0</text>
      <rect x="50" y="50" width="30" height="30" fill="#bfdbfe" stroke="#334155"/> <text x="65" y="70" text-anchor="middle" font-size="10">1,1</text>
      <rect x="80" y="50" width="30" height="30" fill="#fff" stroke="#334155"/> <text x="95" y="70" text-anchor="middle" font-size="10">1,2</text>
      
      <rect x="20" y="80" width="30" height="30" fill="#fff" stroke="#334155"/> <text x="35" y="100" text-anchor="middle" font-size="10">2,0</text>
      <rect x="50" y="80" width="30" height="30" fill="#fff" stroke="#334155"/> <text x="65" y="100" text-anchor="middle" font-size="10">2,1</text>
      <rect x="80" y="80" width="30" height="30" fill="#fff" stroke="#334155"/> <text x="95" y="100" text-anchor="middle" font-size="10">2,2</text>
    </svg>`,
	},
	{
		ID:          "p14",
		Title:       "העברה לפי ערך vs ייחוס (Pass by Value/Ref)",
		Category:    CategoryPseudo,
		Description: "האם פונקציה מקבלת עותק של המשתנה או את המשתנה המקורי עצמו.",
		Code: `פונקציה שנה_ערך(X):
   X = 5

A = 10
שנה_ערך(A)
// אם לפי ערך: A נשאר 10
// אם לפי ייחוס (Reference): A משתנה ל-5`,
		Explanation: "במערכים ואובייקטים, בדרך כלל מעבירים לפי ייחוס (השינוי נשמר). במספרים רגילים, בדרך כלל לפי ערך (השינוי לא נשמר בחוץ).",
	},
	// Algorithms
	{
		ID:          "a1",
		Title:       "מחסנית (Stack)",
		Category:    CategoryAlgo,
		Description: "מבנה נתונים מסוג LIFO (Last In, First Out). האחרון שנכנס הוא הראשון שיוצא.",
		Code: `Stack S = []
Push(S, 1) // S: [1]
Push(S, 2) // S: [1, 2]
X = Pop(S) // X=2, S: [1]`,
		Explanation: "דמיינו ערימה של צלחות. תמיד מורידים את הצלחת העליונה (זו שהונחה אחרונה).",
		Illustration: `<svg viewBox="0 0 200 120" class="w-full h-full">
      <defs>
        <marker id="arrow-stack" markerWidth="10" markerHeight="10" refX="9" refY="3" orient="auto" markerUnits="strokeWidth">
          <path d="M0,0 L0,6 L9,3 z" fill="#16a34a" />
        </marker>
        <marker id="arrow-stack-out" markerWidth="10" markerHeight="10" refX="9" refY="3" orient="auto" markerUnits="strokeWidth">
          <path d="M0,0 L0,6 L9,3 z" fill="#dc2626" />
        </marker>
      </defs>
      <!-- Container -->
      <path d="M 60 20 L 60 110 L 140 110 L 140 20" stroke="#334155" stroke-width="3" fill="none"/>
      
      <!-- Items -->
      <rect x="65" y="85" width="70" height="20" rx="4" fill="#fbbf24" stroke="#d97706" stroke-width="2"/>
      <rect x="65" y="60" width="70" height="20" rx="4" fill="#fbbf24" stroke="#d97706" stroke-width="2"/>
      
      <!-- Top Item -->
      <rect x="65" y="35" width="70" height="20" rx="4" fill="#86efac" stroke="#16a34a" stroke-width="2"/>
      
      <text x="150" y="45" font-size="12" fill="#16a34a" font-weight="bold">Push</text>
      <path d="M 170 30 L 145 40" stroke="#16a34a" stroke-width="2" marker-end="url(#arrow-stack)"/>
      
      <text x="30" y="45" font-size="12" fill="#dc2626" font-weight="bold">Pop</text>
      <path d="M 55 40 L 30 30" stroke="#dc2626" stroke-width="2" marker-end="url(#arrow-stack-out)"/>
    </svg>`,
	},
	{
		ID:          "a2",
		Title:       "תור (Queue)",
		Category:    CategoryAlgo,
		Description: "מבנה נתונים מסוג FIFO (First In, First Out). הראשון שנכנס הוא הראשון שיוצא.",
		Code: `Queue Q = []
Enqueue(Q, 1) // Q: [1]
Enqueue(Q, 2) // Q: [1, 2]
X = Dequeue(Q) // X=1, Q: [2]`,
		Explanation: "בדיוק כמו תור בסופר. מי שהגיע ראשון - יוצא ראשון.",
		Illustration: `<svg viewBox="0 0 300 80" class="w-full h-full">
       <defs>
        <marker id="arrow-q" markerWidth="10" markerHeight="10" refX="9" refY="3" orient="auto" markerUnits="strokeWidth">
          <path d="M0,0 L0,6 L9,3 z" fill="#334155" />
        </marker>
       </defs>
       <!-- Items -->
       <rect x="60" y="30" width="40" height="40" rx="4" fill="#bae6fd" stroke="#0ea5e9"/>
       <text x="80" y="55" text-anchor="middle" font-weight="bold" fill="#0369a1">1</text>
       
       <rect x="105" y="30" width="40" height="40" rx="4" fill="#bae6fd" stroke="#0ea5e9"/>
       <text x="125" y="55" text-anchor="middle" font-weight="bold" fill="#0369a1">2</text>
       
       <rect x="150" y="30" width="40" height="40" rx="4" fill="#bae6fd" stroke="#0ea5e9"/>
       <text x="170" y="55" text-anchor="middle" font-weight="bold" fill="#0369a1">3</text>
       
       <!-- In / Out -->
       <text x="25" y="55" font-size="12" fill="#ef4444" font-weight="bold">OUT</text>
       <path d="M 55 50 L 35 50" stroke="#ef4444" stroke-width="2" marker-end="url(#arrow-q)"/>
       
       <text x="245" y="55" font-size="12" fill="#22c55e" font-weight="bold">IN</text>
       <path d="M 240 50 L 200 50" stroke="#22c55e" stroke-width="2" marker-end="url(#arrow-q)"/>
    </svg>`,
	},
	{
		ID:          "a3",
		Title:       "רקורסיה (Recursion)",
		Category:    CategoryAlgo,
		Description: "פונקציה הקוראת לעצמה עד שהיא מגיעה לתנאי עצירה.",
		Code: `פונקציה F(n):
  אם n == 0 החזר 0
  אחרת, החזר n + F(n-1)

// עבור F(3) נקבל: 3 + 2 + 1 + 0 = 6`,
		Explanation: "רקורסיה מפרקת בעיה גדולה לבעיות קטנות יותר מאותו הסוג. חובה שיהיה תנאי עצירה כדי למנוע לולאה אינסופית.",
	},
	{
		ID:          "a4",
		Title:       "מיון בועות (Bubble Sort)",
		Category:    CategoryAlgo,
		Description: "אלגוריתם מיון פשוט המחליף זוגות סמוכים אם הם לא בסדר הנכון.",
		Code: `מערך: [5, 1, 4]
סיבוב 1: [1, 5, 4] (החלפה בין 5 ל-1)
סיבוב 2: [1, 4, 5] (החלפה בין 5 ל-4)`,
		Explanation: "המספרים \"הכבדים\" (הגדולים) מבעבעים לסוף המערך בכל איטרציה.",
	},
	{
		ID:          "a5",
		Title:       "חיפוש בינארי (Binary Search)",
		Category:    CategoryAlgo,
		Description: "שיטה יעילה למציאת ערך ברשימה ממוינת על ידי חציית החיפוש בכל שלב.",
		Code: `רשימה: [2, 4, 6, 8, 10, 12, 14]
מחפשים 10:
1. אמצע = 8. 10 > 8, הולכים ימינה.
2. אמצע = 12. 10 < 12, הולכים שמאלה.
3. מצאנו את 10!`,
		Explanation: "עובד רק כשהרשימה מסודרת. מהיר הרבה יותר מלעבור אחד אחד (חיפוש לינארי).",
	},
	{
		ID:          "a6",
		Title:       "מונה וצובר (Counter & Accumulator)",
		Category:    CategoryAlgo,
		Description: "משתנים נפוצים בלולאות: מונה סופר פעמים (C=C+1), צובר מסכם ערכים (Sum=Sum+X).",
		Code: `Count = 0, Sum = 0
עבור כל ציון ברשימה:
   Count = Count + 1
   Sum = Sum + ציון
ממוצע = Sum / Count`,
		Explanation: "המונה משמש לדעת \"כמה יש\", הצובר משמש לדעת \"כמה סה״כ\".",
	},
	{
		ID:          "a7",
		Title:       "עץ בינארי (Binary Tree)",
		Category:    CategoryAlgo,
		Description: "מבנה נתונים היררכי שבו לכל צומת יש עד שני \"ילדים\" (שמאל וימין).",
		Code: `      5 (שורש)
    /   
   3     8
  /    /
 1   4 7`,
		Explanation: "משמש רבות לחיפוש ומיון. השורש למעלה, העלים למטה. בעץ חיפוש בינארי, כל מה שמשמאל קטן יותר וכל מה שמימין גדול יותר.",
		Illustration: `<svg viewBox="0 0 200 120" class="w-full h-full">
      <!-- Edges -->
      <line x1="100" y1="20" x2="60" y2="60" stroke="#94a3b8" stroke-width="2"/>
      <line x1="100" y1="20" x2="140" y2="60" stroke="#94a3b8" stroke-width="2"/>
      <line x1="60" y1="60" x2="40" y2="100" stroke="#94a3b8" stroke-width="2"/>
      <line x1="60" y1="60" x2="80" y2="100" stroke="#94a3b8" stroke-width="2"/>
      
      <!-- Nodes -->
      <circle cx="100" cy="20" r="12" fill="#f472b6" stroke="#db2777" stroke-width="2"/>
      <text x="100" y="23" text-anchor="middle" font-size="10" fill="white" font-weight="bold">5</text>
      
      <circle cx="60" cy="60" r="12" fill="#fbcfe8" stroke="#db2777" stroke-width="2"/>
      <text x="60" y="63" text-anchor="middle" font-size="10" fill="#9d174d" font-weight="bold">3</text>
      
      <circle cx="140" cy="60" r="12" fill="#fbcfe8" stroke="#db2777" stroke-width="2"/>
      <text x="140" y="63" text-anchor="middle" font-size="10" fill="#9d174d" font-weight="bold">8</text>
      
      <circle cx="40" cy="100" r="12" fill="#fdf2f8" stroke="#db2777" stroke-width="2"/>
      <text x="40" y="103" text-anchor="middle" font-size="10" fill="#9d174d" font-weight="bold">1</text>
      
      <circle cx="80" cy="100" r="12" fill="#fdf2f8" stroke="#db2777" stroke-width="2"/>
      <text x="80" y="103" text-anchor="middle" font-size="10" fill="#9d174d" font-weight="bold">4</text>
    </svg>`,
	},
	{
		ID:          "a8",
		Title:       "רשימה מקושרת (Linked List)",
		Category:    CategoryAlgo,
		Description: "רצף של חוליות, כאשר כל חוליה מכילה מידע ומצביע לחוליה הבאה.",
		Code: "[Data: 5 | Next] -> [Data: 10 | Next] -> NULL",
		Explanation: "בניגוד למערך, האיברים לא יושבים ברצף בזיכרון. קל להוסיף איברים באמצע, אבל קשה להגיע ישירות לאיבר ה-100 (צריך לעבור את כולם).",
		Illustration: `<svg viewBox="0 0 300 80" class="w-full h-full">
      <defs>
        <marker id="arrow-link" markerWidth="10" markerHeight="10" refX="9" refY="3" orient="auto" markerUnits="strokeWidth">
          <path d="M0,0 L0,6 L9,3 z" fill="#7c3aed" />
        </marker>
      </defs>
      
      <!-- Node 1 -->
      <rect x="20" y="25" width="40" height="30" fill="#ddd6fe" stroke="#7c3aed" stroke-width="2"/>
      <text x="40" y="43" text-anchor="middle" font-weight="bold" fill="#5b21b6">5</text>
      <rect x="60" y="25" width="20" height="30" fill="#8b5cf6" stroke="#7c3aed" stroke-width="2"/>
      <path d="M 80 40 L 110 40" stroke="#7c3aed" stroke-width="2" marker-end="url(#arrow-link)"/>
      
      <!-- Node 2 -->
      <rect x="120" y="25" width="40" height="30" fill="#ddd6fe" stroke="#7c3aed" stroke-width="2"/>
      <text x="140" y="43" text-anchor="middle" font-weight="bold" fill="#5b21b6">10</text>
      <rect x="160" y="25" width="20" height="30" fill="#8b5cf6" stroke="#7c3aed" stroke-width="2"/>
      <path d="M 180 40 L 210 40" stroke="#7c3aed" stroke-width="2" marker-end="url(#arrow-link)"/>
      
      <text x="230" y="45" font-family="monospace" font-weight="bold" fill="#4b5563">NULL</text>
    </svg>`,
	},
	{
		ID:          "a9",
		Title:       "סיבוכיות זמן (Time Complexity / Big O)",
		Category:    CategoryAlgo,
		Description: "דרך למדוד כמה מהיר האלגוריתם ביחס לכמות הקלט (N).",
		Code: `O(1) - זמן קבוע (גישה למערך)
O(N) - זמן לינארי (לולאה אחת)
O(N^2) - זמן ריבועי (לולאה בתוך לולאה)`,
		Explanation: "אלגוריתם \"יעיל\" הוא כזה שהסיבוכיות שלו נמוכה. למשל, עדיף O(log N) על פני O(N).",
		Illustration: `<svg viewBox="0 0 150 120" class="w-full h-full">
      <!-- Axes -->
      <line x1="20" y1="100" x2="140" y2="100" stroke="#000" stroke-width="1.5"/> <!-- X (N) -->
      <text x="140" y="115" font-size="10">N</text>
      <line x1="20" y1="100" x2="20" y2="10" stroke="#000" stroke-width="1.5"/> <!-- Y (Time) -->
      <text x="5" y="15" font-size="10">T</text>
      
      <!-- Curves -->
      <path d="M 20 100 Q 60 90 100 10" stroke="#ef4444" stroke-width="2" fill="none"/>
      <text x="105" y="20" font-size="10" fill="#ef4444" font-weight="bold">O(N²)</text>
      
      <path d="M 20 100 L 120 40" stroke="#3b82f6" stroke-width="2" fill="none"/> 
      <text x="125" y="40" font-size="10" fill="#3b82f6" font-weight="bold">O(N)</text>
      
      <path d="M 20 80 L 130 80" stroke="#22c55e" stroke-width="2" fill="none"/>
      <text x="135" y="80" font-size="10" fill="#22c55e" font-weight="bold">O(1)</text>
    </svg>`,
	},
	{
		ID:          "a10",
		Title:       "מילון / מפה (Hash Map / Dictionary)",
		Category:    CategoryAlgo,
		Description: "מבנה נתונים הממפה מפתח (Key) לערך (Value) ומאפשר חיפוש מהיר.",
		Code: `Grades = {} // מילון ריק
Grades["Danny"] = 90
Grades["Sarah"] = 100
// חיפוש מהיר O(1):
ציון_שרה = Grades["Sarah"]`,
		Explanation: "יעיל מאוד כשרוצים למצוא מידע לפי \"שם\" ולא לפי מיקום סידורי (כמו במערך).",
		Illustration: `<svg viewBox="0 0 250 100" class="w-full h-full">
      <defs>
        <marker id="arrow-map" markerWidth="10" markerHeight="10" refX="9" refY="3" orient="auto" markerUnits="strokeWidth">
          <path d="M0,0 L0,6 L9,3 z" fill="#f59e0b" />
        </marker>
      </defs>
      <rect x="20" y="20" width="60" height="30" fill="#fef3c7" stroke="#f59e0b"/>
      <text x="50" y="40" text-anchor="middle" font-size="12" fill="#92400e">"Danny"</text>
      
      <rect x="20" y="60" width="60" height="30" fill="#fef3c7" stroke="#f59e0b"/>
      <text x="50" y="80" text-anchor="middle" font-size="12" fill="#92400e">"Sarah"</text>
      
      <path d="M 80 35 L 140 35" stroke="#f59e0b" stroke-width="2" marker-end="url(#arrow-map)"/>
      <path d="M 80 75 L 140 75" stroke="#f59e0b" stroke-width="2" marker-end="url(#arrow-map)"/>
      
      <circle cx="160" cy="35" r="15" fill="#fde68a" stroke="#d97706"/>
      <text x="160" y="39" text-anchor="middle" font-weight="bold" fill="#b45309">90</text>
      
      <circle cx="160" cy="75" r="15" fill="#fde68a" stroke="#d97706"/>
      <text x="160" y="79" text-anchor="middle" font-weight="bold" fill="#b45309">100</text>
    </svg>`,
	},
	{
		ID:          "a11",
		Title:       "קבוצה (Set)",
		Category:    CategoryAlgo,
		Description: "אוסף של איברים ייחודיים ללא כפילויות וללא סדר חשיבות.",
		Code: `S = {1, 2, 2, 3}
// S יכיל בפועל: {1, 2, 3} (ה-2 הכפול נמחק)
האם 2 קיים ב-S? -> אמת
הוסף 4 ל-S -> {1, 2, 3, 4}`,
		Explanation: "מצוין לסינון כפילויות ולבדיקת שייכות מהירה.",
	},
	// Logic
	{
		ID:          "l1",
		Title:       "סדרת הפרשים",
		Category:    CategoryLogic,
		Description: "סדרה שבה ההפרש בין האיברים הוא קבוע או משתנה בחוקיות מסוימת.",
		Code: `2, 5, 8, 11... (הפרש קבוע +3)
2, 4, 8, 14... (הפרשים: +2, +4, +6...)`,
		Explanation: "תמיד חשב את ההפרש בין כל זוג מספרים סמוך כדי למצוא את החוקיות.",
	},
	{
		ID:          "l2",
		Title:       "סדרת דילוגים",
		Category:    CategoryLogic,
		Description: "שתי סדרות שונות המשולבות זו בזו לסירוגין.",
		Code: `10, 2, 20, 4, 30, 6...
סדרה א (מקומות אי זוגיים): 10, 20, 30...
סדרה ב (מקומות זוגיים): 2, 4, 6...`,
		Explanation: "אם הסדרה נראית ארוכה ולא הגיונית, נסה לבדוק את האיברים במקומות הזוגיים והאי-זוגיים בנפרד.",
	},
	{
		ID:          "l3",
		Title:       "סדרה הנדסית (Geometric)",
		Category:    CategoryLogic,
		Description: "סדרה בה כל איבר מתקבל על ידי הכפלת האיבר הקודם במספר קבוע.",
		Code: `3, 6, 12, 24, 48...
כאן כופלים כל פעם ב-2.`,
		Explanation: "שים לב אם המספרים גדלים בקצב מהיר מאוד - זה רמז לכפל ולא לחיבור.",
	},
	{
		ID:          "l4",
		Title:       "סדרת פיבונאצ׳י (Fibonacci)",
		Category:    CategoryLogic,
		Description: "סדרה שבה כל איבר הוא סכום שני האיברים הקודמים לו.",
		Code: `1, 1, 2, 3, 5, 8, 13...
1+1=2
1+2=3
2+3=5`,
		Explanation: "דפוס נפוץ מאוד במבחני לוגיקה. תמיד בדוק אם איבר הוא סכום קודמיו.",
	},
	{
		ID:          "l5",
		Title:       "היקש לוגי (Syllogism)",
		Category:    CategoryLogic,
		Description: "הסקת מסקנה משתי טענות או יותר.",
		Code: `טענה א: כל העננים לבנים.
טענה ב: דני הוא ענן.
מסקנה: דני הוא לבן.`,
		Explanation: "במבחנים, הטענות עשויות להיות דמיוניות (\"כל החרגולים סגולים\"). התמקד בלוגיקה הפורמלית ולא באמת המציאותית.",
	},
	{
		ID:          "l6",
		Title:       "סדרה משולבת פעולות",
		Category:    CategoryLogic,
		Description: "סדרה שבה המעבר בין איברים מערב יותר מפעולה מתמטית אחת.",
		Code: `2, 5, 11, 23, 47...
החוקיות: כפול 2 ועוד 1.
2*2+1 = 5
5*2+1 = 11`,
		Explanation: "לפעמים המספרים לא מסתדרים רק עם חיבור או כפל. נסה לשלב: \"כפול X ועוד Y\".",
	},
	{
		ID:          "l7",
		Title:       "מטריצות צורניות (Visual Matrices)",
		Category:    CategoryLogic,
		Description: "טבלה של צורות (למשל 3x3) שבה יש למצוא את הצורה החסרה לפי חוקיות השורות והטורים.",
		Code: `[O]  [OO]  [OOO]
[X]  [XX]  [XXX]
[*]  [**]   ?
התשובה: [***] (כמות הצורות גדלה ב-1)`,
		Explanation: "חפש חוקיות בשורות (שמאל לימין) ובטורים (למעלה למטה). החוקיות יכולה להיות חיבור צורות, חיסור, או תנועה.",
	},
	{
		ID:          "l8",
		Title:       "שער XOR (Exclusive OR)",
		Category:    CategoryLogic,
		Description: "פעולה לוגית שמחזירה אמת רק אם בדיוק אחד מהקלטים הוא אמת (ולא שניהם).",
		Code: `0 XOR 0 = 0
0 XOR 1 = 1
1 XOR 0 = 1
1 XOR 1 = 0 (זה ההבדל מ-OR רגיל)`,
		Explanation: "שימושי מאוד בהצפנה ובחידות לוגיות של \"או זה או זה אבל לא שניהם\".",
	},
	// OOP
	{
		ID:          "o1",
		Title:       "מחלקה ואובייקט (Class & Object)",
		Category:    CategoryOOP,
		Description: "מחלקה היא תבנית (מתכון), אובייקט הוא המופע שנוצר ממנה (העוגה).",
		Code: `Class Dog { ... }
Dog d1 = new Dog() // d1 הוא אובייקט מסוג Dog`,
		Explanation: "המחלקה מגדירה איזה תכונות ופעולות יהיו, האובייקט מכיל את הנתונים האמיתיים בזיכרון.",
	},
	{
		ID:          "o2",
		Title:       "ירושה (Inheritance)",
		Category:    CategoryOOP,
		Description: "מחלקה יכולה לרשת תכונות והתנהגות ממחלקה אחרת.",
		Code: `Class Animal { eat() }
Class Dog extends Animal { bark() }
// Dog יכול לעשות גם eat וגם bark`,
		Explanation: "מאפשר שימוש חוזר בקוד ומונע שכפול (DRY - Don't Repeat Yourself).",
	},
	{
		ID:          "o3",
		Title:       "פולימורפיזם (Polymorphism)",
		Category:    CategoryOOP,
		Description: "היכולת של אובייקטים מסוגים שונים להגיב לאותה פקודה בצורה שונה.",
		Code: `Animal a = new Dog()
a.makeSound() // ינבח
Animal b = new Cat()
b.makeSound() // יילל`,
		Explanation: "ריבוי צורות. למרות שהמשתנה הוא מסוג \"חיה\", ההתנהגות נקבעת לפי הסוג האמיתי שנוצר (כלב או חתול).",
	},
	{
		ID:          "o4",
		Title:       "כימוס (Encapsulation)",
		Category:    CategoryOOP,
		Description: "הסתרת המידע הפנימי של האובייקט וחשיפה רק של מה שנחוץ החוצה.",
		Code: `private int password;
public void setPassword(int p) { ... }`,
		Explanation: "שימוש ב-Private מגן על המשתנים משינוי לא רצוי מבחוץ. הגישה נעשית דרך פונקציות (Getters/Setters).",
	},
	{
		ID:          "o5",
		Title:       "בנאי (Constructor)",
		Category:    CategoryOOP,
		Description: "פונקציה מיוחדת שרצה באופן אוטומטי כשיוצרים אובייקט חדש.",
		Code: `Class Person {
   Person(name) { 
      this.name = name 
   }
}
p = new Person("Moshe") // הבנאי נקרא כאן`,
		Explanation: "הבנאי משמש בדרך כלל לאתחול הערכים הראשוניים של האובייקט.",
	},
	{
		ID:          "o6",
		Title:       "משתנה סטטי (Static)",
		Category:    CategoryOOP,
		Description: "משתנה ששייך למחלקה כולה ולא לאובייקט ספציפי.",
		Code: `Class User {
   static count = 0
   User() { count++ }
}
// count יספור כמה משתמשים נוצרו סה"כ`,
		Explanation: "משתנה סטטי הוא משותף לכל האובייקטים. אם משנים אותו במקום אחד, הוא משתנה עבור כולם.",
	},
	{
		ID:          "o7",
		Title:       "ממשק (Interface)",
		Category:    CategoryOOP,
		Description: "חוזה שמגדיר איזה פעולות מחלקה חייבת לממש, בלי לכתוב את הקוד עצמו.",
		Code: `Interface Flyable {
   void fly();
}
Class Bird implements Flyable {
   void fly() { ... } // חייב לממש את הפונקציה
}`,
		Explanation: "הממשק מגדיר \"מה\" עושים, והמחלקה שמממשת אותו מגדירה \"איך\" עושים את זה.",
	},
	{
		ID:          "o8",
		Title:       "מחלקה מופשטת (Abstract Class)",
		Category:    CategoryOOP,
		Description: "מחלקה שלא ניתן ליצור ממנה אובייקטים ישירות, ומשמשת כבסיס לירושה.",
		Code: `Abstract Class Shape { ... }
Shape s = new Shape() // שגיאה!
class Circle extends Shape { ... } // תקין`,
		Explanation: "משתמשים בזה כשרוצים להגדיר תכונות משותפות לכל הצורות, אבל \"צורה\" היא מושג כללי מדי מכדי להיות אובייקט בפני עצמו.",
	},
	{
		ID:          "o9",
		Title:       "העמסה (Overloading)",
		Category:    CategoryOOP,
		Description: "יצירת מספר פונקציות באותו שם, אך עם פרמטרים שונים.",
		Code: `Class Calculator {
   func add(a, b) { return a+b }
   func add(a, b, c) { return a+b+c }
}
calc.add(2,3) // קורא לראשונה
calc.add(2,3,4) // קורא לשנייה`,
		Explanation: "הקומפיילר יודע לאיזו פונקציה לגשת לפי כמות וסוג הפרמטרים שנשלחו.",
	},
	{
		ID:          "o10",
		Title:       "דריסה (Overriding)",
		Category:    CategoryOOP,
		Description: "כתיבה מחדש של פונקציה שהתקבלה בירושה ממחלקת האב.",
		Code: `Class Animal { 
   func sound() { print "Silence" } 
}
Class Dog extends Animal {
   // דריסה של הפונקציה המקורית
   func sound() { print "Bark" } 
}`,
		Explanation: "מאפשר למחלקת הבן להתנהג בצורה ספציפית שונה ממחלקת האב.",
	},
}
