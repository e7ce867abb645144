package quiz

import "math"

// Summary holds the data displayed when a session completes.
type Summary struct {
	Topic      Topic  `json:"topic"`
	Score      int    `json:"score"`
	Total      int    `json:"total"`
	Percentage int    `json:"percentage"`
	Feedback   string `json:"feedback"`
}

// Summary builds the result view of the session. It is meaningful once the
// session is complete but can be called at any point.
func (s Session) Summary() Summary {
	total := len(s.Questions)
	pct := 0
	if total > 0 {
		pct = int(math.Round(float64(s.Score) / float64(total) * 100))
	}
	return Summary{
		Topic:      s.Topic,
		Score:      s.Score,
		Total:      total,
		Percentage: pct,
		Feedback:   Feedback(pct),
	}
}

// Feedback returns the encouragement line for a percentage score.
func Feedback(percentage int) string {
	switch {
	case percentage >= 90:
		return "מצוין! אתה מוכן למיונים."
	case percentage >= 70:
		return "עבודה טובה, אבל יש מקום לשיפור."
	default:
		return "כדאי להמשיך לתרגל עוד קצת."
	}
}
