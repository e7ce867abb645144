package quiz

// Topic identifies one exam subject area.
type Topic string

const (
	TopicPseudoCode  Topic = "pseudo_code"
	TopicLogicSeries Topic = "logic_series"
	TopicAlgorithms  Topic = "algorithms"
	TopicOOP         Topic = "oop"
	TopicEnglish     Topic = "english"
	TopicSQL         Topic = "sql"
)

// AllTopics returns every topic in menu order.
func AllTopics() []Topic {
	return []Topic{
		TopicPseudoCode,
		TopicLogicSeries,
		TopicAlgorithms,
		TopicOOP,
		TopicEnglish,
		TopicSQL,
	}
}

// ParseTopic returns the topic named s, or false if s is not a known topic.
func ParseTopic(s string) (Topic, bool) {
	for _, t := range AllTopics() {
		if string(t) == s {
			return t, true
		}
	}
	return "", false
}

// Label returns the Hebrew menu label for the topic.
func (t Topic) Label() string {
	switch t {
	case TopicPseudoCode:
		return "הוראות מחשב (Pseudo)"
	case TopicLogicSeries:
		return "לוגיקה וצורות"
	case TopicAlgorithms:
		return "חשיבה אלגוריתמית"
	case TopicOOP:
		return "מונחה עצמים (OOP)"
	case TopicEnglish:
		return "אנגלית טכנית"
	case TopicSQL:
		return "מסדי נתונים (SQL)"
	default:
		return string(t)
	}
}

// ShortLabel is the compact name shown on the summary screen.
func (t Topic) ShortLabel() string {
	switch t {
	case TopicPseudoCode:
		return "הוראות מחשב"
	case TopicLogicSeries:
		return "לוגיקה"
	case TopicAlgorithms:
		return "אלגוריתמים"
	case TopicOOP:
		return "OOP"
	case TopicEnglish:
		return "אנגלית"
	case TopicSQL:
		return "SQL"
	default:
		return string(t)
	}
}

// Description is the one-line blurb shown under the topic label.
func (t Topic) Description() string {
	switch t {
	case TopicPseudoCode:
		return "סימולציית הרצת קוד, לולאות, תנאים ומשתנים."
	case TopicLogicSeries:
		return "זיהוי חוקיות, סדרות מספרים ומבחני אינטליגנציה חזותיים."
	case TopicAlgorithms:
		return "פתרון בעיות, תרשימי זרימה, רקורסיה ויעילות."
	case TopicOOP:
		return "מחלקות, ירושה, פולימורפיזם וכימוס."
	case TopicEnglish:
		return "הבנת הנקרא ומושגים טכניים באנגלית."
	case TopicSQL:
		return "שאילתות, טבלאות, קשרי גומלין וסינון נתונים."
	default:
		return ""
	}
}

// Difficulty is the optional difficulty tier of a question. The empty value
// means "unspecified" when used as a generation filter.
type Difficulty string

const (
	DifficultyAny    Difficulty = ""
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// Difficulties returns the concrete tiers from easiest to hardest.
func Difficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}
}

// Label returns the Hebrew badge text. Unspecified renders as Medium.
func (d Difficulty) Label() string {
	switch d {
	case DifficultyEasy:
		return "קל"
	case DifficultyHard:
		return "קשה"
	default:
		return "בינוני"
	}
}

// Valid reports whether d is one of the concrete tiers or unspecified.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyAny, DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// OptionsKind tells front ends how to render answer options.
type OptionsKind string

const (
	OptionsText OptionsKind = "text"
	OptionsSVG  OptionsKind = "svg"
)

// OptionCount is the number of answer options every question carries.
const OptionCount = 4

// Question is one multiple-choice question as produced by the provider
// boundary. Questions are never modified after they enter a session.
type Question struct {
	ID    string `json:"id"`
	Topic Topic  `json:"topic"`

	// Prompt is the question text shown to the learner.
	Prompt string `json:"prompt"`

	// Code is an optional code block, instruction listing or English
	// paragraph displayed under the prompt.
	Code string `json:"code,omitempty"`

	// Illustration is optional SVG markup.
	Illustration string `json:"illustration,omitempty"`

	Options      []string    `json:"options"`
	OptionsKind  OptionsKind `json:"optionsKind"`
	CorrectIndex int         `json:"correctIndex"`
	Explanation  string      `json:"explanation"`
	Difficulty   Difficulty  `json:"difficulty,omitempty"`
}

// IsCorrect reports whether option index i is the correct one.
func (q Question) IsCorrect(i int) bool {
	return i == q.CorrectIndex
}

// Answer records the learner's committed choice for one question.
type Answer struct {
	QuestionID string `json:"questionId"`
	Selected   int    `json:"selected"`
	Correct    bool   `json:"correct"`
}
