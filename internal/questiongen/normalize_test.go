package questiongen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shlvgit07/basmach/internal/quiz"
)

func intPtr(i int) *int { return &i }

func validRaw() rawQuestion {
	return rawQuestion{
		Question:     "  מה ערכו של A בסוף הריצה?  ",
		Code:         "\n1. Move 5 to A\n2. Add 3 to A\n",
		Options:      []string{"5", " 8 ", "3", "15"},
		OptionsKind:  "text",
		CorrectIndex: intPtr(1),
		Explanation:  "A מתחיל ב-5 ואז מוסיפים 3, לכן 8.",
		Difficulty:   "easy",
	}
}

func testBatch() batch {
	return batch{
		topic:      quiz.TopicPseudoCode,
		id:         "b1",
		validators: DefaultConfig().Validators,
	}
}

func TestNormalize_ValidItem(t *testing.T) {
	got, dropped := testBatch().normalize([]rawQuestion{validRaw()})
	require.Empty(t, dropped)
	require.Len(t, got, 1)

	q := got[0]
	assert.Equal(t, "pseudo_code-b1-0", q.ID)
	assert.Equal(t, quiz.TopicPseudoCode, q.Topic)
	assert.Equal(t, "מה ערכו של A בסוף הריצה?", q.Prompt)
	assert.Equal(t, "1. Move 5 to A\n2. Add 3 to A", q.Code)
	assert.Equal(t, []string{"5", "8", "3", "15"}, q.Options)
	assert.Equal(t, quiz.OptionsText, q.OptionsKind)
	assert.Equal(t, 1, q.CorrectIndex)
	assert.Equal(t, quiz.DifficultyEasy, q.Difficulty)
	assert.Empty(t, q.Illustration)
}

func TestNormalize_DropsMalformedItems(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*rawQuestion)
	}{
		{"blank prompt", func(r *rawQuestion) { r.Question = "   " }},
		{"blank explanation", func(r *rawQuestion) { r.Explanation = "" }},
		{"three options", func(r *rawQuestion) { r.Options = r.Options[:3] }},
		{"five options", func(r *rawQuestion) { r.Options = append(r.Options, "20") }},
		{"empty option", func(r *rawQuestion) { r.Options[2] = "  " }},
		{"missing correct index", func(r *rawQuestion) { r.CorrectIndex = nil }},
		{"correct index too high", func(r *rawQuestion) { r.CorrectIndex = intPtr(4) }},
		{"negative correct index", func(r *rawQuestion) { r.CorrectIndex = intPtr(-1) }},
		{"duplicate options", func(r *rawQuestion) { r.Options = []string{"5", "8", "8 ", "15"} }},
		{"mixed svg and text", func(r *rawQuestion) {
			r.Options = []string{`<svg viewBox="0 0 10 10"><circle r="4"/></svg>`, "8", "3", "15"}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bad := validRaw()
			tt.mutate(&bad)

			got, dropped := testBatch().normalize([]rawQuestion{bad, validRaw()})
			require.Len(t, got, 1, "the valid item survives")
			assert.Len(t, dropped, 1)
			assert.Equal(t, "pseudo_code-b1-0", got[0].ID, "IDs count survivors only")
		})
	}
}

func TestNormalize_DetectsSVGOptions(t *testing.T) {
	shapes := []string{
		`<svg viewBox="0 0 100 100"><circle cx="50" cy="50" r="40"/></svg>`,
		`<svg viewBox="0 0 100 100"><rect width="80" height="80"/></svg>`,
		`<SVG viewBox="0 0 100 100"><polygon points="50,10 90,90 10,90"/></SVG>`,
		`<svg viewBox="0 0 100 100"><line x1="0" y1="0" x2="100" y2="100"/></svg>`,
	}

	claimedText := validRaw()
	claimedText.Options = shapes
	claimedText.OptionsKind = "text"
	claimedText.Illustration = `<svg viewBox="0 0 100 100"><circle r="10"/></svg>`

	claimedSVG := validRaw()
	claimedSVG.OptionsKind = "svg"
	claimedSVG.Illustration = "a circle"

	got, dropped := testBatch().normalize([]rawQuestion{claimedText, claimedSVG})
	require.Empty(t, dropped)
	require.Len(t, got, 2)

	assert.Equal(t, quiz.OptionsSVG, got[0].OptionsKind)
	assert.NotEmpty(t, got[0].Illustration)
	assert.Equal(t, quiz.OptionsText, got[1].OptionsKind, "markup decides, not the claim")
	assert.Empty(t, got[1].Illustration, "non-svg illustration is discarded")
}

func TestNormalize_UniqueIDsAndLimit(t *testing.T) {
	items := []rawQuestion{validRaw(), validRaw(), validRaw(), validRaw()}
	b := testBatch()
	b.limit = 3

	got, _ := b.normalize(items)
	require.Len(t, got, 3)

	ids := map[string]bool{}
	for _, q := range got {
		ids[q.ID] = true
	}
	assert.Len(t, ids, 3)
}

func TestCoerceDifficulty(t *testing.T) {
	tests := []struct {
		in        string
		requested quiz.Difficulty
		want      quiz.Difficulty
	}{
		{"Easy", quiz.DifficultyAny, quiz.DifficultyEasy},
		{"HARD", quiz.DifficultyAny, quiz.DifficultyHard},
		{" medium ", quiz.DifficultyEasy, quiz.DifficultyMedium},
		{"קשה", quiz.DifficultyAny, quiz.DifficultyHard},
		{"", quiz.DifficultyHard, quiz.DifficultyHard},
		{"extreme", quiz.DifficultyEasy, quiz.DifficultyEasy},
		{"", quiz.DifficultyAny, quiz.DifficultyMedium},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, coerceDifficulty(tt.in, tt.requested), "coerceDifficulty(%q, %q)", tt.in, tt.requested)
	}
}

func TestValidators(t *testing.T) {
	q := &quiz.Question{Options: []string{"A", "B", "C", "D"}, Explanation: "הסבר"}
	assert.Nil(t, (&OptionsValidator{}).Validate(q))
	assert.Nil(t, (&ExplanationValidator{MaxLen: 4}).Validate(q))

	long := &quiz.Question{Explanation: "הסבר ארוך"}
	verr := (&ExplanationValidator{MaxLen: 4}).Validate(long)
	require.NotNil(t, verr)
	assert.Equal(t, "explanation", verr.Validator)
	assert.Nil(t, (&ExplanationValidator{}).Validate(long), "zero MaxLen disables the check")
}
