package questiongen

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/shlvgit07/basmach/internal/quiz"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// rawQuestion is one item of the provider response before normalization.
type rawQuestion struct {
	Question     string   `json:"question" validate:"required"`
	Code         string   `json:"code"`
	Illustration string   `json:"illustration"`
	Options      []string `json:"options" validate:"len=4,dive,required"`
	OptionsKind  string   `json:"options_kind"`
	CorrectIndex *int     `json:"correct_index" validate:"required,min=0,max=3"`
	Explanation  string   `json:"explanation" validate:"required"`
	Difficulty   string   `json:"difficulty"`
}

// rawBatch is the provider response envelope.
type rawBatch struct {
	Questions []rawQuestion `json:"questions"`
}

// batch carries the request context normalization needs.
type batch struct {
	topic      quiz.Topic
	difficulty quiz.Difficulty
	id         string
	limit      int
	validators []Validator
}

// normalize converts raw items into questions, dropping every item that
// fails struct validation or a Validator. With a difficulty filter, items
// the provider tagged with another tier are dropped too. It returns the
// survivors in provider order and the reasons for each drop.
func (b batch) normalize(items []rawQuestion) ([]quiz.Question, []error) {
	var (
		out     []quiz.Question
		dropped []error
	)
	for i, raw := range items {
		if b.limit > 0 && len(out) == b.limit {
			break
		}
		raw = trimRaw(raw)
		if err := validate.Struct(raw); err != nil {
			dropped = append(dropped, fmt.Errorf("item %d: %w", i, err))
			continue
		}

		q := quiz.Question{
			ID:           fmt.Sprintf("%s-%s-%d", b.topic, b.id, len(out)),
			Topic:        b.topic,
			Prompt:       raw.Question,
			Code:         raw.Code,
			Options:      raw.Options,
			OptionsKind:  optionsKind(raw.Options),
			CorrectIndex: *raw.CorrectIndex,
			Explanation:  raw.Explanation,
			Difficulty:   coerceDifficulty(raw.Difficulty, b.difficulty),
		}
		if b.difficulty != quiz.DifficultyAny && q.Difficulty != b.difficulty {
			dropped = append(dropped, &ValidationError{
				Validator: "difficulty",
				Index:     i,
				Message:   fmt.Sprintf("tagged %s, requested %s", q.Difficulty, b.difficulty),
			})
			continue
		}
		if isSVG(raw.Illustration) {
			q.Illustration = raw.Illustration
		}

		if verr := b.check(&q); verr != nil {
			verr.Index = i
			dropped = append(dropped, verr)
			continue
		}
		out = append(out, q)
	}
	return out, dropped
}

func (b batch) check(q *quiz.Question) *ValidationError {
	for _, v := range b.validators {
		if verr := v.Validate(q); verr != nil {
			return verr
		}
	}
	return nil
}

func trimRaw(r rawQuestion) rawQuestion {
	r.Question = strings.TrimSpace(r.Question)
	r.Code = strings.Trim(r.Code, "\n")
	if strings.TrimSpace(r.Code) == "" {
		r.Code = ""
	}
	r.Illustration = strings.TrimSpace(r.Illustration)
	r.Explanation = strings.TrimSpace(r.Explanation)
	opts := make([]string, len(r.Options))
	for i, o := range r.Options {
		opts[i] = strings.TrimSpace(o)
	}
	r.Options = opts
	return r
}

// optionsKind reports svg only when every option is SVG markup, whatever
// the provider claimed.
func optionsKind(options []string) quiz.OptionsKind {
	if len(options) == 0 {
		return quiz.OptionsText
	}
	for _, o := range options {
		if !isSVG(o) {
			return quiz.OptionsText
		}
	}
	return quiz.OptionsSVG
}

func isSVG(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.HasPrefix(s, "<svg") && strings.HasSuffix(s, "</svg>")
}

// coerceDifficulty maps a provider tier onto quiz.Difficulty. Unknown or
// missing values fall back to the requested filter, then Medium.
func coerceDifficulty(s string, requested quiz.Difficulty) quiz.Difficulty {
	s = strings.TrimSpace(s)
	for _, d := range quiz.Difficulties() {
		if strings.EqualFold(s, string(d)) || s == d.Label() {
			return d
		}
	}
	if requested != quiz.DifficultyAny {
		return requested
	}
	return quiz.DifficultyMedium
}
