package server

import (
	"github.com/shlvgit07/basmach/internal/coach"
	"github.com/shlvgit07/basmach/internal/navigator"
	"github.com/shlvgit07/basmach/internal/quiz"
)

// questionView is a question as sent to clients. The correct index and the
// explanation are withheld until the question is answered.
type questionView struct {
	ID           string           `json:"id"`
	Prompt       string           `json:"prompt"`
	Code         string           `json:"code,omitempty"`
	Illustration string           `json:"illustration,omitempty"`
	Options      []string         `json:"options"`
	OptionsKind  quiz.OptionsKind `json:"optionsKind"`
	Difficulty   quiz.Difficulty  `json:"difficulty,omitempty"`
	CorrectIndex *int             `json:"correctIndex,omitempty"`
	Explanation  string           `json:"explanation,omitempty"`
}

type sessionView struct {
	Phase      string          `json:"phase"`
	Topic      quiz.Topic      `json:"topic,omitempty"`
	TopicLabel string          `json:"topicLabel,omitempty"`
	Difficulty quiz.Difficulty `json:"difficulty,omitempty"`
	TermID     string          `json:"termId,omitempty"`
	Position   int             `json:"position"`
	Total      int             `json:"total"`
	Score      int             `json:"score"`
	Selection  int             `json:"selection"`
	Answered   bool            `json:"answered"`
	Question   *questionView   `json:"question,omitempty"`
	Error      string          `json:"error,omitempty"`
}

type stateView struct {
	Mode       navigator.Mode    `json:"mode"`
	Difficulty quiz.Difficulty   `json:"difficulty,omitempty"`
	Allowed    []navigator.Event `json:"allowed"`
	Session    sessionView       `json:"session"`
	Summary    *quiz.Summary     `json:"summary,omitempty"`
}

func newStateView(st coach.State) stateView {
	s := st.Session
	v := stateView{
		Mode:       st.Mode,
		Difficulty: st.Difficulty,
		Allowed:    navigator.Allowed(st.Mode),
		Session: sessionView{
			Phase:      s.Phase.String(),
			Topic:      s.Topic,
			Difficulty: s.Difficulty,
			TermID:     s.TermID,
			Position:   s.Position,
			Total:      len(s.Questions),
			Score:      s.Score,
			Selection:  s.Selection,
			Answered:   s.Answered(),
			Error:      s.Err,
		},
	}
	if s.Topic != "" {
		v.Session.TopicLabel = s.Topic.Label()
	}

	if q, ok := s.Current(); ok {
		qv := &questionView{
			ID:           q.ID,
			Prompt:       q.Prompt,
			Code:         q.Code,
			Illustration: q.Illustration,
			Options:      q.Options,
			OptionsKind:  q.OptionsKind,
			Difficulty:   q.Difficulty,
		}
		if v.Session.Answered {
			idx := q.CorrectIndex
			qv.CorrectIndex = &idx
			qv.Explanation = q.Explanation
		}
		v.Session.Question = qv
	}

	if st.Mode == navigator.ModeSummary {
		sum := s.Summary()
		v.Summary = &sum
	}
	return v
}
