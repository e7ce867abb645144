package quiz

// Phase is the lifecycle phase of a quiz session.
type Phase int

const (
	PhaseIdle     Phase = iota // No session
	PhaseLoading               // Waiting on the question provider
	PhaseReady                 // Questions loaded, quiz in progress
	PhaseFailed                // Generation failed; retry or abandon
	PhaseComplete              // Finalized into a summary
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseReady:
		return "ready"
	case PhaseFailed:
		return "failed"
	case PhaseComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// NoSelection marks the absence of a pending option selection.
const NoSelection = -1

// DefaultCount is the number of questions requested per session.
const DefaultCount = 5

// GenerationFailedMessage is the only error text a learner ever sees when
// question generation fails.
const GenerationFailedMessage = "מצטער, הייתה בעיה ביצירת השאלות. אנא נסה שנית."

// Session is the complete, serializable state of one quiz attempt.
// Use Reduce to move between states; a Session value is never mutated
// in place by this package.
type Session struct {
	Phase Phase `json:"phase"`

	Topic      Topic      `json:"topic,omitempty"`
	Difficulty Difficulty `json:"difficulty,omitempty"`
	// TermID scopes generation to a single glossary term when set.
	TermID string `json:"termId,omitempty"`
	Count  int    `json:"count,omitempty"`

	Questions []Question `json:"questions,omitempty"`
	Position  int        `json:"position"`
	Score     int        `json:"score"`
	Answers   []Answer   `json:"answers,omitempty"`

	// Selection is the pending, not yet submitted, option index for the
	// current question, or the stored choice when it was already answered.
	Selection int `json:"selection"`

	// Err is the user-facing failure message while in PhaseFailed.
	Err string `json:"error,omitempty"`

	// Token identifies the most recent generation request. Responses that
	// carry any other token are stale.
	Token uint64 `json:"token"`
}

// New returns an idle session.
func New() Session {
	return Session{Selection: NoSelection}
}

// Request describes the provider call a session in PhaseLoading is waiting on.
type Request struct {
	Token      uint64
	Topic      Topic
	Difficulty Difficulty
	TermID     string
	Count      int
}

// Pending returns the outstanding generation request, if any.
func (s Session) Pending() (Request, bool) {
	if s.Phase != PhaseLoading {
		return Request{}, false
	}
	return Request{
		Token:      s.Token,
		Topic:      s.Topic,
		Difficulty: s.Difficulty,
		TermID:     s.TermID,
		Count:      s.Count,
	}, true
}

// Current returns the question at the current position.
func (s Session) Current() (Question, bool) {
	if s.Phase != PhaseReady || s.Position < 0 || s.Position >= len(s.Questions) {
		return Question{}, false
	}
	return s.Questions[s.Position], true
}

// AnswerFor looks up the committed answer for a question ID.
func (s Session) AnswerFor(questionID string) (Answer, bool) {
	for _, a := range s.Answers {
		if a.QuestionID == questionID {
			return a, true
		}
	}
	return Answer{}, false
}

// Answered reports whether the current question already has an answer.
func (s Session) Answered() bool {
	q, ok := s.Current()
	if !ok {
		return false
	}
	_, ok = s.AnswerFor(q.ID)
	return ok
}

// HasSelection reports whether an option is currently selected.
func (s Session) HasSelection() bool {
	return s.Selection != NoSelection
}

// IsLast reports whether the current question is the final one.
func (s Session) IsLast() bool {
	return s.Phase == PhaseReady && s.Position == len(s.Questions)-1
}

// Progress returns the fraction of questions already passed, in [0,1].
func (s Session) Progress() float64 {
	if len(s.Questions) == 0 {
		return 0
	}
	return float64(s.Position) / float64(len(s.Questions))
}
