// Package coach combines the navigator and the quiz session into the single
// application state both front ends drive.
package coach

import (
	"github.com/shlvgit07/basmach/internal/glossary"
	"github.com/shlvgit07/basmach/internal/navigator"
	"github.com/shlvgit07/basmach/internal/quiz"
)

// State is everything a front end renders from.
type State struct {
	Mode    navigator.Mode `json:"mode"`
	Session quiz.Session   `json:"session"`

	// Difficulty is the filter applied to the next ChooseTopic.
	Difficulty quiz.Difficulty `json:"difficulty,omitempty"`

	// Count is the batch size for new sessions; zero means quiz.DefaultCount.
	Count int `json:"count,omitempty"`
}

// New returns the initial state: the onboarding screen with no session.
func New() State {
	return State{Mode: navigator.ModeOnboarding, Session: quiz.New()}
}

// Event is anything a front end can ask the coach to do.
type Event interface {
	isEvent()
}

// ChooseTopic starts a quiz on Topic from the onboarding screen.
type ChooseTopic struct{ Topic quiz.Topic }

// PracticeTerm starts a quiz scoped to one glossary term from the
// dictionary.
type PracticeTerm struct{ TermID string }

// SetDifficulty changes the filter for the next quiz.
type SetDifficulty struct{ Difficulty quiz.Difficulty }

// RetryGeneration re-issues the request of a failed session.
type RetryGeneration struct{}

type (
	OpenDictionary  struct{}
	CloseDictionary struct{}
	RetryTopic      struct{}
	ReturnToMenu    struct{}
	Abandon         struct{}
)

// Quiz forwards an in-quiz action to the session.
type Quiz struct{ Action quiz.Action }

func (ChooseTopic) isEvent()     {}
func (PracticeTerm) isEvent()    {}
func (SetDifficulty) isEvent()   {}
func (RetryGeneration) isEvent() {}
func (OpenDictionary) isEvent()  {}
func (CloseDictionary) isEvent() {}
func (RetryTopic) isEvent()      {}
func (ReturnToMenu) isEvent()    {}
func (Abandon) isEvent()         {}
func (Quiz) isEvent()            {}

// Reduce applies ev to s. The second result is false when ev is not allowed
// in the current mode; s is then returned unchanged.
func Reduce(s State, ev Event) (State, bool) {
	switch ev := ev.(type) {
	case ChooseTopic:
		if _, ok := quiz.ParseTopic(string(ev.Topic)); !ok {
			return s, false
		}
		return navigate(s, navigator.ChooseTopic, quiz.Start{
			Topic:      ev.Topic,
			Difficulty: s.Difficulty,
			Count:      s.Count,
		})

	case PracticeTerm:
		term, ok := glossary.Lookup(ev.TermID)
		if !ok {
			return s, false
		}
		// dictionary → onboarding → quiz, both ordinary edges.
		mid, ok := navigator.Transition(s.Mode, navigator.CloseDictionary)
		if !ok {
			return s, false
		}
		return navigate(State{Mode: mid, Session: s.Session, Difficulty: s.Difficulty, Count: s.Count},
			navigator.ChooseTopic, quiz.Start{
				Topic:  term.Category.Topic(),
				TermID: term.ID,
				Count:  s.Count,
			})

	case SetDifficulty:
		if s.Mode != navigator.ModeOnboarding || !ev.Difficulty.Valid() {
			return s, false
		}
		s.Difficulty = ev.Difficulty
		return s, true

	case RetryGeneration:
		if s.Mode != navigator.ModeQuiz || s.Session.Phase != quiz.PhaseFailed {
			return s, false
		}
		s.Session = quiz.Reduce(s.Session, restart(s.Session))
		return s, true

	case OpenDictionary:
		return navigate(s, navigator.OpenDictionary, nil)
	case CloseDictionary:
		return navigate(s, navigator.CloseDictionary, nil)
	case RetryTopic:
		return navigate(s, navigator.RetryTopic, restart(s.Session))
	case ReturnToMenu:
		return navigate(s, navigator.ReturnToMenu, quiz.Reset{})
	case Abandon:
		return navigate(s, navigator.Abandon, quiz.Reset{})

	case Quiz:
		return applyQuiz(s, ev.Action)
	}
	return s, false
}

// navigate performs a navigator transition and, when it is allowed, applies
// the session action that accompanies it.
func navigate(s State, ev navigator.Event, a quiz.Action) (State, bool) {
	to, ok := navigator.Transition(s.Mode, ev)
	if !ok {
		return s, false
	}
	s.Mode = to
	if a != nil {
		s.Session = quiz.Reduce(s.Session, a)
	}
	return s, true
}

func applyQuiz(s State, a quiz.Action) (State, bool) {
	switch a.(type) {
	case quiz.Loaded, quiz.LoadFailed:
		// Token-guarded by the session; late results are harmless anywhere.
	case nil, quiz.Start, quiz.Reset:
		// Sessions start and end only through navigation events.
		return s, false
	default:
		if s.Mode != navigator.ModeQuiz {
			return s, false
		}
	}

	s.Session = quiz.Reduce(s.Session, a)
	if s.Mode == navigator.ModeQuiz && s.Session.Phase == quiz.PhaseComplete {
		s.Mode, _ = navigator.Transition(s.Mode, navigator.SessionComplete)
	}
	return s, true
}

// restart rebuilds the Start action that produced s.
func restart(s quiz.Session) quiz.Start {
	return quiz.Start{
		Topic:      s.Topic,
		Difficulty: s.Difficulty,
		TermID:     s.TermID,
		Count:      s.Count,
	}
}

// Pending returns the generation request the front end must run, if any.
func (s State) Pending() (quiz.Request, bool) {
	return s.Session.Pending()
}

// Term returns the glossary term the current session is scoped to.
func (s State) Term() (glossary.Term, bool) {
	if s.Session.TermID == "" {
		return glossary.Term{}, false
	}
	return glossary.Lookup(s.Session.TermID)
}
