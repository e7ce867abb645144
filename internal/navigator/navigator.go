// Package navigator decides which top-level screen is shown.
package navigator

// Mode is the top-level application screen.
type Mode string

const (
	ModeOnboarding Mode = "onboarding"
	ModeQuiz       Mode = "quiz"
	ModeSummary    Mode = "summary"
	ModeDictionary Mode = "dictionary"
)

// Event is a navigation request.
type Event string

const (
	ChooseTopic     Event = "choose-topic"
	OpenDictionary  Event = "open-dictionary"
	CloseDictionary Event = "close-dictionary"
	SessionComplete Event = "session-complete"
	RetryTopic      Event = "retry-topic"
	ReturnToMenu    Event = "return-to-menu"
	Abandon         Event = "abandon"
)

type edge struct {
	from  Mode
	event Event
}

var transitions = map[edge]Mode{
	{ModeOnboarding, ChooseTopic}:     ModeQuiz,
	{ModeOnboarding, OpenDictionary}:  ModeDictionary,
	{ModeDictionary, CloseDictionary}: ModeOnboarding,
	{ModeQuiz, SessionComplete}:       ModeSummary,
	{ModeQuiz, Abandon}:               ModeOnboarding,
	{ModeSummary, RetryTopic}:         ModeQuiz,
	{ModeSummary, ReturnToMenu}:       ModeOnboarding,
}

// Transition returns the mode reached from `from` on ev. The second result is
// false, and from is returned unchanged, when the transition is not allowed.
func Transition(from Mode, ev Event) (Mode, bool) {
	to, ok := transitions[edge{from, ev}]
	if !ok {
		return from, false
	}
	return to, true
}

// Allowed lists the events accepted in mode m.
func Allowed(m Mode) []Event {
	var out []Event
	for _, ev := range []Event{ChooseTopic, OpenDictionary, CloseDictionary, SessionComplete, RetryTopic, ReturnToMenu, Abandon} {
		if _, ok := transitions[edge{m, ev}]; ok {
			out = append(out, ev)
		}
	}
	return out
}
