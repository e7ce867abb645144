package quiz

// Action is an input to Reduce.
type Action interface {
	isAction()
}

// Start begins a new session for a topic. It is ignored while a request is
// already in flight.
type Start struct {
	Topic      Topic
	Difficulty Difficulty
	TermID     string
	Count      int
}

// Loaded delivers the provider result for the request identified by Token.
type Loaded struct {
	Token     uint64
	Questions []Question
}

// LoadFailed reports that the request identified by Token failed. Err is
// kept for logging by the caller; it never reaches the session.
type LoadFailed struct {
	Token uint64
	Err   error
}

// Select marks option Index as the pending choice.
type Select struct {
	Index int
}

// Submit commits the pending choice.
type Submit struct{}

// Next advances to the following question, or completes the session.
type Next struct{}

// Previous moves back one question.
type Previous struct{}

// Reset discards the session.
type Reset struct{}

func (Start) isAction()      {}
func (Loaded) isAction()     {}
func (LoadFailed) isAction() {}
func (Select) isAction()     {}
func (Submit) isAction()     {}
func (Next) isAction()       {}
func (Previous) isAction()   {}
func (Reset) isAction()      {}

// Reduce applies a to s and returns the resulting session. Actions that are
// not valid in the current state return s unchanged.
func Reduce(s Session, a Action) Session {
	switch a := a.(type) {
	case Start:
		return start(s, a)
	case Loaded:
		return loaded(s, a)
	case LoadFailed:
		return loadFailed(s, a)
	case Select:
		return selectOption(s, a.Index)
	case Submit:
		return submit(s)
	case Next:
		return next(s)
	case Previous:
		return previous(s)
	case Reset:
		return Session{Selection: NoSelection, Token: s.Token}
	default:
		return s
	}
}

func start(s Session, a Start) Session {
	if s.Phase == PhaseLoading {
		return s
	}
	count := a.Count
	if count <= 0 {
		count = DefaultCount
	}
	return Session{
		Phase:      PhaseLoading,
		Topic:      a.Topic,
		Difficulty: a.Difficulty,
		TermID:     a.TermID,
		Count:      count,
		Selection:  NoSelection,
		Token:      s.Token + 1,
	}
}

func loaded(s Session, a Loaded) Session {
	if s.Phase != PhaseLoading || a.Token != s.Token {
		return s
	}
	if len(a.Questions) == 0 {
		s.Phase = PhaseFailed
		s.Err = GenerationFailedMessage
		return s
	}
	s.Phase = PhaseReady
	s.Questions = append([]Question(nil), a.Questions...)
	s.Position = 0
	s.Selection = NoSelection
	return s
}

func loadFailed(s Session, a LoadFailed) Session {
	if s.Phase != PhaseLoading || a.Token != s.Token {
		return s
	}
	s.Phase = PhaseFailed
	s.Err = GenerationFailedMessage
	return s
}

func selectOption(s Session, index int) Session {
	q, ok := s.Current()
	if !ok || s.Answered() {
		return s
	}
	if index < 0 || index >= len(q.Options) {
		return s
	}
	s.Selection = index
	return s
}

func submit(s Session) Session {
	q, ok := s.Current()
	if !ok || !s.HasSelection() || s.Answered() {
		return s
	}
	correct := q.IsCorrect(s.Selection)

	answers := make([]Answer, len(s.Answers), len(s.Answers)+1)
	copy(answers, s.Answers)
	s.Answers = append(answers, Answer{
		QuestionID: q.ID,
		Selected:   s.Selection,
		Correct:    correct,
	})
	if correct {
		s.Score++
	}
	return s
}

func next(s Session) Session {
	if !s.Answered() {
		return s
	}
	if s.Position+1 >= len(s.Questions) {
		s.Phase = PhaseComplete
		s.Position = len(s.Questions)
		s.Selection = NoSelection
		return s
	}
	return restore(s, s.Position+1)
}

func previous(s Session) Session {
	if s.Phase != PhaseReady || s.Position <= 0 {
		return s
	}
	return restore(s, s.Position-1)
}

// restore moves to position and reloads that question's sub-state from the
// answer history, keyed by question ID.
func restore(s Session, position int) Session {
	s.Position = position
	s.Selection = NoSelection
	if a, ok := s.AnswerFor(s.Questions[position].ID); ok {
		s.Selection = a.Selected
	}
	return s
}
