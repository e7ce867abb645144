package server

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/shlvgit07/basmach/internal/coach"
	"github.com/shlvgit07/basmach/internal/glossary"
	"github.com/shlvgit07/basmach/internal/quiz"
)

// chatTimeout bounds a single assistant call.
const chatTimeout = 90 * time.Second

type startRequest struct {
	Difficulty string `json:"difficulty" validate:"omitempty,oneof=Easy Medium Hard"`
}

type difficultyRequest struct {
	Difficulty string `json:"difficulty" validate:"omitempty,oneof=Easy Medium Hard"`
}

type selectRequest struct {
	Index *int `json:"index" validate:"required,min=0,max=3"`
}

type chatRequest struct {
	Message string `json:"message" validate:"required,max=4000"`
}

type topicView struct {
	ID          quiz.Topic `json:"id"`
	Label       string     `json:"label"`
	ShortLabel  string     `json:"shortLabel"`
	Description string     `json:"description"`
}

var (
	submitAction   = quiz.Submit{}
	nextAction     = quiz.Next{}
	previousAction = quiz.Previous{}
)

// respond writes the state after ev, or 409 with the unchanged state when the
// reducer rejected it.
func (s *Server) respond(c *fiber.Ctx, events ...coach.Event) error {
	view, ok := s.apply(events...)
	if !ok {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "transition not allowed in the current mode",
			"state": view,
		})
	}
	return c.JSON(view)
}

func (s *Server) handleEvent(ev coach.Event) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return s.respond(c, ev)
	}
}

func (s *Server) handleQuizAction(a quiz.Action) fiber.Handler {
	return s.handleEvent(coach.Quiz{Action: a})
}

// GET /api/state
func (s *Server) handleState(c *fiber.Ctx) error {
	return c.JSON(s.snapshot())
}

// GET /api/topics
func (s *Server) handleTopics(c *fiber.Ctx) error {
	out := make([]topicView, 0, len(quiz.AllTopics()))
	for _, t := range quiz.AllTopics() {
		out = append(out, topicView{
			ID:          t,
			Label:       t.Label(),
			ShortLabel:  t.ShortLabel(),
			Description: t.Description(),
		})
	}
	return c.JSON(out)
}

// POST /api/topics/:topic/start
// Body: {"difficulty": "Easy|Medium|Hard"} (optional)
func (s *Server) handleStart(c *fiber.Ctx) error {
	topic, ok := quiz.ParseTopic(c.Params("topic"))
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("unknown topic %q", c.Params("topic")))
	}
	var req startRequest
	if err := s.bind(c, &req); err != nil {
		return err
	}

	var events []coach.Event
	if req.Difficulty != "" {
		events = append(events, coach.SetDifficulty{Difficulty: quiz.Difficulty(req.Difficulty)})
	}
	events = append(events, coach.ChooseTopic{Topic: topic})
	return s.respond(c, events...)
}

// POST /api/difficulty
// Body: {"difficulty": "Easy|Medium|Hard"}; empty clears the filter.
func (s *Server) handleDifficulty(c *fiber.Ctx) error {
	var req difficultyRequest
	if err := s.bind(c, &req); err != nil {
		return err
	}
	return s.respond(c, coach.SetDifficulty{Difficulty: quiz.Difficulty(req.Difficulty)})
}

// POST /api/quiz/select
// Body: {"index": 0..3}
func (s *Server) handleSelect(c *fiber.Ctx) error {
	var req selectRequest
	if err := s.bind(c, &req); err != nil {
		return err
	}
	return s.respond(c, coach.Quiz{Action: quiz.Select{Index: *req.Index}})
}

// POST /api/dictionary/terms/:id/practice
func (s *Server) handlePractice(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, ok := glossary.Lookup(id); !ok {
		return fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("unknown term %q", id))
	}
	return s.respond(c, coach.PracticeTerm{TermID: id})
}

// GET /api/glossary?q=&category=
func (s *Server) handleGlossary(c *fiber.Ctx) error {
	category, ok := glossary.ParseCategory(c.Query("category"))
	if !ok {
		return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("unknown category %q", c.Query("category")))
	}
	return c.JSON(glossary.Filter(glossary.Terms(), c.Query("q"), category))
}

// GET /api/glossary/:id
func (s *Server) handleTerm(c *fiber.Ctx) error {
	term, ok := glossary.Lookup(c.Params("id"))
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("unknown term %q", c.Params("id")))
	}
	return c.JSON(term)
}

// POST /api/chat
// Body: {"message": "..."}
func (s *Server) handleChat(c *fiber.Ctx) error {
	var req chatRequest
	if err := s.bind(c, &req); err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(c.UserContext(), chatTimeout)
	defer cancel()

	reply := s.assistant.Reply(ctx, req.Message)
	if reply == "" {
		return fiber.NewError(fiber.StatusBadRequest, "message is blank")
	}
	return c.JSON(fiber.Map{"reply": reply})
}
