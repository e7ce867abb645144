// Package server exposes the coach over a local JSON API so a browser client
// can drive the same quiz flow as the terminal UI.
package server

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"github.com/shlvgit07/basmach/internal/assistant"
	"github.com/shlvgit07/basmach/internal/coach"
	"github.com/shlvgit07/basmach/internal/questiongen"
)

// Config controls the HTTP server.
type Config struct {
	// Addr is the listen address.
	Addr string

	// GenerateTimeout bounds one question generation request.
	GenerateTimeout time.Duration

	// ChatPerMinute caps chat requests per client per minute.
	ChatPerMinute int

	// Count is the number of questions per session; zero means the default.
	Count int

	// AccessLog enables the per-request log line.
	AccessLog bool
}

// DefaultConfig returns the settings used by `basmach serve`.
func DefaultConfig() Config {
	return Config{
		Addr:            "127.0.0.1:8080",
		GenerateTimeout: 2 * time.Minute,
		ChatPerMinute:   20,
		AccessLog:       true,
	}
}

// Server holds one coach state shared by every client. Reducer access is
// serialized by mu; generation runs in the background and reports back
// through the same token guard the terminal UI uses.
type Server struct {
	app       *fiber.App
	cfg       Config
	gen       questiongen.Generator
	assistant *assistant.Service
	validate  *validator.Validate

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu        sync.Mutex
	state     coach.State
	requested uint64
}

// New builds a server. gen and asst may be nil: quizzes then fail with the
// generation error and chat answers with the fallback reply.
func New(cfg Config, gen questiongen.Generator, asst *assistant.Service) *Server {
	if cfg.GenerateTimeout <= 0 {
		cfg.GenerateTimeout = DefaultConfig().GenerateTimeout
	}
	if cfg.ChatPerMinute <= 0 {
		cfg.ChatPerMinute = DefaultConfig().ChatPerMinute
	}
	if asst == nil {
		asst = assistant.New(nil, assistant.DefaultConfig())
	}

	ctx, cancel := context.WithCancel(context.Background())
	s := &Server{
		cfg:       cfg,
		gen:       gen,
		assistant: asst,
		validate:  validator.New(validator.WithRequiredStructEnabled()),
		ctx:       ctx,
		cancel:    cancel,
		state:     coach.New(),
	}
	s.state.Count = cfg.Count

	s.app = fiber.New(fiber.Config{
		AppName:               "basmach",
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler,
	})
	s.routes()
	return s
}

func (s *Server) routes() {
	s.app.Use(recover.New())
	s.app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	if s.cfg.AccessLog {
		s.app.Use(logger.New(logger.Config{
			Format: "${time} ${locals:requestid} ${status} ${latency} ${method} ${path}\n",
		}))
	}

	s.app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := s.app.Group("/api")
	api.Get("/state", s.handleState)
	api.Get("/topics", s.handleTopics)
	api.Post("/topics/:topic/start", s.handleStart)
	api.Post("/difficulty", s.handleDifficulty)

	q := api.Group("/quiz")
	q.Post("/select", s.handleSelect)
	q.Post("/submit", s.handleQuizAction(submitAction))
	q.Post("/next", s.handleQuizAction(nextAction))
	q.Post("/previous", s.handleQuizAction(previousAction))
	q.Post("/retry", s.handleEvent(coach.RetryGeneration{}))
	q.Post("/abandon", s.handleEvent(coach.Abandon{}))

	api.Post("/summary/retry", s.handleEvent(coach.RetryTopic{}))
	api.Post("/summary/menu", s.handleEvent(coach.ReturnToMenu{}))

	api.Post("/dictionary/open", s.handleEvent(coach.OpenDictionary{}))
	api.Post("/dictionary/close", s.handleEvent(coach.CloseDictionary{}))
	api.Post("/dictionary/terms/:id/practice", s.handlePractice)

	api.Get("/glossary", s.handleGlossary)
	api.Get("/glossary/:id", s.handleTerm)

	api.Post("/chat", limiter.New(limiter.Config{
		Max:        s.cfg.ChatPerMinute,
		Expiration: time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many chat messages. Please try again later.",
			})
		},
	}), s.handleChat)
}

// App returns the underlying fiber app.
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen serves until Shutdown is called or the listener fails.
func (s *Server) Listen() error {
	return s.app.Listen(s.cfg.Addr)
}

// Shutdown stops accepting requests, cancels generation in flight and waits
// for it to finish. No generation starts once it has been called.
func (s *Server) Shutdown(ctx context.Context) error {
	err := s.app.ShutdownWithContext(ctx)

	s.mu.Lock()
	s.cancel()
	s.mu.Unlock()
	s.wg.Wait()
	return err
}

// apply runs ev through the reducer and starts generation when the session
// is waiting for questions. The second result is false when ev was rejected.
func (s *Server) apply(events ...coach.Event) (stateView, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.state
	for _, ev := range events {
		var ok bool
		next, ok = coach.Reduce(next, ev)
		if !ok {
			return newStateView(s.state), false
		}
	}
	s.state = next
	s.startPending()
	return newStateView(s.state), true
}

// startPending launches the generation request of the current session once.
// mu must be held.
func (s *Server) startPending() {
	req, ok := s.state.Pending()
	if !ok || req.Token == s.requested || s.ctx.Err() != nil {
		return
	}
	s.requested = req.Token

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ctx, cancel := context.WithTimeout(s.ctx, s.cfg.GenerateTimeout)
		defer cancel()
		action := questiongen.Fulfill(ctx, s.gen, req)

		s.mu.Lock()
		defer s.mu.Unlock()
		s.state, _ = coach.Reduce(s.state, coach.Quiz{Action: action})
	}()
}

func (s *Server) snapshot() stateView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return newStateView(s.state)
}

// errorHandler renders every error as {"error": "..."}.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}
	return c.Status(code).JSON(fiber.Map{"error": err.Error()})
}

// bind parses the JSON body into out and validates it. An empty body leaves
// out at its zero value.
func (s *Server) bind(c *fiber.Ctx, out any) error {
	if len(c.Body()) > 0 {
		if err := c.BodyParser(out); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("invalid body: %v", err))
		}
	}
	if err := s.validate.Struct(out); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, validationMessage(err))
	}
	return nil
}

func validationMessage(err error) string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return err.Error()
	}
	fe := verrs[0]
	return fmt.Sprintf("field %q failed %q", fe.Field(), fe.Tag())
}
