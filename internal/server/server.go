// Package server exposes the letter generator, email delivery, and reminder
// subsystem over HTTP for the web form.
package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dshills/depositclaim/internal/letter"
	"github.com/dshills/depositclaim/internal/llm"
	"github.com/dshills/depositclaim/internal/mail"
	"github.com/dshills/depositclaim/internal/reminder"
	"github.com/dshills/depositclaim/internal/store"
)

// Handler serves the HTTP API. The letter pipeline itself is pure; the
// handler owns the only clock read and passes today explicitly everywhere.
type Handler struct {
	logger   *slog.Logger
	store    store.Store
	sender   mail.Sender
	selector letter.Selector
	// provider is nil when no LLM is configured; generation then always
	// uses the deterministic templates.
	provider llm.Provider
	// now is the single clock source, replaceable in tests.
	now func() time.Time
}

// Option configures a Handler.
type Option func(*Handler)

// WithProvider enables the LLM draft path.
func WithProvider(p llm.Provider) Option {
	return func(h *Handler) { h.provider = p }
}

// WithSelector overrides the escalation policy.
func WithSelector(s letter.Selector) Option {
	return func(h *Handler) { h.selector = s }
}

// WithClock replaces the clock source. Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(h *Handler) { h.now = now }
}

// New creates a Handler over the given collaborators.
func New(logger *slog.Logger, st store.Store, sender mail.Sender, opts ...Option) *Handler {
	h := &Handler{
		logger: logger,
		store:  st,
		sender: sender,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Routes builds the chi router for the API.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", h.handleHealth)
	r.Post("/api/generate", h.handleGenerate)
	r.Post("/api/email", h.handleEmail)
	r.Post("/api/reminders", h.handleSetupReminder)
	r.Get("/api/reminders/run", h.handleRunReminders)

	return r
}

func (h *Handler) sweeper() *reminder.Sweeper {
	return &reminder.Sweeper{Store: h.store, Sender: h.sender, Logger: h.logger}
}
