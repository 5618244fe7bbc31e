// Package api exposes the HTTP surface: content generation, email delivery,
// and CRUD over profiles, preferences, templates, and generated texts.
package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/textcraft-ai/textcraft-api/internal/auth"
	"github.com/textcraft-ai/textcraft-api/internal/generate"
	"github.com/textcraft-ai/textcraft-api/internal/mailer"
	"github.com/textcraft-ai/textcraft-api/internal/store"
)

// Generator is the orchestrator as the handlers see it.
type Generator interface {
	Generate(ctx context.Context, userID string, req *generate.Request) (*generate.Outcome, error)
}

type Handler struct {
	generator   Generator
	mailer      mailer.Mailer
	profiles    store.ProfileStore
	preferences store.PreferenceStore
	templates   store.TemplateStore
	texts       store.GeneratedTextStore
	logger      *slog.Logger
}

func NewHandler(
	generator Generator,
	m mailer.Mailer,
	profiles store.ProfileStore,
	preferences store.PreferenceStore,
	templates store.TemplateStore,
	texts store.GeneratedTextStore,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		generator:   generator,
		mailer:      m,
		profiles:    profiles,
		preferences: preferences,
		templates:   templates,
		texts:       texts,
		logger:      logger,
	}
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// currentProfile resolves the authenticated caller to a user profile, creating
// one with free-tier defaults on first sight. On failure it writes the error
// response and returns ok=false.
func (h *Handler) currentProfile(w http.ResponseWriter, r *http.Request) (*store.UserProfile, bool) {
	subject := auth.GetSubject(r.Context())
	if subject == "" {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return nil, false
	}

	profile, err := h.profiles.Ensure(r.Context(), subject, auth.GetEmail(r.Context()))
	if err != nil {
		h.logger.Error("failed to establish user profile", "subject", subject, "error", err)
		respondError(w, http.StatusInternalServerError, "could not establish user profile")
		return nil, false
	}
	return profile, true
}
