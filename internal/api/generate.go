package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/textcraft-ai/textcraft-api/internal/generate"
	"github.com/textcraft-ai/textcraft-api/internal/provider"
	"github.com/textcraft-ai/textcraft-api/internal/store"
)

type generateRequest struct {
	Prompt      string          `json:"prompt"`
	Template    string          `json:"template,omitempty"`
	ContentType string          `json:"contentType,omitempty"`
	Tone        string          `json:"tone,omitempty"`
	Length      string          `json:"length,omitempty"`
	Options     generateOptions `json:"options"`
}

type generateOptions struct {
	Provider         string   `json:"provider,omitempty"`
	Model            string   `json:"model,omitempty"`
	SystemPrompt     string   `json:"systemPrompt,omitempty"`
	Temperature      *float64 `json:"temperature,omitempty"`
	MaxTokens        *int     `json:"maxTokens,omitempty"`
	TopP             *float64 `json:"topP,omitempty"`
	FrequencyPenalty *float64 `json:"frequencyPenalty,omitempty"`
	PresencePenalty  *float64 `json:"presencePenalty,omitempty"`
	Title            string   `json:"title,omitempty"`
}

type generateResponse struct {
	GeneratedText string            `json:"generatedText"`
	Metadata      provider.Metadata `json:"metadata"`
	SavedTextID   string            `json:"savedTextId,omitempty"`
}

func (h *Handler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	profile, ok := h.currentProfile(w, r)
	if !ok {
		return
	}

	var body generateRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if body.Prompt == "" {
		respondError(w, http.StatusBadRequest, "prompt is required")
		return
	}

	h.ensureDefaultPreferences(r, profile)

	outcome, err := h.generator.Generate(r.Context(), profile.ID, &generate.Request{
		Prompt:           body.Prompt,
		Template:         body.Template,
		ContentType:      body.ContentType,
		Tone:             body.Tone,
		Length:           body.Length,
		Provider:         body.Options.Provider,
		Model:            body.Options.Model,
		SystemPrompt:     body.Options.SystemPrompt,
		Temperature:      body.Options.Temperature,
		MaxTokens:        body.Options.MaxTokens,
		TopP:             body.Options.TopP,
		FrequencyPenalty: body.Options.FrequencyPenalty,
		PresencePenalty:  body.Options.PresencePenalty,
		Title:            body.Options.Title,
	})
	if err != nil {
		var confErr *generate.ConfigurationError
		if errors.As(err, &confErr) {
			respondError(w, http.StatusInternalServerError, confErr.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, "generation failed")
		return
	}

	respondJSON(w, http.StatusOK, generateResponse{
		GeneratedText: outcome.Result.GeneratedText,
		Metadata:      outcome.Result.Metadata,
		SavedTextID:   outcome.SavedTextID,
	})
}

// ensureDefaultPreferences creates the default preference row for a fresh
// profile. Best effort; generation proceeds regardless.
func (h *Handler) ensureDefaultPreferences(r *http.Request, profile *store.UserProfile) {
	_, err := h.preferences.GetByUser(r.Context(), profile.ID)
	if err == nil {
		return
	}
	if !errors.Is(err, store.ErrNotFound) {
		h.logger.Warn("failed to read user preferences", "user_id", profile.ID, "error", err)
		return
	}

	_, err = h.preferences.Upsert(r.Context(), &store.UserPreferences{
		UserID:               profile.ID,
		Theme:                "system",
		NotificationsEnabled: true,
	})
	if err != nil {
		h.logger.Warn("failed to create default preferences", "user_id", profile.ID, "error", err)
	}
}
