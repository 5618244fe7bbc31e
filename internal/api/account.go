package api

import (
	"encoding/json"
	"net/http"

	"github.com/textcraft-ai/textcraft-api/internal/auth"
	"github.com/textcraft-ai/textcraft-api/internal/store"
)

func (h *Handler) HandleGetProfile(w http.ResponseWriter, r *http.Request) {
	profile, ok := h.currentProfile(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, profile)
}

type updateProfileRequest struct {
	Email     string `json:"email,omitempty"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
}

func (h *Handler) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	profile, ok := h.currentProfile(w, r)
	if !ok {
		return
	}

	var body updateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if body.Email != "" {
		profile.Email = body.Email
	}
	if body.FirstName != "" {
		profile.FirstName = body.FirstName
	}
	if body.LastName != "" {
		profile.LastName = body.LastName
	}

	updated, err := h.profiles.Update(r.Context(), profile.Subject, profile)
	if err != nil {
		h.logger.Error("failed to update profile", "subject", profile.Subject, "error", err)
		respondError(w, http.StatusInternalServerError, "failed to update profile")
		return
	}

	respondJSON(w, http.StatusOK, updated)
}

func (h *Handler) HandleDeleteProfile(w http.ResponseWriter, r *http.Request) {
	subject := auth.GetSubject(r.Context())
	if subject == "" {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	if err := h.profiles.Delete(r.Context(), subject); err != nil {
		h.logger.Error("failed to delete profile", "subject", subject, "error", err)
		respondError(w, http.StatusInternalServerError, "failed to delete profile")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"success": true})
}

func (h *Handler) HandleGetPreferences(w http.ResponseWriter, r *http.Request) {
	profile, ok := h.currentProfile(w, r)
	if !ok {
		return
	}

	prefs, err := h.preferences.GetByUser(r.Context(), profile.ID)
	if err != nil {
		// No stored row yet: report the defaults a fresh account gets.
		respondJSON(w, http.StatusOK, &store.UserPreferences{
			UserID:               profile.ID,
			Theme:                "system",
			NotificationsEnabled: true,
		})
		return
	}

	respondJSON(w, http.StatusOK, prefs)
}

type updatePreferencesRequest struct {
	Theme                string `json:"theme"`
	NotificationsEnabled bool   `json:"notificationsEnabled"`
}

func (h *Handler) HandleUpdatePreferences(w http.ResponseWriter, r *http.Request) {
	profile, ok := h.currentProfile(w, r)
	if !ok {
		return
	}

	var body updatePreferencesRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	switch body.Theme {
	case "light", "dark", "system":
	default:
		respondError(w, http.StatusBadRequest, "theme must be one of: light, dark, system")
		return
	}

	prefs, err := h.preferences.Upsert(r.Context(), &store.UserPreferences{
		UserID:               profile.ID,
		Theme:                body.Theme,
		NotificationsEnabled: body.NotificationsEnabled,
	})
	if err != nil {
		h.logger.Error("failed to update preferences", "user_id", profile.ID, "error", err)
		respondError(w, http.StatusInternalServerError, "failed to update preferences")
		return
	}

	respondJSON(w, http.StatusOK, prefs)
}
