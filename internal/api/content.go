package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/textcraft-ai/textcraft-api/internal/store"
)

func (h *Handler) HandleListTexts(w http.ResponseWriter, r *http.Request) {
	profile, ok := h.currentProfile(w, r)
	if !ok {
		return
	}

	texts, err := h.texts.ListByUser(r.Context(), profile.ID)
	if err != nil {
		h.logger.Error("failed to list generated texts", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to list generated texts")
		return
	}
	if texts == nil {
		texts = []*store.GeneratedText{}
	}

	respondJSON(w, http.StatusOK, map[string]any{"texts": texts})
}

func (h *Handler) HandleGetText(w http.ResponseWriter, r *http.Request) {
	profile, ok := h.currentProfile(w, r)
	if !ok {
		return
	}

	text, err := h.texts.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil || text.UserID != profile.ID {
		respondError(w, http.StatusNotFound, "generated text not found")
		return
	}

	respondJSON(w, http.StatusOK, text)
}

func (h *Handler) HandleDeleteText(w http.ResponseWriter, r *http.Request) {
	profile, ok := h.currentProfile(w, r)
	if !ok {
		return
	}

	id := chi.URLParam(r, "id")
	text, err := h.texts.GetByID(r.Context(), id)
	if err != nil || text.UserID != profile.ID {
		respondError(w, http.StatusNotFound, "generated text not found")
		return
	}

	if err := h.texts.Delete(r.Context(), id); err != nil {
		h.logger.Error("failed to delete generated text", "id", id, "error", err)
		respondError(w, http.StatusInternalServerError, "failed to delete generated text")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"success": true})
}

type templateRequest struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Content     string `json:"content"`
	Category    string `json:"category,omitempty"`
	IsPublic    bool   `json:"isPublic"`
}

func (h *Handler) HandleListTemplates(w http.ResponseWriter, r *http.Request) {
	profile, ok := h.currentProfile(w, r)
	if !ok {
		return
	}

	var (
		templates []*store.Template
		err       error
	)
	if r.URL.Query().Get("public") == "true" {
		templates, err = h.templates.ListPublic(r.Context())
	} else {
		templates, err = h.templates.ListByUser(r.Context(), profile.ID)
	}
	if err != nil {
		h.logger.Error("failed to list templates", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to list templates")
		return
	}
	if templates == nil {
		templates = []*store.Template{}
	}

	respondJSON(w, http.StatusOK, map[string]any{"templates": templates})
}

func (h *Handler) HandleCreateTemplate(w http.ResponseWriter, r *http.Request) {
	profile, ok := h.currentProfile(w, r)
	if !ok {
		return
	}

	var body templateRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if body.Title == "" || body.Content == "" {
		respondError(w, http.StatusBadRequest, "title and content are required")
		return
	}

	t := &store.Template{
		UserID:      profile.ID,
		Title:       body.Title,
		Description: body.Description,
		Content:     body.Content,
		Category:    body.Category,
		IsPublic:    body.IsPublic,
	}
	if err := h.templates.Create(r.Context(), t); err != nil {
		h.logger.Error("failed to create template", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to create template")
		return
	}

	respondJSON(w, http.StatusCreated, t)
}

func (h *Handler) HandleGetTemplate(w http.ResponseWriter, r *http.Request) {
	profile, ok := h.currentProfile(w, r)
	if !ok {
		return
	}

	t, err := h.templates.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusNotFound, "template not found")
		return
	}
	// Public templates are readable by anyone; private ones only by the owner.
	if !t.IsPublic && t.UserID != profile.ID {
		respondError(w, http.StatusNotFound, "template not found")
		return
	}

	respondJSON(w, http.StatusOK, t)
}

func (h *Handler) HandleUpdateTemplate(w http.ResponseWriter, r *http.Request) {
	profile, ok := h.currentProfile(w, r)
	if !ok {
		return
	}

	id := chi.URLParam(r, "id")
	existing, err := h.templates.GetByID(r.Context(), id)
	if err != nil || existing.UserID != profile.ID {
		respondError(w, http.StatusNotFound, "template not found")
		return
	}

	var body templateRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if body.Title == "" || body.Content == "" {
		respondError(w, http.StatusBadRequest, "title and content are required")
		return
	}

	existing.Title = body.Title
	existing.Description = body.Description
	existing.Content = body.Content
	existing.Category = body.Category
	existing.IsPublic = body.IsPublic

	if err := h.templates.Update(r.Context(), existing); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondError(w, http.StatusNotFound, "template not found")
			return
		}
		h.logger.Error("failed to update template", "id", id, "error", err)
		respondError(w, http.StatusInternalServerError, "failed to update template")
		return
	}

	respondJSON(w, http.StatusOK, existing)
}

func (h *Handler) HandleDeleteTemplate(w http.ResponseWriter, r *http.Request) {
	profile, ok := h.currentProfile(w, r)
	if !ok {
		return
	}

	id := chi.URLParam(r, "id")
	existing, err := h.templates.GetByID(r.Context(), id)
	if err != nil || existing.UserID != profile.ID {
		respondError(w, http.StatusNotFound, "template not found")
		return
	}

	if err := h.templates.Delete(r.Context(), id); err != nil {
		h.logger.Error("failed to delete template", "id", id, "error", err)
		respondError(w, http.StatusInternalServerError, "failed to delete template")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"success": true})
}
