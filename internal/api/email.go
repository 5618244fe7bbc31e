package api

import (
	"encoding/json"
	"net/http"
	"regexp"

	"github.com/textcraft-ai/textcraft-api/internal/auth"
	"github.com/textcraft-ai/textcraft-api/internal/mailer"
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type sendEmailRequest struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Content string `json:"content"`
	Title   string `json:"title,omitempty"`
}

func (h *Handler) HandleSendEmail(w http.ResponseWriter, r *http.Request) {
	if auth.GetSubject(r.Context()) == "" {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var body sendEmailRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if body.To == "" || body.Subject == "" || body.Content == "" {
		respondError(w, http.StatusBadRequest, "missing required fields: to, subject, or content")
		return
	}

	if !emailRegex.MatchString(body.To) {
		respondError(w, http.StatusBadRequest, "invalid email address format")
		return
	}

	title := body.Title
	if title == "" {
		title = "Generated Content"
	}
	html := mailer.ContentTemplate(body.Content, title)

	if err := h.mailer.Send(r.Context(), body.To, body.Subject, html); err != nil {
		h.logger.Error("failed to send email", "error", err)
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Email sent successfully",
	})
}

// HandleVerifyEmail reports whether the email provider credential is
// configured. Read-only, no delivery attempted.
func (h *Handler) HandleVerifyEmail(w http.ResponseWriter, r *http.Request) {
	if h.mailer.Configured() {
		respondJSON(w, http.StatusOK, map[string]any{
			"status":     "success",
			"configured": true,
			"message":    "email provider API key is properly configured",
		})
		return
	}

	respondJSON(w, http.StatusInternalServerError, map[string]any{
		"status":     "error",
		"configured": false,
		"message":    "email provider API key is not configured",
	})
}
