// Package store persists user profiles, preferences, templates, and generated
// texts in PostgreSQL.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("record already exists")
)

// DB is the subset of pgxpool.Pool the stores need.
type DB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// UserProfile is owned by an external identity (Subject). Subscription fields
// default to the free tier on first sight of a subject.
type UserProfile struct {
	ID                 string    `json:"id"`
	Subject            string    `json:"subject"`
	Email              string    `json:"email"`
	FirstName          string    `json:"firstName,omitempty"`
	LastName           string    `json:"lastName,omitempty"`
	SubscriptionStatus string    `json:"subscriptionStatus"`
	SubscriptionTier   string    `json:"subscriptionTier"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

type UserPreferences struct {
	ID                   string    `json:"id"`
	UserID               string    `json:"userId"`
	Theme                string    `json:"theme"` // "light", "dark", or "system"
	NotificationsEnabled bool      `json:"notificationsEnabled"`
	CreatedAt            time.Time `json:"createdAt"`
	UpdatedAt            time.Time `json:"updatedAt"`
}

type Template struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Content     string    `json:"content"`
	Category    string    `json:"category,omitempty"`
	IsPublic    bool      `json:"isPublic"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// GeneratedText records one successful generation. Settings captures the
// requested options plus the metadata of the provider that actually served the
// request, not the one the caller asked for.
type GeneratedText struct {
	ID         string         `json:"id"`
	UserID     string         `json:"userId"`
	TemplateID *string        `json:"templateId,omitempty"`
	Title      string         `json:"title"`
	Content    string         `json:"content"`
	Prompt     string         `json:"prompt"`
	Settings   map[string]any `json:"generationSettings,omitempty"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
}

type ProfileStore interface {
	// Ensure returns the profile for subject, creating it (with free-tier
	// defaults) if absent. A concurrent create is resolved by re-fetching.
	Ensure(ctx context.Context, subject, email string) (*UserProfile, error)
	GetBySubject(ctx context.Context, subject string) (*UserProfile, error)
	Update(ctx context.Context, subject string, p *UserProfile) (*UserProfile, error)
	Delete(ctx context.Context, subject string) error
}

type PreferenceStore interface {
	GetByUser(ctx context.Context, userID string) (*UserPreferences, error)
	Upsert(ctx context.Context, p *UserPreferences) (*UserPreferences, error)
}

type TemplateStore interface {
	ListByUser(ctx context.Context, userID string) ([]*Template, error)
	ListPublic(ctx context.Context) ([]*Template, error)
	GetByID(ctx context.Context, id string) (*Template, error)
	Create(ctx context.Context, t *Template) error
	Update(ctx context.Context, t *Template) error
	Delete(ctx context.Context, id string) error
}

type GeneratedTextStore interface {
	ListByUser(ctx context.Context, userID string) ([]*GeneratedText, error)
	GetByID(ctx context.Context, id string) (*GeneratedText, error)
	Create(ctx context.Context, t *GeneratedText) error
	Delete(ctx context.Context, id string) error
}
