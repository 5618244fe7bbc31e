package store

import (
	"context"
	"fmt"
)

type PostgresPreferenceStore struct {
	db DB
}

func NewPostgresPreferenceStore(db DB) PreferenceStore {
	return &PostgresPreferenceStore{db: db}
}

func (s *PostgresPreferenceStore) GetByUser(ctx context.Context, userID string) (*UserPreferences, error) {
	query := `
		SELECT id, user_id, theme, notifications_enabled, created_at, updated_at
		FROM user_preferences
		WHERE user_id = $1
	`

	var p UserPreferences
	err := s.db.QueryRow(ctx, query, userID).Scan(
		&p.ID, &p.UserID, &p.Theme, &p.NotificationsEnabled, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get user preferences: %w", mapError(err))
	}

	return &p, nil
}

func (s *PostgresPreferenceStore) Upsert(ctx context.Context, p *UserPreferences) (*UserPreferences, error) {
	query := `
		INSERT INTO user_preferences (user_id, theme, notifications_enabled)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO UPDATE
		SET theme = EXCLUDED.theme, notifications_enabled = EXCLUDED.notifications_enabled, updated_at = now()
		RETURNING id, user_id, theme, notifications_enabled, created_at, updated_at
	`

	var saved UserPreferences
	err := s.db.QueryRow(ctx, query, p.UserID, p.Theme, p.NotificationsEnabled).Scan(
		&saved.ID, &saved.UserID, &saved.Theme, &saved.NotificationsEnabled, &saved.CreatedAt, &saved.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert user preferences: %w", mapError(err))
	}

	return &saved, nil
}
