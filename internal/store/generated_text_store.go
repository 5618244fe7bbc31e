package store

import (
	"context"
	"fmt"
)

type PostgresGeneratedTextStore struct {
	db DB
}

func NewPostgresGeneratedTextStore(db DB) GeneratedTextStore {
	return &PostgresGeneratedTextStore{db: db}
}

const generatedTextColumns = `id, user_id, template_id, title, content, prompt, generation_settings, created_at, updated_at`

func (s *PostgresGeneratedTextStore) ListByUser(ctx context.Context, userID string) ([]*GeneratedText, error) {
	query := `
		SELECT ` + generatedTextColumns + `
		FROM generated_texts
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := s.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query generated texts: %w", err)
	}
	defer rows.Close()

	var texts []*GeneratedText
	for rows.Next() {
		var t GeneratedText
		err := rows.Scan(
			&t.ID, &t.UserID, &t.TemplateID, &t.Title, &t.Content,
			&t.Prompt, &t.Settings, &t.CreatedAt, &t.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan generated text: %w", err)
		}
		texts = append(texts, &t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating generated texts: %w", err)
	}

	return texts, nil
}

func (s *PostgresGeneratedTextStore) GetByID(ctx context.Context, id string) (*GeneratedText, error) {
	query := `
		SELECT ` + generatedTextColumns + `
		FROM generated_texts
		WHERE id = $1
	`

	var t GeneratedText
	err := s.db.QueryRow(ctx, query, id).Scan(
		&t.ID, &t.UserID, &t.TemplateID, &t.Title, &t.Content,
		&t.Prompt, &t.Settings, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get generated text: %w", mapError(err))
	}

	return &t, nil
}

func (s *PostgresGeneratedTextStore) Create(ctx context.Context, t *GeneratedText) error {
	query := `
		INSERT INTO generated_texts (user_id, template_id, title, content, prompt, generation_settings)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRow(ctx, query,
		t.UserID, t.TemplateID, t.Title, t.Content, t.Prompt, t.Settings,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create generated text: %w", mapError(err))
	}

	return nil
}

func (s *PostgresGeneratedTextStore) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM generated_texts WHERE id = $1`
	tag, err := s.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete generated text: %w", mapError(err))
	}

	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}
