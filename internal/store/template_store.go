package store

import (
	"context"
	"fmt"
)

type PostgresTemplateStore struct {
	db DB
}

func NewPostgresTemplateStore(db DB) TemplateStore {
	return &PostgresTemplateStore{db: db}
}

const templateColumns = `id, user_id, title, description, content, category, is_public, created_at, updated_at`

func (s *PostgresTemplateStore) ListByUser(ctx context.Context, userID string) ([]*Template, error) {
	query := `
		SELECT ` + templateColumns + `
		FROM templates
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	return s.list(ctx, query, userID)
}

func (s *PostgresTemplateStore) ListPublic(ctx context.Context) ([]*Template, error) {
	query := `
		SELECT ` + templateColumns + `
		FROM templates
		WHERE is_public = true
		ORDER BY created_at DESC
	`
	return s.list(ctx, query)
}

func (s *PostgresTemplateStore) list(ctx context.Context, query string, args ...any) ([]*Template, error) {
	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query templates: %w", err)
	}
	defer rows.Close()

	var templates []*Template
	for rows.Next() {
		var t Template
		err := rows.Scan(
			&t.ID, &t.UserID, &t.Title, &t.Description, &t.Content,
			&t.Category, &t.IsPublic, &t.CreatedAt, &t.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan template: %w", err)
		}
		templates = append(templates, &t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating templates: %w", err)
	}

	return templates, nil
}

func (s *PostgresTemplateStore) GetByID(ctx context.Context, id string) (*Template, error) {
	query := `
		SELECT ` + templateColumns + `
		FROM templates
		WHERE id = $1
	`

	var t Template
	err := s.db.QueryRow(ctx, query, id).Scan(
		&t.ID, &t.UserID, &t.Title, &t.Description, &t.Content,
		&t.Category, &t.IsPublic, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get template: %w", mapError(err))
	}

	return &t, nil
}

func (s *PostgresTemplateStore) Create(ctx context.Context, t *Template) error {
	query := `
		INSERT INTO templates (user_id, title, description, content, category, is_public)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRow(ctx, query,
		t.UserID, t.Title, t.Description, t.Content, t.Category, t.IsPublic,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create template: %w", mapError(err))
	}

	return nil
}

func (s *PostgresTemplateStore) Update(ctx context.Context, t *Template) error {
	query := `
		UPDATE templates
		SET title = $2, description = $3, content = $4, category = $5, is_public = $6, updated_at = now()
		WHERE id = $1
		RETURNING updated_at
	`

	err := s.db.QueryRow(ctx, query,
		t.ID, t.Title, t.Description, t.Content, t.Category, t.IsPublic,
	).Scan(&t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update template: %w", mapError(err))
	}

	return nil
}

func (s *PostgresTemplateStore) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM templates WHERE id = $1`
	tag, err := s.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete template: %w", mapError(err))
	}

	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}
