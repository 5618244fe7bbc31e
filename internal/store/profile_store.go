package store

import (
	"context"
	"errors"
	"fmt"
)

type PostgresProfileStore struct {
	db DB
}

func NewPostgresProfileStore(db DB) ProfileStore {
	return &PostgresProfileStore{db: db}
}

const profileColumns = `id, subject, email, first_name, last_name, subscription_status, subscription_tier, created_at, updated_at`

func (s *PostgresProfileStore) GetBySubject(ctx context.Context, subject string) (*UserProfile, error) {
	query := `
		SELECT ` + profileColumns + `
		FROM user_profiles
		WHERE subject = $1
	`

	var p UserProfile
	err := s.db.QueryRow(ctx, query, subject).Scan(
		&p.ID, &p.Subject, &p.Email, &p.FirstName, &p.LastName,
		&p.SubscriptionStatus, &p.SubscriptionTier, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get user profile: %w", mapError(err))
	}

	return &p, nil
}

func (s *PostgresProfileStore) Ensure(ctx context.Context, subject, email string) (*UserProfile, error) {
	p, err := s.GetBySubject(ctx, subject)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	query := `
		INSERT INTO user_profiles (subject, email, subscription_status, subscription_tier)
		VALUES ($1, $2, 'free', 'free')
		RETURNING ` + profileColumns + `
	`

	var created UserProfile
	err = s.db.QueryRow(ctx, query, subject, email).Scan(
		&created.ID, &created.Subject, &created.Email, &created.FirstName, &created.LastName,
		&created.SubscriptionStatus, &created.SubscriptionTier, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		// Another request created the row first; the existing one wins.
		if IsUniqueViolation(err) {
			return s.GetBySubject(ctx, subject)
		}
		return nil, fmt.Errorf("failed to create user profile: %w", mapError(err))
	}

	return &created, nil
}

func (s *PostgresProfileStore) Update(ctx context.Context, subject string, p *UserProfile) (*UserProfile, error) {
	query := `
		UPDATE user_profiles
		SET email = $2, first_name = $3, last_name = $4, updated_at = now()
		WHERE subject = $1
		RETURNING ` + profileColumns + `
	`

	var updated UserProfile
	err := s.db.QueryRow(ctx, query, subject, p.Email, p.FirstName, p.LastName).Scan(
		&updated.ID, &updated.Subject, &updated.Email, &updated.FirstName, &updated.LastName,
		&updated.SubscriptionStatus, &updated.SubscriptionTier, &updated.CreatedAt, &updated.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update user profile: %w", mapError(err))
	}

	return &updated, nil
}

func (s *PostgresProfileStore) Delete(ctx context.Context, subject string) error {
	query := `DELETE FROM user_profiles WHERE subject = $1`
	tag, err := s.db.Exec(ctx, query, subject)
	if err != nil {
		return fmt.Errorf("failed to delete user profile: %w", mapError(err))
	}

	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}
