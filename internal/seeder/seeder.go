package seeder

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"

	"github.com/textcraft-ai/textcraft-api/internal/auth"
)

const (
	TestAPIKey  = "test-api-key-12345"
	TestSubject = "user_seed_0000000001"
	TestEmail   = "seed@textcraft.ai"
)

// SeedTestAPIKey creates a development API key so the protected routes can be
// exercised without an identity-provider round trip.
func SeedTestAPIKey(ctx context.Context, store auth.Store) {
	h := sha256.New()
	h.Write([]byte(TestAPIKey))
	keyHash := hex.EncodeToString(h.Sum(nil))

	apiKey := &auth.APIKey{
		Subject: TestSubject,
		Email:   TestEmail,
		KeyHash: keyHash,
		Active:  true,
	}

	err := store.Create(ctx, apiKey)
	if err != nil {
		slog.Info("seeder: API key may already exist, skipping", "error", err)
		return
	}
	slog.Info("seeder: test API key created", "key", TestAPIKey, "subject", TestSubject)
}
