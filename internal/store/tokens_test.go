package store

import (
	"context"
	"testing"
	"time"

	"github.com/matevzh/nuzlog/internal/db"
)

func TestTokenRevocation(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	revoked, err := IsTokenRevoked(ctx, database, "some-jti")
	if err != nil {
		t.Fatalf("IsTokenRevoked: %v", err)
	}
	if revoked {
		t.Error("expected an unknown jti to not be revoked")
	}

	if err := RevokeToken(ctx, database, "some-jti", time.Now().Add(time.Hour)); err != nil {
		t.Fatalf("RevokeToken: %v", err)
	}

	revoked, err = IsTokenRevoked(ctx, database, "some-jti")
	if err != nil {
		t.Fatalf("IsTokenRevoked: %v", err)
	}
	if !revoked {
		t.Error("expected the jti to be revoked")
	}

	// Revoking again is a no-op.
	if err := RevokeToken(ctx, database, "some-jti", time.Now().Add(time.Hour)); err != nil {
		t.Fatalf("RevokeToken: %v", err)
	}
}

func TestExpiredRevocationsCleanedUp(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	if err := RevokeToken(ctx, database, "expired-jti", time.Now().Add(-time.Hour)); err != nil {
		t.Fatalf("RevokeToken: %v", err)
	}

	// The next revocation sweeps expired rows.
	if err := RevokeToken(ctx, database, "fresh-jti", time.Now().Add(time.Hour)); err != nil {
		t.Fatalf("RevokeToken: %v", err)
	}

	revoked, err := IsTokenRevoked(ctx, database, "expired-jti")
	if err != nil {
		t.Fatalf("IsTokenRevoked: %v", err)
	}
	if revoked {
		t.Error("expected the expired jti to have been swept")
	}
}
