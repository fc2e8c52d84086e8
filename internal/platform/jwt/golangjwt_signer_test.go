package jwt_test

import (
	"testing"
	"time"

	"github.com/ferdiebergado/userkit/internal/config"
	"github.com/ferdiebergado/userkit/internal/platform/jwt"
)

const signingKey = "test-signing-key"

func newSigner(key string) jwt.Signer {
	cfg := &config.JWT{JTILength: 16, Issuer: "userkit"}
	return jwt.NewGolangJWTSigner(cfg, key)
}

func TestGolangJWTSigner_SignAndVerify(t *testing.T) {
	t.Parallel()

	signer := newSigner(signingKey)

	token, err := signer.Sign("7", []string{"userkit"}, time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	if token == "" {
		t.Fatal("Sign() returned an empty token")
	}

	claims, err := signer.Verify(token)
	if err != nil {
		t.Fatal(err)
	}
	if claims.UserID != "7" {
		t.Errorf("claims.UserID = %q, want: %q", claims.UserID, "7")
	}
}

func TestGolangJWTSigner_UniqueTokens(t *testing.T) {
	t.Parallel()

	signer := newSigner(signingKey)

	first, err := signer.Sign("7", []string{"userkit"}, time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	second, err := signer.Sign("7", []string{"userkit"}, time.Hour)
	if err != nil {
		t.Fatal(err)
	}

	if first == second {
		t.Error("two Sign() calls produced the same token, want unique jti per token")
	}
}

func TestGolangJWTSigner_Verify_WrongKey(t *testing.T) {
	t.Parallel()

	token, err := newSigner(signingKey).Sign("7", []string{"userkit"}, time.Hour)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := newSigner("another-key").Verify(token); err == nil {
		t.Error("Verify() = nil error for a token signed with a different key")
	}
}

func TestGolangJWTSigner_Verify_Expired(t *testing.T) {
	t.Parallel()

	signer := newSigner(signingKey)

	token, err := signer.Sign("7", []string{"userkit"}, -time.Minute)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := signer.Verify(token); err == nil {
		t.Error("Verify() = nil error for an expired token")
	}
}

func TestGolangJWTSigner_Verify_Garbage(t *testing.T) {
	t.Parallel()

	if _, err := newSigner(signingKey).Verify("not.a.jwt"); err == nil {
		t.Error("Verify() = nil error for a malformed token")
	}
}
