package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aayushkhanal47/jobboard-be/internal/api/domain"
)

func TestHashPassword(t *testing.T) {
	t.Run("hash and verify round trip", func(t *testing.T) {
		hash, err := HashPassword("secret1", 4)
		require.NoError(t, err)
		require.NotEmpty(t, hash)
		assert.NotEqual(t, "secret1", hash)

		assert.True(t, CheckPassword(hash, "secret1"))
		assert.False(t, CheckPassword(hash, "secret2"))
	})

	t.Run("out of range cost falls back to default", func(t *testing.T) {
		hash, err := HashPassword("secret1", 99)
		require.NoError(t, err)
		assert.True(t, CheckPassword(hash, "secret1"))
	})

	t.Run("same password hashes differently", func(t *testing.T) {
		first, err := HashPassword("secret1", 4)
		require.NoError(t, err)
		second, err := HashPassword("secret1", 4)
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
	})
}

func TestTokenIssuer_IssueAndParse(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)

	token, err := issuer.Issue("user-123", domain.RoleAdmin)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := issuer.Parse(token)
	require.NoError(t, err)

	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, domain.RoleAdmin, claims.Role)
	assert.True(t, claims.ExpiresAt.After(time.Now()))
}

func TestTokenIssuer_Parse_Failures(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)

	t.Run("garbage token", func(t *testing.T) {
		_, err := issuer.Parse("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewTokenIssuer("other-secret", time.Hour)
		token, err := other.Issue("user-123", domain.RoleUser)
		require.NoError(t, err)

		_, err = issuer.Parse(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired token", func(t *testing.T) {
		expired := NewTokenIssuer("test-secret", -time.Minute)
		token, err := expired.Issue("user-123", domain.RoleUser)
		require.NoError(t, err)

		_, err = issuer.Parse(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("unknown role in claims", func(t *testing.T) {
		token, err := issuer.Issue("user-123", domain.Role("SUPERUSER"))
		require.NoError(t, err)

		_, err = issuer.Parse(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
