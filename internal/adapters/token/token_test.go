package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vncsmyrnk/awards/internal/core/domain"
)

func TestIssueAndVerify(t *testing.T) {
	m := NewManager("secret", time.Hour)
	id := uuid.New()

	signed, expiresAt, err := m.Issue(id)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	got, err := m.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, id, got)
}

func TestVerifyRejects(t *testing.T) {
	m := NewManager("secret", time.Hour)
	signed, _, err := m.Issue(uuid.New())
	require.NoError(t, err)

	t.Run("wrong secret", func(t *testing.T) {
		_, err := NewManager("other", time.Hour).Verify(signed)
		assert.ErrorIs(t, err, domain.ErrInvalidSessionToken)
	})

	t.Run("expired", func(t *testing.T) {
		expired := NewManager("secret", time.Hour)
		expired.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
		_, err := expired.Verify(signed)
		assert.ErrorIs(t, err, domain.ErrInvalidSessionToken)
		assert.EqualError(t, err, domain.ErrInvalidSessionToken.Error())
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := m.Verify("not.a.token")
		assert.ErrorIs(t, err, domain.ErrInvalidSessionToken)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		claims := jwt.RegisteredClaims{
			Subject:   uuid.NewString(),
			Issuer:    "someone-else",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}
		foreign, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
		require.NoError(t, err)
		_, err = m.Verify(foreign)
		assert.ErrorIs(t, err, domain.ErrInvalidSessionToken)
	})

	t.Run("subject not a uuid", func(t *testing.T) {
		claims := jwt.RegisteredClaims{
			Subject:   "voter-1",
			Issuer:    issuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}
		odd, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
		require.NoError(t, err)
		_, err = m.Verify(odd)
		assert.ErrorIs(t, err, domain.ErrInvalidSessionToken)
	})
}
