package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "clave-de-prueba"

func TestTokenRoundTrip(t *testing.T) {
	raw, err := NewToken(testSecret, 7, "Ana", "ana1", "usuario", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, raw)

	claims, err := ParseToken(testSecret, raw)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), claims.ID)
	assert.Equal(t, "Ana", claims.Nombre)
	assert.Equal(t, "ana1", claims.Usuario)
	assert.Equal(t, "usuario", claims.Rol)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestParseTokenRejectsExpired(t *testing.T) {
	raw, err := NewToken(testSecret, 1, "Ana", "ana1", "usuario", -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(testSecret, raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	raw, err := NewToken(testSecret, 1, "Ana", "ana1", "usuario", time.Hour)
	require.NoError(t, err)

	_, err = ParseToken("otro-secreto", raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	for _, raw := range []string{"", "no-es-un-jwt", "a.b.c"} {
		_, err := ParseToken(testSecret, raw)
		assert.ErrorIs(t, err, ErrInvalidToken, "input %q", raw)
	}
}
