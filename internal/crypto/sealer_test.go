package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSealer_RoundTrip(t *testing.T) {
	sealer, err := NewSealer("correct horse")
	require.NoError(t, err)

	plaintext := []byte(`{"accounts":[]}`)

	sealed, err := sealer.Seal(plaintext)
	require.NoError(t, err)
	assert.True(t, IsSealed(sealed))
	assert.NotContains(t, string(sealed), "accounts")

	opened, err := sealer.Open(sealed)
	require.NoError(t, err)
	assert.Equal(t, plaintext, opened)

	// новая соль и nonce на каждую операцию
	again, err := sealer.Seal(plaintext)
	require.NoError(t, err)
	assert.NotEqual(t, sealed, again)
}

func TestSealer_WrongPassword(t *testing.T) {
	sealer, err := NewSealer("one")
	require.NoError(t, err)
	other, err := NewSealer("two")
	require.NoError(t, err)

	sealed, err := sealer.Seal([]byte("secret"))
	require.NoError(t, err)

	_, err = other.Open(sealed)
	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestSealer_Malformed(t *testing.T) {
	sealer, err := NewSealer("pw")
	require.NoError(t, err)

	_, err = sealer.Open([]byte(`{"accounts":[]}`))
	assert.ErrorIs(t, err, ErrMalformed)

	_, err = sealer.Open(magic)
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestNewSealer_EmptyPassword(t *testing.T) {
	_, err := NewSealer("")
	assert.ErrorIs(t, err, ErrEmptyPassword)
}
