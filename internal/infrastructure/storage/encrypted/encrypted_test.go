package encrypted

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"accountkeeper/internal/crypto"
	"accountkeeper/internal/infrastructure/storage"
	"accountkeeper/internal/infrastructure/storage/memory"
)

func newSealer(t *testing.T, password string) *crypto.Sealer {
	t.Helper()
	sealer, err := crypto.NewSealer(password)
	require.NoError(t, err)
	return sealer
}

func TestStorage_SealsValues(t *testing.T) {
	ctx := context.Background()
	inner := memory.New()
	s := New(inner, newSealer(t, "master"), slog.Default())

	require.NoError(t, s.Put(ctx, storage.AccountsKey, []byte(`{"accounts":[]}`)))

	raw, err := inner.Get(ctx, storage.AccountsKey)
	require.NoError(t, err)
	assert.True(t, crypto.IsSealed(raw))

	got, err := s.Get(ctx, storage.AccountsKey)
	require.NoError(t, err)
	assert.Equal(t, `{"accounts":[]}`, string(got))
}

func TestStorage_PlaintextRejected(t *testing.T) {
	ctx := context.Background()
	inner := memory.New()
	require.NoError(t, inner.Put(ctx, storage.AccountsKey, []byte(`{"accounts":[]}`)))

	s := New(inner, newSealer(t, "master"), slog.Default())

	_, err := s.Get(ctx, storage.AccountsKey)
	assert.ErrorIs(t, err, ErrNotSealed)
}

func TestStorage_PlaintextMigration(t *testing.T) {
	ctx := context.Background()
	inner := memory.New()
	require.NoError(t, inner.Put(ctx, storage.AccountsKey, []byte(`{"accounts":[]}`)))

	s := New(inner, newSealer(t, "master"), slog.Default(), WithPlaintextMigration())

	got, err := s.Get(ctx, storage.AccountsKey)
	require.NoError(t, err)
	assert.Equal(t, `{"accounts":[]}`, string(got))

	require.NoError(t, s.Put(ctx, storage.AccountsKey, got))
	raw, err := inner.Get(ctx, storage.AccountsKey)
	require.NoError(t, err)
	assert.True(t, crypto.IsSealed(raw))

	// после миграции строгий режим читает значение
	got, err = New(inner, newSealer(t, "master"), slog.Default()).Get(ctx, storage.AccountsKey)
	require.NoError(t, err)
	assert.Equal(t, `{"accounts":[]}`, string(got))
}

func TestStorage_WrongPassword(t *testing.T) {
	ctx := context.Background()
	inner := memory.New()

	require.NoError(t, New(inner, newSealer(t, "one"), slog.Default()).Put(ctx, "k", []byte("v")))

	_, err := New(inner, newSealer(t, "two"), slog.Default()).Get(ctx, "k")
	assert.ErrorIs(t, err, crypto.ErrWrongPassword)
}

func TestStorage_MissingKey(t *testing.T) {
	s := New(memory.New(), newSealer(t, "master"), slog.Default())

	_, err := s.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}
