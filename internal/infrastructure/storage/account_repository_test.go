package storage_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"accountkeeper/internal/domain/account"
	"accountkeeper/internal/infrastructure/storage"
	"accountkeeper/internal/infrastructure/storage/memory"
)

type MockBlobStore struct {
	mock.Mock
}

func (m *MockBlobStore) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockBlobStore) Put(ctx context.Context, key string, value []byte) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

func (m *MockBlobStore) Close() error {
	return m.Called().Error(0)
}

func TestAccountRepository_LoadEmpty(t *testing.T) {
	repo := storage.NewAccountRepository(memory.New(), slog.Default())

	accounts, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, accounts)
	assert.Empty(t, accounts)
}

func TestAccountRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	blobs := memory.New()
	repo := storage.NewAccountRepository(blobs, slog.Default())

	accounts := []account.Account{
		{ID: 1, Data: account.Data{Login: "admin", Password: account.StringPtr("secret"), RecordType: account.RecordTypeLocal, Tags: []account.Tag{{Text: "web"}}}},
		{ID: 2, Data: account.Data{Login: "ldap-user", RecordType: account.RecordTypeLDAP, Tags: []account.Tag{}}},
	}
	require.NoError(t, repo.Save(ctx, accounts))

	raw, err := blobs.Get(ctx, storage.AccountsKey)
	require.NoError(t, err)
	assert.JSONEq(t, `{"accounts":[
		{"id":1,"data":{"login":"admin","password":"secret","recordType":"Локальная","tags":[{"text":"web"}]}},
		{"id":2,"data":{"login":"ldap-user","password":null,"recordType":"LDAP","tags":[]}}
	]}`, string(raw))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, accounts, loaded)
}

func TestAccountRepository_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("get error", func(t *testing.T) {
		blobs := new(MockBlobStore)
		blobs.On("Get", mock.Anything, storage.AccountsKey).Return(nil, errors.New("io"))

		_, err := storage.NewAccountRepository(blobs, slog.Default()).Load(ctx)
		assert.ErrorContains(t, err, "io")
	})

	t.Run("corrupted blob", func(t *testing.T) {
		blobs := new(MockBlobStore)
		blobs.On("Get", mock.Anything, storage.AccountsKey).Return([]byte("{"), nil)

		_, err := storage.NewAccountRepository(blobs, slog.Default()).Load(ctx)
		assert.ErrorContains(t, err, "decode accounts")
	})

	t.Run("put error", func(t *testing.T) {
		blobs := new(MockBlobStore)
		blobs.On("Put", mock.Anything, storage.AccountsKey, mock.Anything).Return(errors.New("read-only"))

		err := storage.NewAccountRepository(blobs, slog.Default()).Save(ctx, nil)
		assert.ErrorContains(t, err, "read-only")
		blobs.AssertExpectations(t)
	})
}
