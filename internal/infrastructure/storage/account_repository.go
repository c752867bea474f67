package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"golang.org/x/exp/slog"

	"accountkeeper/internal/domain/account"
)

// snapshot is the serialized form of the whole account list.
type snapshot struct {
	Accounts []account.Account `json:"accounts"`
}

// AccountRepository сохраняет список учетных записей одним значением в BlobStore.
type AccountRepository struct {
	store BlobStore
	key   string
	log   *slog.Logger
}

func NewAccountRepository(store BlobStore, log *slog.Logger) *AccountRepository {
	return &AccountRepository{
		store: store,
		key:   AccountsKey,
		log:   log.With("component", "account_repository"),
	}
}

func (r *AccountRepository) Load(ctx context.Context) ([]account.Account, error) {
	raw, err := r.store.Get(ctx, r.key)
	if errors.Is(err, ErrNotFound) {
		r.log.Debug("no persisted accounts, starting empty", "key", r.key)
		return []account.Account{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", r.key, err)
	}

	var snap snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, fmt.Errorf("decode %s: %w", r.key, err)
	}
	if snap.Accounts == nil {
		snap.Accounts = []account.Account{}
	}

	return snap.Accounts, nil
}

func (r *AccountRepository) Save(ctx context.Context, accounts []account.Account) error {
	if accounts == nil {
		accounts = []account.Account{}
	}

	raw, err := json.Marshal(snapshot{Accounts: accounts})
	if err != nil {
		return fmt.Errorf("encode %s: %w", r.key, err)
	}

	if err := r.store.Put(ctx, r.key, raw); err != nil {
		return fmt.Errorf("put %s: %w", r.key, err)
	}

	r.log.Debug("accounts saved", "count", len(accounts), "bytes", len(raw))
	return nil
}
