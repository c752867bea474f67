package encrypted

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/exp/slog"

	"accountkeeper/internal/crypto"
	"accountkeeper/internal/infrastructure/storage"
)

// Sealer is implemented by crypto.Sealer.
type Sealer interface {
	Seal(plaintext []byte) ([]byte, error)
	Open(data []byte) ([]byte, error)
}

// ErrNotSealed - значение лежит в открытом виде, а миграция не разрешена.
var ErrNotSealed = errors.New("value is not encrypted")

// Storage шифрует значения перед записью во вложенное хранилище.
type Storage struct {
	inner          storage.BlobStore
	sealer         Sealer
	log            *slog.Logger
	allowPlaintext bool
}

type Option func(*Storage)

// WithPlaintextMigration разрешает читать незашифрованные значения,
// записанные до включения шифрования. Они шифруются при следующем Put.
func WithPlaintextMigration() Option {
	return func(s *Storage) {
		s.allowPlaintext = true
	}
}

func New(inner storage.BlobStore, sealer Sealer, log *slog.Logger, opts ...Option) *Storage {
	s := &Storage{
		inner:  inner,
		sealer: sealer,
		log:    log.With("component", "encrypted_storage"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Storage) Get(ctx context.Context, key string) ([]byte, error) {
	raw, err := s.inner.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	if !crypto.IsSealed(raw) {
		if !s.allowPlaintext {
			s.log.Error("refusing unencrypted value", "key", key)
			return nil, fmt.Errorf("open %s: %w", key, ErrNotSealed)
		}
		s.log.Warn("migrating unencrypted value", "key", key)
		return raw, nil
	}

	plaintext, err := s.sealer.Open(raw)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", key, err)
	}
	return plaintext, nil
}

func (s *Storage) Put(ctx context.Context, key string, value []byte) error {
	sealed, err := s.sealer.Seal(value)
	if err != nil {
		return fmt.Errorf("seal %s: %w", key, err)
	}
	return s.inner.Put(ctx, key, sealed)
}

func (s *Storage) Close() error {
	return s.inner.Close()
}
