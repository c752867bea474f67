package storage

import (
	"context"
	"errors"
)

// AccountsKey is the key the account list snapshot is stored under.
const AccountsKey = "accounts"

var ErrNotFound = errors.New("blob not found")

// BlobStore - хранилище ключ-значение с непрозрачными значениями.
type BlobStore interface {
	// Get возвращает ErrNotFound, если ключ отсутствует.
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Close() error
}
