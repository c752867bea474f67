package account

import "context"

// Repository хранит список учетных записей целиком.
type Repository interface {
	Load(ctx context.Context) ([]Account, error)
	Save(ctx context.Context, accounts []Account) error
}
