package client

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/exp/slog"

	"accountkeeper/internal/app/client/config"
	"accountkeeper/internal/crypto"
	"accountkeeper/internal/domain/account"
	"accountkeeper/internal/infrastructure/storage"
	"accountkeeper/internal/infrastructure/storage/encrypted"
	"accountkeeper/internal/infrastructure/storage/memory"
	"accountkeeper/internal/infrastructure/storage/sqlite"
)

// App - клиентское приложение: список учетных записей поверх локального хранилища.
type App struct {
	config  *config.Config
	log     *slog.Logger
	store   storage.BlobStore
	service *account.Service
}

func New(ctx context.Context, cfg *config.Config, log *slog.Logger) (*App, error) {
	store, err := openStore(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	if cfg.Encrypted() {
		sealer, err := crypto.NewSealer(cfg.MasterPassword)
		if err != nil {
			_ = store.Close()
			return nil, fmt.Errorf("ошибка инициализации шифрования: %w", err)
		}
		var opts []encrypted.Option
		if cfg.MigratePlaintext {
			opts = append(opts, encrypted.WithPlaintextMigration())
		}
		store = encrypted.New(store, sealer, log, opts...)
	}

	repo := storage.NewAccountRepository(store, log)
	service := account.NewService(repo, account.NewFieldValidator(), log)

	if err := service.Load(ctx); err != nil {
		_ = store.Close()
		if errors.Is(err, crypto.ErrWrongPassword) {
			return nil, errors.New("неверный мастер-пароль")
		}
		if errors.Is(err, encrypted.ErrNotSealed) {
			return nil, errors.New("файл данных не зашифрован; чтобы зашифровать его мастер-паролем, запустите команду с MIGRATE_PLAINTEXT=true")
		}
		return nil, fmt.Errorf("ошибка загрузки учетных записей: %w", err)
	}

	return &App{
		config:  cfg,
		log:     log,
		store:   store,
		service: service,
	}, nil
}

// openStore открывает файл SQLite. Память используется только при IN_MEMORY.
func openStore(ctx context.Context, cfg *config.Config, log *slog.Logger) (storage.BlobStore, error) {
	if cfg.InMemory {
		return memory.New(), nil
	}

	if err := cfg.EnsureDirs(); err != nil {
		return nil, fmt.Errorf("ошибка создания каталога данных: %w", err)
	}

	store, err := sqlite.New(ctx, cfg.DataPath, log)
	if err != nil {
		return nil, fmt.Errorf("ошибка открытия хранилища %s: %w", cfg.DataPath, err)
	}
	return store, nil
}

// Close закрывает хранилище.
func (a *App) Close() error {
	return a.store.Close()
}

func (a *App) ListAccounts(ctx context.Context, filter account.Filter) ([]account.Account, error) {
	return a.service.List(ctx, filter)
}

func (a *App) GetAccount(ctx context.Context, id int) (account.Account, error) {
	return a.service.Get(ctx, id)
}

func (a *App) AddAccount(ctx context.Context, in AccountInput) (account.Account, error) {
	data, err := in.apply(account.Data{})
	if err != nil {
		return account.Account{}, err
	}
	return a.service.Add(ctx, data)
}

// UpdateAccount меняет только заданные поля in, остальные берутся из записи id.
func (a *App) UpdateAccount(ctx context.Context, id int, in AccountInput) (account.Account, error) {
	current, err := a.service.Get(ctx, id)
	if err != nil {
		return account.Account{}, err
	}

	data, err := in.apply(current.Data)
	if err != nil {
		return account.Account{}, err
	}
	return a.service.Update(ctx, id, data)
}

func (a *App) RemoveAccount(ctx context.Context, id int) error {
	return a.service.Remove(ctx, id)
}

// ValidateAccount проверяет данные так же, как при сохранении. id == account.NoID
// означает новую запись.
func (a *App) ValidateAccount(ctx context.Context, id int, in AccountInput) error {
	base := account.Data{}
	if id != account.NoID {
		current, err := a.service.Get(ctx, id)
		if err != nil {
			return err
		}
		base = current.Data
	}

	data, err := in.apply(base)
	if err != nil {
		return err
	}
	return a.service.Validate(ctx, data, id)
}
