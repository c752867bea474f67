package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/exp/slog"

	"accountkeeper/internal/app/server/api"
	"accountkeeper/internal/app/server/config"
	"accountkeeper/internal/crypto"
	"accountkeeper/internal/domain/account"
	"accountkeeper/internal/infrastructure/storage"
	"accountkeeper/internal/infrastructure/storage/encrypted"
	"accountkeeper/internal/infrastructure/storage/postgres"
	"accountkeeper/internal/infrastructure/storage/sqlite"
	"accountkeeper/internal/utils/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	conf := config.MustLoad()
	log := logger.NewWriter(os.Stdout, conf.Env, conf.Logger.LogLevel)

	if err := run(conf, log); err != nil {
		log.Error("server stopped with error", logger.Err(err))
		os.Exit(1)
	}
}

func run(conf *config.Config, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := openStore(ctx, conf, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Error("failed to close storage", logger.Err(err))
		}
	}()

	repo := storage.NewAccountRepository(store, log)
	service := account.NewService(repo, account.NewFieldValidator(), log)
	if err := service.Load(ctx); err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              conf.Server.RunAddress,
		Handler:           api.New(service, conf.Server.APIToken, log),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", slog.String("address", conf.Server.RunAddress), slog.String("env", conf.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// openStore выбирает PostgreSQL, если задан DATABASE_URI, иначе файл SQLite.
func openStore(ctx context.Context, conf *config.Config, log *slog.Logger) (storage.BlobStore, error) {
	var (
		store storage.BlobStore
		err   error
	)
	if conf.UsePostgres() {
		store, err = postgres.New(ctx, conf.DB.DatabaseURI, conf.DB.Migrations, log)
	} else {
		store, err = sqlite.New(ctx, conf.Storage.DataPath, log)
	}
	if err != nil {
		return nil, err
	}

	if conf.Storage.MasterPassword == "" {
		return store, nil
	}

	sealer, err := crypto.NewSealer(conf.Storage.MasterPassword)
	if err != nil {
		_ = store.Close()
		return nil, err
	}
	var opts []encrypted.Option
	if conf.Storage.MigratePlaintext {
		opts = append(opts, encrypted.WithPlaintextMigration())
	}
	return encrypted.New(store, sealer, log, opts...), nil
}
