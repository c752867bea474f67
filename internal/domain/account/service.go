package account

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"golang.org/x/exp/slog"
)

type Servicer interface {
	Load(ctx context.Context) error
	List(ctx context.Context, filter Filter) ([]Account, error)
	Get(ctx context.Context, id int) (Account, error)
	Add(ctx context.Context, data Data) (Account, error)
	Update(ctx context.Context, id int, data Data) (Account, error)
	Remove(ctx context.Context, id int) error
	Validate(ctx context.Context, data Data, id int) error
}

// Service keeps the account list in memory and writes it through to the
// repository on every mutation.
type Service struct {
	repo      Repository
	validator Validator
	log       *slog.Logger

	mu       sync.RWMutex
	accounts []Account
}

// NewService creates a new account service with an empty list.
func NewService(repo Repository, validator Validator, log *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		validator: validator,
		log:       log.With("component", "account_service"),
		accounts:  []Account{},
	}
}

// Load replaces the in-memory list with the persisted one.
func (s *Service) Load(ctx context.Context) error {
	accounts, err := s.repo.Load(ctx)
	if err != nil {
		s.log.Error("failed to load accounts", "error", err)
		return fmt.Errorf("load accounts: %w", err)
	}

	loaded := make([]Account, 0, len(accounts))
	for _, a := range accounts {
		loaded = append(loaded, a.Clone())
	}

	s.mu.Lock()
	s.accounts = loaded
	s.mu.Unlock()

	s.log.Debug("accounts loaded", "count", len(loaded))
	return nil
}

// List returns copies of the accounts matching filter in insertion order.
func (s *Service) List(_ context.Context, filter Filter) ([]Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Account, 0, len(s.accounts))
	for _, a := range s.accounts {
		if filter.match(a) {
			out = append(out, a.Clone())
		}
	}
	return out, nil
}

func (s *Service) Get(_ context.Context, id int) (Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.indexByID(id)
	if idx == -1 {
		return Account{}, NewDomainError(ErrNotFound)
	}
	return s.accounts[idx].Clone(), nil
}

// Validate runs the checks Add (id == NoID) or Update would run, without saving.
func (s *Service) Validate(_ context.Context, data Data, id int) error {
	data = data.Normalize()

	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.validate(data, id)
}

// Add validates data as a new account and appends it with the next id.
func (s *Service) Add(ctx context.Context, data Data) (Account, error) {
	data = data.Normalize()

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.validate(data, NoID); err != nil {
		return Account{}, err
	}

	created := Account{ID: s.nextID(), Data: data}
	next := append(slices.Clone(s.accounts), created)
	if err := s.persist(ctx, next); err != nil {
		return Account{}, err
	}

	s.log.Info("account created", "account_id", created.ID, "record_type", data.RecordType)
	return created.Clone(), nil
}

// Update replaces the data of account id. Validation runs before the
// existence check.
func (s *Service) Update(ctx context.Context, id int, data Data) (Account, error) {
	data = data.Normalize()

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.validate(data, id); err != nil {
		return Account{}, err
	}

	idx := s.indexByID(id)
	if idx == -1 {
		return Account{}, NewDomainError(ErrNotFound)
	}

	next := slices.Clone(s.accounts)
	next[idx] = Account{ID: id, Data: data}
	if err := s.persist(ctx, next); err != nil {
		return Account{}, err
	}

	s.log.Info("account updated", "account_id", id)
	return next[idx].Clone(), nil
}

func (s *Service) Remove(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexByID(id)
	if idx == -1 {
		return NewDomainError(ErrNotFound)
	}

	next := slices.Delete(slices.Clone(s.accounts), idx, idx+1)
	if err := s.persist(ctx, next); err != nil {
		return err
	}

	s.log.Info("account removed", "account_id", id)
	return nil
}

func (s *Service) validate(data Data, id int) error {
	if err := s.validator.ValidateFields(data); err != nil {
		return err
	}
	if s.loginExists(data, id) {
		return NewDomainError(ErrLoginExists)
	}
	return nil
}

// loginExists looks up the first account with the same login and record
// type; it is a conflict unless that account is id itself.
func (s *Service) loginExists(data Data, id int) bool {
	for _, a := range s.accounts {
		if a.Data.Login == data.Login && a.Data.RecordType == data.RecordType {
			return a.ID != id
		}
	}
	return false
}

func (s *Service) nextID() int {
	if len(s.accounts) == 0 {
		return 1
	}
	maxID := s.accounts[0].ID
	for _, a := range s.accounts[1:] {
		maxID = max(maxID, a.ID)
	}
	return maxID + 1
}

func (s *Service) indexByID(id int) int {
	return slices.IndexFunc(s.accounts, func(a Account) bool {
		return a.ID == id
	})
}

// persist saves next and only then makes it the current list.
func (s *Service) persist(ctx context.Context, next []Account) error {
	if err := s.repo.Save(ctx, next); err != nil {
		s.log.Error("failed to save accounts", "error", err)
		return fmt.Errorf("save accounts: %w", err)
	}
	s.accounts = next
	return nil
}

// IsValidationError сообщает, что err вызвана данными пользователя, а не хранилищем.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrRequiredFields) ||
		errors.Is(err, ErrLoginExists) ||
		errors.Is(err, ErrInvalidRecordType) ||
		errors.Is(err, ErrFieldTooLong)
}
