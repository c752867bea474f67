package account

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"accountkeeper/internal/domain/account"
	"accountkeeper/internal/infrastructure/storage"
	"accountkeeper/internal/infrastructure/storage/memory"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Load(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockService) List(ctx context.Context, filter account.Filter) ([]account.Account, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]account.Account), args.Error(1)
}

func (m *MockService) Get(ctx context.Context, id int) (account.Account, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(account.Account), args.Error(1)
}

func (m *MockService) Add(ctx context.Context, data account.Data) (account.Account, error) {
	args := m.Called(ctx, data)
	return args.Get(0).(account.Account), args.Error(1)
}

func (m *MockService) Update(ctx context.Context, id int, data account.Data) (account.Account, error) {
	args := m.Called(ctx, id, data)
	return args.Get(0).(account.Account), args.Error(1)
}

func (m *MockService) Remove(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockService) Validate(ctx context.Context, data account.Data, id int) error {
	return m.Called(ctx, data, id).Error(0)
}

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var se huma.StatusError
	require.ErrorAs(t, err, &se)
	return se.GetStatus()
}

func TestHandler_List(t *testing.T) {
	svc := new(MockService)
	h := NewHandler(svc, slog.Default(), nil)

	accounts := []account.Account{{ID: 1, Data: account.Data{Login: "bob", RecordType: account.RecordTypeLDAP}}}
	svc.On("List", mock.Anything, account.Filter{RecordType: account.RecordTypeLDAP, Tag: "web"}).Return(accounts, nil)

	out, err := h.list(context.Background(), &listInput{RecordType: "ldap", Tag: "web"})
	require.NoError(t, err)
	assert.Equal(t, 1, out.Body.Total)
	assert.Equal(t, accounts, out.Body.Accounts)

	_, err = h.list(context.Background(), &listInput{RecordType: "kerberos"})
	assert.Equal(t, http.StatusBadRequest, statusOf(t, err))

	svc.AssertExpectations(t)
}

func TestHandler_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		svc := new(MockService)
		h := NewHandler(svc, slog.Default(), nil)

		input := &createInput{}
		input.Body.Login = "admin"
		input.Body.Password = account.StringPtr("secret")
		input.Body.RecordType = account.RecordTypeLocal
		input.Body.Tags = []account.Tag{{Text: "web"}}

		created := account.Account{ID: 1, Data: input.Body.toData()}
		svc.On("Add", mock.Anything, mock.MatchedBy(func(d account.Data) bool {
			return d.Login == "admin" && d.PasswordValue() == "secret" && len(d.Tags) == 1
		})).Return(created, nil)

		out, err := h.create(ctx, input)
		require.NoError(t, err)
		assert.Equal(t, created, out.Body)
	})

	t.Run("Error_Duplicate", func(t *testing.T) {
		svc := new(MockService)
		h := NewHandler(svc, slog.Default(), nil)

		svc.On("Add", mock.Anything, mock.Anything).
			Return(account.Account{}, &account.DomainError{Err: account.ErrLoginExists, Message: "Такой логин уже существует"})

		_, err := h.create(ctx, &createInput{})
		assert.Equal(t, http.StatusConflict, statusOf(t, err))
		assert.Contains(t, err.Error(), "Такой логин уже существует")
	})

	t.Run("Error_Storage", func(t *testing.T) {
		svc := new(MockService)
		h := NewHandler(svc, slog.Default(), nil)

		svc.On("Add", mock.Anything, mock.Anything).Return(account.Account{}, errors.New("disk full"))

		_, err := h.create(ctx, &createInput{})
		assert.Equal(t, http.StatusInternalServerError, statusOf(t, err))
		assert.NotContains(t, err.Error(), "disk full")
	})
}

func TestHandler_UpdateDeleteFind_NotFound(t *testing.T) {
	ctx := context.Background()
	notFound := &account.DomainError{Err: account.ErrNotFound, Message: "Такая учетная запись не найдена"}

	svc := new(MockService)
	h := NewHandler(svc, slog.Default(), nil)
	svc.On("Update", mock.Anything, 5, mock.Anything).Return(account.Account{}, notFound)
	svc.On("Remove", mock.Anything, 5).Return(notFound)
	svc.On("Get", mock.Anything, 5).Return(account.Account{}, notFound)

	_, err := h.update(ctx, &updateInput{ID: 5})
	assert.Equal(t, http.StatusNotFound, statusOf(t, err))

	_, err = h.delete(ctx, &idInput{ID: 5})
	assert.Equal(t, http.StatusNotFound, statusOf(t, err))

	_, err = h.find(ctx, &idInput{ID: 5})
	assert.Equal(t, http.StatusNotFound, statusOf(t, err))
}

func TestHandler_Validate(t *testing.T) {
	ctx := context.Background()
	svc := new(MockService)
	h := NewHandler(svc, slog.Default(), nil)

	svc.On("Validate", mock.Anything, mock.Anything, 0).
		Return(&account.DomainError{Err: account.ErrRequiredFields, Message: "Заполнены не все обязательные поля"}).Once()
	svc.On("Validate", mock.Anything, mock.Anything, 3).Return(nil).Once()

	out, err := h.validate(ctx, &validateInput{})
	require.NoError(t, err)
	assert.False(t, out.Body.IsValid)
	assert.Equal(t, "Заполнены не все обязательные поля", out.Body.ErrorMessage)

	out, err = h.validate(ctx, &validateInput{ID: 3})
	require.NoError(t, err)
	assert.True(t, out.Body.IsValid)
	assert.Empty(t, out.Body.ErrorMessage)
}

func TestHandler_Routes(t *testing.T) {
	_, api := humatest.New(t)

	log := slog.Default()
	repo := storage.NewAccountRepository(memory.New(), log)
	svc := account.NewService(repo, account.NewFieldValidator(), log)
	NewHandler(svc, log, nil).SetupRoutes(api)

	resp := api.Post("/api/accounts", map[string]any{
		"login":      "admin",
		"password":   "secret",
		"recordType": "Локальная",
		"tags":       []map[string]string{{"text": "web"}},
	})
	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())
	assert.Contains(t, resp.Body.String(), `"id":1`)

	resp = api.Post("/api/accounts", map[string]any{
		"login":      "admin",
		"password":   "other",
		"recordType": "Локальная",
	})
	assert.Equal(t, http.StatusConflict, resp.Code)

	resp = api.Post("/api/accounts", map[string]any{
		"login":      "ldap-user",
		"recordType": "LDAP",
	})
	assert.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())

	resp = api.Get("/api/accounts?type=LDAP")
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"total":1`)

	resp = api.Put("/api/accounts/99", map[string]any{
		"login":      "x",
		"recordType": "LDAP",
	})
	assert.Equal(t, http.StatusNotFound, resp.Code)

	resp = api.Post("/api/accounts/validate", map[string]any{
		"login":      "admin",
		"password":   "p",
		"recordType": "Локальная",
	})
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"isValid":false`)

	resp = api.Delete("/api/accounts/1")
	assert.Equal(t, http.StatusOK, resp.Code)

	resp = api.Get("/api/accounts/1")
	assert.Equal(t, http.StatusNotFound, resp.Code)
}
