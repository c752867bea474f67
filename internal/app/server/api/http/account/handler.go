package account

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"accountkeeper/internal/domain/account"
)

type Handler struct {
	service    account.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service account.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log.With("component", "account_handler"),
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.validateOp(), h.validate)
	huma.Register(api, h.findOp(), h.find)
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.updateOp(), h.update)
	huma.Register(api, h.deleteOp(), h.delete)
}

func (h *Handler) list(ctx context.Context, input *listInput) (*listOutput, error) {
	filter := account.Filter{
		Tag:   input.Tag,
		Login: input.Login,
	}
	if input.RecordType != "" {
		rt, err := account.ParseRecordType(input.RecordType)
		if err != nil {
			return nil, huma.Error400BadRequest("Неизвестный тип учетной записи")
		}
		filter.RecordType = rt
	}

	accounts, err := h.service.List(ctx, filter)
	if err != nil {
		return nil, h.toHTTPError(err)
	}

	return &listOutput{
		Body: listResponse{
			Accounts: accounts,
			Total:    len(accounts),
		},
	}, nil
}

func (h *Handler) find(ctx context.Context, input *idInput) (*accountOutput, error) {
	acc, err := h.service.Get(ctx, input.ID)
	if err != nil {
		return nil, h.toHTTPError(err)
	}
	return &accountOutput{Body: acc}, nil
}

func (h *Handler) create(ctx context.Context, input *createInput) (*accountOutput, error) {
	acc, err := h.service.Add(ctx, input.Body.toData())
	if err != nil {
		return nil, h.toHTTPError(err)
	}
	return &accountOutput{Body: acc}, nil
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*accountOutput, error) {
	acc, err := h.service.Update(ctx, input.ID, input.Body.toData())
	if err != nil {
		return nil, h.toHTTPError(err)
	}
	return &accountOutput{Body: acc}, nil
}

func (h *Handler) delete(ctx context.Context, input *idInput) (*output, error) {
	if err := h.service.Remove(ctx, input.ID); err != nil {
		return nil, h.toHTTPError(err)
	}
	return &output{
		Body: response{
			ID:     input.ID,
			Status: "Ok",
		},
	}, nil
}

// validate answers in the {isValid, errorMessage} shape; only storage
// failures become HTTP errors.
func (h *Handler) validate(ctx context.Context, input *validateInput) (*validateOutput, error) {
	err := h.service.Validate(ctx, input.Body.toData(), input.ID)
	if err != nil && !account.IsValidationError(err) {
		return nil, h.toHTTPError(err)
	}
	return &validateOutput{
		Body: validateResponse{
			IsValid:      err == nil,
			ErrorMessage: account.Message(err),
		},
	}, nil
}

func (h *Handler) toHTTPError(err error) error {
	msg := account.Message(err)
	switch {
	case errors.Is(err, account.ErrNotFound):
		return huma.Error404NotFound(msg)
	case errors.Is(err, account.ErrLoginExists):
		return huma.Error409Conflict(msg)
	case account.IsValidationError(err):
		return huma.Error422UnprocessableEntity(msg)
	}

	h.log.Error("account operation failed", "error", err)
	return huma.Error500InternalServerError("Internal server error")
}
