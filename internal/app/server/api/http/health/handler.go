package health

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"accountkeeper/internal/domain/account"
)

// Handler отвечает на проверки живости и сообщает размер списка.
type Handler struct {
	service    account.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service account.Servicer, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log.With("component", "health_handler"),
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.healthCheckOp(), h.healthCheck)
}

func (h *Handler) healthCheck(ctx context.Context, _ *Input) (*Output, error) {
	accounts, err := h.service.List(ctx, account.Filter{})
	if err != nil {
		h.log.Error("health check failed", "error", err)
		return nil, huma.Error503ServiceUnavailable("account store unavailable")
	}

	return &Output{
		Body: Response{
			Status:   "OK",
			Accounts: len(accounts),
		},
	}, nil
}
