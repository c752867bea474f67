package auth

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

// Auth проверяет статический bearer-токен. Пустой токен отключает проверку.
type Auth struct {
	api   huma.API
	token string
	log   *slog.Logger
}

func New(api huma.API, token string, log *slog.Logger) *Auth {
	return &Auth{
		api:   api,
		token: token,
		log:   log.With("component", "auth_middleware"),
	}
}

// Middleware возвращает middleware для Huma с сигнатурой func(ctx Context, next func(Context))
func (a *Auth) Middleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		if a.token == "" {
			next(ctx)
			return
		}

		header := ctx.Header("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || subtle.ConstantTimeCompare([]byte(token), []byte(a.token)) != 1 {
			a.log.Warn("unauthorized request", "path", ctx.URL().Path)
			if err := huma.WriteErr(a.api, ctx, http.StatusUnauthorized, "Unauthorized"); err != nil {
				a.log.Error("failed to write error", "error", err)
			}
			return
		}

		next(ctx)
	}
}
