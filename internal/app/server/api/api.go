//GET    /api/v1/health            # Проверка состояния (публичный)
//GET    /api/accounts             # Список учетных записей (auth)
//POST   /api/accounts             # Создать запись (auth)
//POST   /api/accounts/validate    # Проверить данные без сохранения (auth)
//GET    /api/accounts/{id}        # Получить запись (auth)
//PUT    /api/accounts/{id}        # Обновить запись (auth)
//DELETE /api/accounts/{id}        # Удалить запись (auth)

package api

import (
	accountAPI "accountkeeper/internal/app/server/api/http/account"
	healthAPI "accountkeeper/internal/app/server/api/http/health"
	"accountkeeper/internal/app/server/api/http/middleware"
	"accountkeeper/internal/app/server/api/http/middleware/auth"
	"accountkeeper/internal/app/server/api/http/middleware/logger"
	"accountkeeper/internal/domain/account"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"
)

type Handlers struct {
	Health  *healthAPI.Handler
	Account *accountAPI.Handler
}

// New создает *chi.Mux со всеми операциями. Пустой apiToken отключает авторизацию.
func New(service account.Servicer, apiToken string, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()

	config := huma.DefaultConfig("AccountKeeper API", "1.0.0")
	config.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"bearer": {Type: "http", Scheme: "bearer"},
	}

	API := humachi.New(mux, config)

	h := handlers(API, service, apiToken, log)
	h.Health.SetupRoutes(API)
	h.Account.SetupRoutes(API)

	return mux
}

func handlers(API huma.API, service account.Servicer, apiToken string, log *slog.Logger) *Handlers {
	authMW := auth.New(API, apiToken, log)
	loggerMW := logger.New(log)
	middlewares := middleware.NewContainer()

	middlewares.Add(loggerMW.Middleware())
	healthHandler := healthAPI.NewHandler(service, log, middlewares.GetAllAndClear())

	middlewares.Add(loggerMW.Middleware())
	middlewares.Add(authMW.Middleware())
	accountHandler := accountAPI.NewHandler(service, log, middlewares.GetAllAndClear())

	return &Handlers{
		Health:  healthHandler,
		Account: accountHandler,
	}
}
