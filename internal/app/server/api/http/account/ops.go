package account

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "accounts-list",
		Method:      http.MethodGet,
		Path:        "/api/accounts",
		Summary:     "Список учетных записей",
		Tags:        []string{"accounts"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) findOp() huma.Operation {
	return huma.Operation{
		OperationID: "accounts-find",
		Method:      http.MethodGet,
		Path:        "/api/accounts/{id}",
		Summary:     "Получить учетную запись",
		Tags:        []string{"accounts"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID:   "accounts-create",
		Method:        http.MethodPost,
		Path:          "/api/accounts",
		Summary:       "Создать учетную запись",
		Tags:          []string{"accounts"},
		Security:      []map[string][]string{{"bearer": {}}},
		DefaultStatus: http.StatusCreated,
		Middlewares:   h.middleware,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "accounts-update",
		Method:      http.MethodPut,
		Path:        "/api/accounts/{id}",
		Summary:     "Обновить учетную запись",
		Description: "Полностью заменяет логин, пароль, тип и метки записи.",
		Tags:        []string{"accounts"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID: "accounts-delete",
		Method:      http.MethodDelete,
		Path:        "/api/accounts/{id}",
		Summary:     "Удалить учетную запись",
		Tags:        []string{"accounts"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) validateOp() huma.Operation {
	return huma.Operation{
		OperationID: "accounts-validate",
		Method:      http.MethodPost,
		Path:        "/api/accounts/validate",
		Summary:     "Проверить данные учетной записи",
		Description: "Проверяет обязательные поля и уникальность пары логин + тип без сохранения.",
		Tags:        []string{"accounts"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}
