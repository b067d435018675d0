package user

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

const basePath = "/api/users"

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "users-list",
		Method:      http.MethodGet,
		Path:        basePath,
		Summary:     "Список пользователей",
		Tags:        []string{"users"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID:   "users-create",
		Method:        http.MethodPost,
		Path:          basePath,
		Summary:       "Создать пользователя",
		Description:   "Создает запись; идентификатор назначает хранилище.",
		Tags:          []string{"users"},
		DefaultStatus: http.StatusCreated,
		Security:      []map[string][]string{{"bearer": {}}},
		Middlewares:   h.middleware,
	}
}

func (h *Handler) findOp() huma.Operation {
	return huma.Operation{
		OperationID: "users-find",
		Method:      http.MethodGet,
		Path:        basePath + "/{id}",
		Summary:     "Получить пользователя",
		Tags:        []string{"users"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "users-update",
		Method:      http.MethodPut,
		Path:        basePath + "/{id}",
		Summary:     "Обновить пользователя",
		Description: "Полная замена всех полей записи.",
		Tags:        []string{"users"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID:   "users-delete",
		Method:        http.MethodDelete,
		Path:          basePath + "/{id}",
		Summary:       "Удалить пользователя",
		Tags:          []string{"users"},
		DefaultStatus: http.StatusNoContent,
		Security:      []map[string][]string{{"bearer": {}}},
		Middlewares:   h.middleware,
	}
}
