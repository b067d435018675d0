// REST-хранилище записей пользователей:
//
//	GET    /api/users       # Список записей
//	POST   /api/users       # Создать запись, ID назначает хранилище
//	GET    /api/users/{id}  # Получить запись
//	PUT    /api/users/{id}  # Полностью заменить запись
//	DELETE /api/users/{id}  # Удалить запись
//	GET    /api/v1/health   # Проверка доступности
package api

import (
	healthAPI "usercrud/internal/app/server/api/http/health"
	"usercrud/internal/app/server/api/http/middleware"
	"usercrud/internal/app/server/api/http/middleware/auth"
	"usercrud/internal/app/server/api/http/middleware/logger"
	userAPI "usercrud/internal/app/server/api/http/user"
	"usercrud/internal/domain/user"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"
)

type Handlers struct {
	Health *healthAPI.Handler
	User   *userAPI.Handler
}

// New создает *chi.Mux со всеми операциями через huma.Register.
// tokenHash - bcrypt-хэш токена хранилища, пустая строка отключает авторизацию.
func New(repo user.Repository, tokenHash string, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()

	config := huma.DefaultConfig("User Store API", "1.0.0")
	config.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"bearer": {Type: "http", Scheme: "bearer"},
	}

	API := humachi.New(mux, config)

	h := handlers(repo, tokenHash, log)
	h.Health.SetupRoutes(API)
	h.User.SetupRoutes(API)

	return mux
}

func handlers(repo user.Repository, tokenHash string, log *slog.Logger) *Handlers {
	authMW := auth.New(tokenHash, log)
	loggerMW := logger.New(log)
	middlewares := middleware.NewContainer()

	// memory-хранилище не требует проверки
	var pinger healthAPI.Pinger
	if p, ok := repo.(healthAPI.Pinger); ok {
		pinger = p
	}

	middlewares.Add(loggerMW.Middleware())
	healthHandler := healthAPI.NewHandler(pinger, log, middlewares.GetAllAndClear())

	userService := user.NewService(repo, log)
	middlewares.Add(loggerMW.Middleware())
	middlewares.Add(authMW.Middleware())
	userHandler := userAPI.NewHandler(userService, log, middlewares.GetAllAndClear())

	return &Handlers{
		Health: healthHandler,
		User:   userHandler,
	}
}
