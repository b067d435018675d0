package health

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

const (
	statusOK          = "OK"
	statusUnavailable = "UNAVAILABLE"
	pingTimeout       = 2 * time.Second
)

// Pinger - хранилище, доступность которого можно проверить
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	storage    Pinger
	log        *slog.Logger
	middleware huma.Middlewares
}

// NewHandler создает обработчик. storage == nil означает хранилище в памяти.
func NewHandler(storage Pinger, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		storage:    storage,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.healthCheckOp(), h.healthCheck)
}

func (h *Handler) healthCheck(ctx context.Context, _ *struct{}) (*Output, error) {
	out := &Output{
		Status: http.StatusOK,
		Body:   Response{Status: statusOK, Storage: statusOK},
	}

	if h.storage == nil {
		return out, nil
	}

	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := h.storage.Ping(ctx); err != nil {
		h.log.Warn("storage ping failed", "error", err)
		out.Status = http.StatusServiceUnavailable
		out.Body.Storage = statusUnavailable
	}

	return out, nil
}
