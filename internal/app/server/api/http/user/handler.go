package user

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
	"usercrud/internal/domain/user"
)

type Handler struct {
	service    user.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service user.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.findOp(), h.find)
	huma.Register(api, h.updateOp(), h.update)
	huma.Register(api, h.deleteOp(), h.delete)
}

func (h *Handler) list(ctx context.Context, _ *struct{}) (*listOutput, error) {
	users, err := h.service.List(ctx)
	if err != nil {
		return nil, toHTTPError(err)
	}

	return &listOutput{Body: users}, nil
}

func (h *Handler) find(ctx context.Context, input *idInput) (*output, error) {
	u, err := h.service.Find(ctx, user.ID(input.ID))
	if err != nil {
		return nil, toHTTPError(err)
	}

	return &output{Body: u}, nil
}

func (h *Handler) create(ctx context.Context, input *createInput) (*output, error) {
	u, err := h.service.Create(ctx, input.Body)
	if err != nil {
		return nil, toHTTPError(err)
	}

	return &output{Body: u}, nil
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*output, error) {
	u, err := h.service.Update(ctx, user.ID(input.ID), input.Body)
	if err != nil {
		return nil, toHTTPError(err)
	}

	return &output{Body: u}, nil
}

func (h *Handler) delete(ctx context.Context, input *idInput) (*struct{}, error) {
	if err := h.service.Delete(ctx, user.ID(input.ID)); err != nil {
		return nil, toHTTPError(err)
	}

	return nil, nil
}

// toHTTPError переводит доменные ошибки в ответы API
func toHTTPError(err error) error {
	switch {
	case errors.Is(err, user.ErrNotFound):
		return huma.Error404NotFound("user not found")
	case errors.Is(err, user.ErrInvalidID):
		return huma.Error422UnprocessableEntity(err.Error())
	default:
		return huma.Error500InternalServerError("internal error")
	}
}
