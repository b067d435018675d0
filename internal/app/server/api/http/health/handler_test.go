package health

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error {
	return f(ctx)
}

func TestHandler_healthCheck(t *testing.T) {
	tests := []struct {
		name            string
		storage         Pinger
		expectedStatus  int
		expectedStorage string
	}{
		{
			name:            "memory storage",
			storage:         nil,
			expectedStatus:  http.StatusOK,
			expectedStorage: statusOK,
		},
		{
			name:            "storage reachable",
			storage:         pingerFunc(func(context.Context) error { return nil }),
			expectedStatus:  http.StatusOK,
			expectedStorage: statusOK,
		},
		{
			name:            "storage down",
			storage:         pingerFunc(func(context.Context) error { return errors.New("connection refused") }),
			expectedStatus:  http.StatusServiceUnavailable,
			expectedStorage: statusUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewHandler(tt.storage, slog.Default(), huma.Middlewares{})

			output, err := handler.healthCheck(context.Background(), &struct{}{})

			require.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, output.Status)
			assert.Equal(t, statusOK, output.Body.Status)
			assert.Equal(t, tt.expectedStorage, output.Body.Storage)
		})
	}
}

func TestHealthRoute(t *testing.T) {
	_, api := humatest.New(t)
	NewHandler(pingerFunc(func(context.Context) error { return errors.New("down") }), slog.Default(), nil).SetupRoutes(api)

	resp := api.Get("/api/v1/health")
	assert.Equal(t, http.StatusServiceUnavailable, resp.Code)
	assert.Contains(t, resp.Body.String(), `"storage":"UNAVAILABLE"`)
}
