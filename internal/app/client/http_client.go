package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/exp/slog"

	"usercrud/internal/app/client/config"
	"usercrud/internal/domain/user"
)

// ErrStore - обобщенная ошибка обращения к удаленному хранилищу
var ErrStore = errors.New("ошибка хранилища")

// Store - операции удаленного хранилища записей
type Store interface {
	ListAll(ctx context.Context) ([]user.User, error)
	Create(ctx context.Context, p user.Person) error
	Update(ctx context.Context, id user.ID, p user.Person) error
	Delete(ctx context.Context, id user.ID) error
}

type httpClient struct {
	client    *http.Client
	log       *slog.Logger
	baseURL   string
	token     string
	userAgent string
}

// NewHTTPClient создает клиент хранилища по адресу коллекции cfg.StoreURL
func NewHTTPClient(cfg *config.Config, log *slog.Logger) (*httpClient, error) {
	if _, err := url.Parse(cfg.StoreURL); err != nil {
		return nil, fmt.Errorf("некорректный адрес хранилища: %w", err)
	}

	client := &http.Client{
		Timeout: cfg.Timeout(),
		Transport: &http.Transport{
			MaxIdleConns:        100,
			IdleConnTimeout:     90 * time.Second,
			MaxIdleConnsPerHost: 10,
		},
	}

	return &httpClient{
		client:    client,
		log:       log.With("component", "store_client"),
		baseURL:   strings.TrimRight(cfg.StoreURL, "/"),
		token:     cfg.StoreToken,
		userAgent: "usercrud-client/1.0",
	}, nil
}

// SetToken устанавливает bearer-токен хранилища
func (h *httpClient) SetToken(token string) {
	h.token = token
}

// ListAll получает все записи хранилища
func (h *httpClient) ListAll(ctx context.Context) ([]user.User, error) {
	resp, err := h.doRequest(ctx, http.MethodGet, "", nil)
	if err != nil {
		return nil, err
	}

	var users []user.User
	if err := h.parseResponse(resp, &users); err != nil {
		return nil, err
	}

	return users, nil
}

// Create создает запись; идентификатор назначает хранилище
func (h *httpClient) Create(ctx context.Context, p user.Person) error {
	resp, err := h.doRequest(ctx, http.MethodPost, "", p)
	if err != nil {
		return err
	}

	return h.parseResponse(resp, nil)
}

// Update полностью заменяет запись с указанным id
func (h *httpClient) Update(ctx context.Context, id user.ID, p user.Person) error {
	resp, err := h.doRequest(ctx, http.MethodPut, "/"+url.PathEscape(id.String()), p)
	if err != nil {
		return err
	}

	return h.parseResponse(resp, nil)
}

// Delete удаляет запись с указанным id
func (h *httpClient) Delete(ctx context.Context, id user.ID) error {
	resp, err := h.doRequest(ctx, http.MethodDelete, "/"+url.PathEscape(id.String()), nil)
	if err != nil {
		return err
	}

	return h.parseResponse(resp, nil)
}

func (h *httpClient) doRequest(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("%w: ошибка маршалинга тела запроса: %v", ErrStore, err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, h.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("%w: ошибка создания запроса: %v", ErrStore, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", h.userAgent)
	if h.token != "" {
		req.Header.Set("Authorization", "Bearer "+h.token)
	}

	h.log.Debug("Отправка запроса",
		"method", method,
		"url", req.URL.String(),
	)

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: ошибка выполнения запроса: %v", ErrStore, err)
	}

	return resp, nil
}

func (h *httpClient) parseResponse(resp *http.Response, result any) error {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: ошибка чтения ответа: %v", ErrStore, err)
	}

	h.log.Debug("Получен ответ",
		"status", resp.StatusCode,
		"bytes", len(body),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: статус %d", ErrStore, resp.StatusCode)
	}

	if result != nil {
		if err := json.Unmarshal(body, result); err != nil {
			return fmt.Errorf("%w: ошибка парсинга ответа: %v", ErrStore, err)
		}
	}

	return nil
}
