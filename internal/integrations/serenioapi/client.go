package serenioapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client клиент для работы с backend Serenio
// Единственная точка, где транспортные исходы и статус-коды переводятся в
// таксономию ошибок - все остальные слои работают только с сентинелами
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
	log        Logger

	metrics       MetricsRecorder
	onAuthExpired func()
}

// NewClient создает новый экземпляр клиента Serenio API
func NewClient(baseURL string, timeout time.Duration, tokens TokenSource, log Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		tokens: tokens,
		log:    log,
	}
}

// SetTokenSource устанавливает источник токена доступа
// Используется при связывании с менеджером сессии, который сам зависит от клиента
func (c *Client) SetTokenSource(tokens TokenSource) {
	c.tokens = tokens
}

// SetMetricsCollector включает сбор метрик исходящих запросов
func (c *Client) SetMetricsCollector(m MetricsRecorder) {
	c.metrics = m
}

// SetAuthExpiredHook устанавливает обработчик истечения сессии
// Вызывается один раз на каждый запрос, завершившийся ErrAuthExpired
func (c *Client) SetAuthExpiredHook(fn func()) {
	c.onAuthExpired = fn
}

// call описывает один запрос к backend
type call struct {
	endpoint      string // имя эндпоинта для метрик и логов
	method        string
	path          string
	query         url.Values
	body          interface{}
	out           interface{}
	authenticated bool
	headers       map[string]string
}

// do выполняет запрос и переводит результат в таксономию ошибок:
// 400 -> ErrValidation (с сообщением сервера), 401/403 -> ErrAuthExpired,
// 404 -> ErrNotFound, 409 -> ErrSlotConflict, 5xx и мусорные ответы -> ErrServer,
// ошибки транспорта -> ErrNetwork
func (c *Client) do(ctx context.Context, req call) error {
	start := time.Now()
	err := c.doOnce(ctx, req)

	if c.metrics != nil {
		c.metrics.ObserveRequest(req.endpoint, ErrorOutcome(err), time.Since(start))
	}

	return err
}

func (c *Client) doOnce(ctx context.Context, req call) error {
	u := c.baseURL + req.path
	if len(req.query) > 0 {
		u += "?" + req.query.Encode()
	}

	var bodyReader io.Reader
	if req.body != nil {
		encoded, err := json.Marshal(req.body)
		if err != nil {
			return fmt.Errorf("%w: failed to encode request body: %v", ErrInternal, err)
		}
		bodyReader = bytes.NewReader(encoded)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, u, bodyReader)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	httpReq.Header.Set("Content-Type", "application/json")

	if req.authenticated {
		var token string
		if c.tokens != nil {
			token = c.tokens.AccessToken()
		}
		if token == "" {
			// Без токена запрос гарантированно завершится 401 - не ходим в сеть
			return fmt.Errorf("%w: no active session", ErrAuthExpired)
		}
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}

	for k, v := range req.headers {
		httpReq.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.log.Error("%s %s - request failed: %v", req.method, req.path, err)
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		// Продолжаем обработку
	case resp.StatusCode == http.StatusBadRequest:
		msg := c.readErrorMessage(resp.Body)
		c.log.Warn("%s %s - validation rejected: %s", req.method, req.path, msg)
		return fmt.Errorf("%w: %s", ErrValidation, msg)
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		c.log.Warn("%s %s - session expired (status %d)", req.method, req.path, resp.StatusCode)
		if c.onAuthExpired != nil {
			c.onAuthExpired()
		}
		return ErrAuthExpired
	case resp.StatusCode == http.StatusNotFound:
		c.log.Warn("%s %s - not found", req.method, req.path)
		return ErrNotFound
	case resp.StatusCode == http.StatusConflict:
		msg := c.readErrorMessage(resp.Body)
		c.log.Warn("%s %s - conflict: %s", req.method, req.path, msg)
		return fmt.Errorf("%w: %s", ErrSlotConflict, msg)
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		c.log.Error("%s %s - unexpected status %d: %s", req.method, req.path, resp.StatusCode, string(body))
		return fmt.Errorf("%w: unexpected status code %d", ErrServer, resp.StatusCode)
	}

	if req.out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(req.out); err != nil {
		c.log.Error("%s %s - failed to decode response: %v", req.method, req.path, err)
		return fmt.Errorf("%w: failed to decode response: %v", ErrServer, err)
	}

	return nil
}

// readErrorMessage извлекает сообщение сервера из тела ошибки (best-effort)
func (c *Client) readErrorMessage(body io.Reader) string {
	var errResp ErrorResponse
	if err := json.NewDecoder(io.LimitReader(body, 4096)).Decode(&errResp); err != nil {
		return "request rejected"
	}
	if msg := errResp.UserMessage(); msg != "" {
		return msg
	}
	return "request rejected"
}
