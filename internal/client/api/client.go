package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/iudanet/fieldsync/internal/models"
	"github.com/iudanet/fieldsync/pkg/api"
)

const (
	// DefaultTimeout таймаут HTTP клиента по умолчанию
	DefaultTimeout = 30 * time.Second

	// MaxResponseSize максимальный размер ответа портала (100MB)
	MaxResponseSize = 100 * 1024 * 1024

	// DefaultUserAgent значение User-Agent по умолчанию
	DefaultUserAgent = "fieldsync/1.0"
)

// Client представляет HTTP клиент для взаимодействия с порталом
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	logger     *slog.Logger
	decorators []RequestDecorator
	mu         sync.RWMutex
}

var _ ClientAPI = (*Client)(nil)

// NewClient создает новый API клиент
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:   normalizeURL(baseURL),
		userAgent: DefaultUserAgent,
		logger:    slog.Default(),
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
			// Настройка обработки редиректов
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				// Ограничиваем количество редиректов
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Копируем заголовки Authorization при редиректе
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func normalizeURL(u string) string {
	return strings.TrimRight(strings.TrimSpace(u), "/")
}

// BaseURL возвращает текущий адрес портала
func (c *Client) BaseURL() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.baseURL
}

// SetBaseURL меняет адрес портала
func (c *Client) SetBaseURL(baseURL string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.baseURL = normalizeURL(baseURL)
}

// Health проверяет доступность портала
func (c *Client) Health(ctx context.Context) (*api.HealthResponse, error) {
	var resp api.HealthResponse
	if err := c.doRequest(ctx, http.MethodGet, "/api/health", nil, &resp); err != nil {
		return nil, fmt.Errorf("health check failed: %w", err)
	}
	if resp.Status != "" && resp.Status != "ok" {
		return &resp, fmt.Errorf("%w: portal status %q", ErrRejected, resp.Status)
	}
	return &resp, nil
}

// PushUsers отправляет полную коллекцию пользователей
func (c *Client) PushUsers(ctx context.Context, users []models.User) (*api.WriteResponse, error) {
	var resp api.WriteResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/sync/users", api.PushUsersRequest{Users: users}, &resp); err != nil {
		return nil, fmt.Errorf("push users failed: %w", err)
	}
	return &resp, nil
}

// PushTickets отправляет полную коллекцию тикетов
func (c *Client) PushTickets(ctx context.Context, tickets []models.ServiceTicket) (*api.WriteResponse, error) {
	var resp api.WriteResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/sync/tickets", api.PushTicketsRequest{Tickets: tickets}, &resp); err != nil {
		return nil, fmt.Errorf("push tickets failed: %w", err)
	}
	return &resp, nil
}

// PullUsers получает пользователей с портала.
// Испорченные записи пропускаются с предупреждением.
func (c *Client) PullUsers(ctx context.Context) ([]models.User, error) {
	users, _, err := c.pullUsers(ctx)
	return users, err
}

// PullTickets получает тикеты с портала.
// Испорченные записи пропускаются с предупреждением.
func (c *Client) PullTickets(ctx context.Context) ([]models.ServiceTicket, error) {
	tickets, _, err := c.pullTickets(ctx)
	return tickets, err
}

func (c *Client) pullUsers(ctx context.Context) ([]models.User, int, error) {
	var resp api.RawCollection
	if err := c.doRequest(ctx, http.MethodGet, "/api/sync/users", nil, &resp); err != nil {
		return nil, 0, fmt.Errorf("pull users failed: %w", err)
	}
	users, errs := api.DecodeRecords[models.User](resp.Users)
	c.warnSkipped("users", errs)
	return users, len(errs), nil
}

func (c *Client) pullTickets(ctx context.Context) ([]models.ServiceTicket, int, error) {
	var resp api.RawCollection
	if err := c.doRequest(ctx, http.MethodGet, "/api/sync/tickets", nil, &resp); err != nil {
		return nil, 0, fmt.Errorf("pull tickets failed: %w", err)
	}
	tickets, errs := api.DecodeRecords[models.ServiceTicket](resp.Tickets)
	c.warnSkipped("tickets", errs)
	return tickets, len(errs), nil
}

func (c *Client) warnSkipped(kind string, errs []*api.RecordError) {
	for _, e := range errs {
		c.logger.Warn("Skipping malformed remote record", "kind", kind, "index", e.Index, "error", e.Err)
	}
}

// FetchAllData параллельно запрашивает пользователей и тикеты
func (c *Client) FetchAllData(ctx context.Context) (*AllData, error) {
	var (
		data AllData
		g    errgroup.Group
	)

	// Ошибки не прерывают второй запрос, поэтому горутины всегда возвращают nil
	g.Go(func() error {
		data.Users, data.UsersSkipped, data.UsersErr = c.pullUsers(ctx)
		return nil
	})
	g.Go(func() error {
		data.Tickets, data.TicketsSkipped, data.TicketsErr = c.pullTickets(ctx)
		return nil
	})
	_ = g.Wait()

	if data.UsersErr != nil && data.TicketsErr != nil {
		return &data, fmt.Errorf("%w: %w", ErrPullFailed, errors.Join(data.UsersErr, data.TicketsErr))
	}
	return &data, nil
}

// GetOperationTemplates получает шаблоны операций
func (c *Client) GetOperationTemplates(ctx context.Context) ([]models.OperationTemplate, error) {
	var resp api.OperationsResponse
	if err := c.doRequest(ctx, http.MethodGet, "/api/config/operations", nil, &resp); err != nil {
		return nil, fmt.Errorf("get operation templates failed: %w", err)
	}
	return resp.Data.Operations, nil
}

// GetSparePartTemplates получает шаблоны запчастей
func (c *Client) GetSparePartTemplates(ctx context.Context) ([]models.SparePartTemplate, error) {
	var resp api.SparePartsResponse
	if err := c.doRequest(ctx, http.MethodGet, "/api/config/spare-parts", nil, &resp); err != nil {
		return nil, fmt.Errorf("get spare part templates failed: %w", err)
	}
	return resp.Data.SpareParts, nil
}

// ListBackups возвращает список резервных копий портала
func (c *Client) ListBackups(ctx context.Context) ([]models.Backup, error) {
	var resp api.BackupsResponse
	if err := c.doRequest(ctx, http.MethodGet, "/api/backup", nil, &resp); err != nil {
		return nil, fmt.Errorf("list backups failed: %w", err)
	}
	return resp.Backups, nil
}

// CreateBackup просит портал сделать резервную копию
func (c *Client) CreateBackup(ctx context.Context) (*api.WriteResponse, error) {
	var resp api.WriteResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/backup", nil, &resp); err != nil {
		return nil, fmt.Errorf("create backup failed: %w", err)
	}
	return &resp, nil
}

// RestoreBackup восстанавливает данные портала из резервной копии
func (c *Client) RestoreBackup(ctx context.Context, filename string) (*api.WriteResponse, error) {
	var resp api.WriteResponse
	req := api.RestoreBackupRequest{Filename: filename}
	if err := c.doRequest(ctx, http.MethodPost, "/api/backup/restore", req, &resp); err != nil {
		return nil, fmt.Errorf("restore backup failed: %w", err)
	}
	return &resp, nil
}

// OpenWorkday открывает рабочий день техника
func (c *Client) OpenWorkday(ctx context.Context, userID, reason string) error {
	req := api.WorkdayRequest{UserID: userID, Reason: reason}
	if err := c.doRequest(ctx, http.MethodPost, "/api/workday/open", req, nil); err != nil {
		return fmt.Errorf("open workday failed: %w", err)
	}
	return nil
}

// CloseWorkday закрывает рабочий день техника
func (c *Client) CloseWorkday(ctx context.Context, userID string) error {
	req := api.WorkdayRequest{UserID: userID}
	if err := c.doRequest(ctx, http.MethodPost, "/api/workday/close", req, nil); err != nil {
		return fmt.Errorf("close workday failed: %w", err)
	}
	return nil
}

// envelope общие поля ответов портала
type envelope struct {
	Success *bool  `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

// doRequest выполняет HTTP запрос
func (c *Client) doRequest(ctx context.Context, method, path string, body, result any) error {
	c.mu.RLock()
	url := c.baseURL + path
	decorators := c.decorators
	c.mu.RUnlock()

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, d := range decorators {
		d(req)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Читаем тело ответа с ограничением размера
	respBody, err := io.ReadAll(io.LimitReader(resp.Body, MaxResponseSize+1))
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}
	if int64(len(respBody)) > MaxResponseSize {
		return fmt.Errorf("response size exceeds maximum allowed size of %d bytes", MaxResponseSize)
	}

	var env envelope
	decodeErr := json.Unmarshal(respBody, &env)

	// Проверяем статус код
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := strings.TrimSpace(string(respBody))
		if decodeErr == nil {
			msg = env.Message
			if msg == "" {
				msg = env.Error
			}
		}
		return NewHTTPError(resp.StatusCode, url, msg)
	}

	if decodeErr == nil && env.Success != nil && !*env.Success {
		return fmt.Errorf("%w: %s", ErrRejected, env.Message)
	}

	// Декодируем успешный ответ
	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
