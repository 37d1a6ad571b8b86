// Package cli реализует команды полевого клиента fieldsync.
package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	clientapi "github.com/iudanet/fieldsync/internal/client/api"
	"github.com/iudanet/fieldsync/internal/client/auth"
	"github.com/iudanet/fieldsync/internal/client/data"
	"github.com/iudanet/fieldsync/internal/client/iocli"
	"github.com/iudanet/fieldsync/internal/client/lifecycle"
	"github.com/iudanet/fieldsync/internal/client/livesync"
	"github.com/iudanet/fieldsync/internal/client/storage"
	"github.com/iudanet/fieldsync/internal/models"
)

//go:generate moq -out syncer_mock.go . Syncer

// Syncer часть планировщика, которую использует CLI
type Syncer interface {
	Once(ctx context.Context) (*livesync.CycleResult, error)
	State() livesync.State
	LastSynced() time.Time
	ConsecutiveFailures() int
}

var _ Syncer = (*livesync.Scheduler)(nil)

var (
	ErrNotLoggedIn    = errors.New("not logged in, run 'fieldsync login' first")
	ErrNotSuperUser   = errors.New("only a super user can manage users")
	ErrInvalidPortal  = errors.New("invalid portal URL")
	ErrPortalNotReady = errors.New("portal endpoint is not configured, run 'fieldsync portal set-url <url>' first")
)

// connectionTimeout ограничивает проверку связи и разовые запросы к порталу
const connectionTimeout = 5 * time.Second

// Deps зависимости CLI, собираются в cmd/client
type Deps struct {
	IO          iocli.IO
	Auth        auth.Service
	Data        *data.Service
	Syncer      Syncer
	API         clientapi.ClientAPI
	Metadata    storage.MetadataStorage
	Templates   storage.TemplateStorage
	Runner      *lifecycle.Runner
	Metrics     http.Handler // nil отключает HTTP сервер метрик
	MetricsAddr string
	Logger      *slog.Logger
}

type Cli struct {
	io          iocli.IO
	authService auth.Service
	dataService *data.Service
	syncer      Syncer
	apiClient   clientapi.ClientAPI
	metadata    storage.MetadataStorage
	templates   storage.TemplateStorage
	runner      *lifecycle.Runner
	metrics     http.Handler
	metricsAddr string
	logger      *slog.Logger
}

func New(d Deps) *Cli {
	if d.IO == nil {
		d.IO = iocli.NewStdio()
	}
	if d.Logger == nil {
		d.Logger = slog.Default()
	}
	return &Cli{
		io:          d.IO,
		authService: d.Auth,
		dataService: d.Data,
		syncer:      d.Syncer,
		apiClient:   d.API,
		metadata:    d.Metadata,
		templates:   d.Templates,
		runner:      d.Runner,
		metrics:     d.Metrics,
		metricsAddr: d.MetricsAddr,
		logger:      d.Logger,
	}
}

// session возвращает текущую сессию или ErrNotLoggedIn
func (c *Cli) session(ctx context.Context) (*storage.Session, error) {
	s, err := c.authService.CurrentSession(ctx)
	if errors.Is(err, storage.ErrSessionNotFound) {
		return nil, ErrNotLoggedIn
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}
	return s, nil
}

func (c *Cli) requireSuperUser(ctx context.Context) error {
	s, err := c.session(ctx)
	if err != nil {
		return err
	}
	if s.Role != models.RoleSuperUser {
		return ErrNotSuperUser
	}
	return nil
}

// connect направляет API клиент на сохраненный адрес портала
func (c *Cli) connect(ctx context.Context) (string, error) {
	endpoint, err := c.metadata.GetPortalURL(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to read portal endpoint: %w", err)
	}
	if !livesync.IsConfiguredEndpoint(endpoint) {
		return "", ErrPortalNotReady
	}
	c.apiClient.SetBaseURL(endpoint)
	return endpoint, nil
}

// normalizePortalURL проверяет адрес портала и убирает завершающий "/"
func normalizePortalURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidPortal, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("%w: scheme must be http or https", ErrInvalidPortal)
	}
	if u.Host == "" {
		return "", fmt.Errorf("%w: host is missing", ErrInvalidPortal)
	}
	return strings.TrimRight(raw, "/"), nil
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "never"
	}
	return t.Local().Format("2006-01-02 15:04:05")
}

func formatTimePtr(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return formatTime(*t)
}

// shortID первые 8 символов UUID для таблиц
func shortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}
