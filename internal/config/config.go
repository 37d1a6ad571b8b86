// Package config загружает конфигурацию клиента и портала через viper.
//
// Источники по возрастанию приоритета: значения по умолчанию, YAML файл,
// переменные окружения FIELDSYNC_* (точка в ключе заменяется на "_"), флаги cobra.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/iudanet/fieldsync/internal/client/livesync"
)

// EnvPrefix префикс переменных окружения
const EnvPrefix = "FIELDSYNC"

// Client конфигурация полевого клиента
type Client struct {
	Portal   PortalConfig   `mapstructure:"portal"`
	LiveSync LiveSyncConfig `mapstructure:"live_sync"`
	DB       DBConfig       `mapstructure:"db"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
	Log      LogConfig      `mapstructure:"log"`
}

// PortalConfig подключение к порталу
type PortalConfig struct {
	URL     string        `mapstructure:"url"` // начальный адрес, если на устройстве он еще не сохранен
	Token   string        `mapstructure:"token"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// LiveSyncConfig параметры живой синхронизации
type LiveSyncConfig struct {
	Enabled       bool          `mapstructure:"enabled"`
	Interval      time.Duration `mapstructure:"interval"`
	AutoReconnect bool          `mapstructure:"auto_reconnect"`
	MaxFailures   int           `mapstructure:"max_failures"`
	Backoff       bool          `mapstructure:"backoff"`
	MaxBackoff    time.Duration `mapstructure:"max_backoff"`
}

// DBConfig путь к файлу базы
type DBConfig struct {
	Path string `mapstructure:"path"`
}

// MetricsConfig адрес HTTP сервера метрик, пустой адрес отключает сервер
type MetricsConfig struct {
	Addr string `mapstructure:"addr"`
}

// LogConfig уровень и формат логов
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // text или json
}

// Server конфигурация портала
type Server struct {
	Server    ServerConfig    `mapstructure:"server"`
	DB        DBConfig        `mapstructure:"db"`
	Backup    BackupConfig    `mapstructure:"backup"`
	Auth      AuthConfig      `mapstructure:"auth"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Log       LogConfig       `mapstructure:"log"`
}

// ServerConfig адрес HTTP сервера
type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

// BackupConfig каталог резервных копий
type BackupConfig struct {
	Dir string `mapstructure:"dir"`
}

// AuthConfig JWT авторизация устройств. Пустой секрет отключает проверку.
type AuthConfig struct {
	JWTSecret string        `mapstructure:"jwt_secret"`
	TokenTTL  time.Duration `mapstructure:"token_ttl"`
}

// RateLimitConfig ограничение запросов с одного IP
type RateLimitConfig struct {
	Requests int           `mapstructure:"requests"`
	Window   time.Duration `mapstructure:"window"`
}

var (
	ErrInvalidLogFormat = errors.New("invalid log format")
	ErrInvalidLogLevel  = errors.New("invalid log level")
)

// NewViper создает viper с префиксом окружения и заменой точек в ключах
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// SetClientDefaults задает значения по умолчанию клиента
func SetClientDefaults(v *viper.Viper) {
	def := livesync.DefaultConfig()
	v.SetDefault("portal.url", "")
	v.SetDefault("portal.token", "")
	v.SetDefault("portal.timeout", 30*time.Second)
	v.SetDefault("live_sync.enabled", true)
	v.SetDefault("live_sync.interval", def.PollInterval)
	v.SetDefault("live_sync.auto_reconnect", def.AutoReconnect)
	v.SetDefault("live_sync.max_failures", def.MaxConsecutiveFailures)
	v.SetDefault("live_sync.backoff", def.Backoff)
	v.SetDefault("live_sync.max_backoff", def.MaxBackoff)
	v.SetDefault("db.path", "fieldsync.db")
	v.SetDefault("metrics.addr", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}

// SetServerDefaults задает значения по умолчанию портала
func SetServerDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", ":3000")
	v.SetDefault("db.path", "fieldsync-portal.db")
	v.SetDefault("backup.dir", "backups")
	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.token_ttl", 30*24*time.Hour)
	v.SetDefault("rate_limit.requests", 120)
	v.SetDefault("rate_limit.window", time.Minute)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}

// LoadClient читает конфигурацию клиента. configFile может быть пустым.
func LoadClient(v *viper.Viper, configFile string) (*Client, error) {
	SetClientDefaults(v)
	if err := readFile(v, configFile); err != nil {
		return nil, err
	}

	var cfg Client
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode client config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadServer читает конфигурацию портала. configFile может быть пустым.
func LoadServer(v *viper.Viper, configFile string) (*Server, error) {
	SetServerDefaults(v)
	if err := readFile(v, configFile); err != nil {
		return nil, err
	}

	var cfg Server
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode server config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func readFile(v *viper.Viper, configFile string) error {
	if configFile == "" {
		return nil
	}
	v.SetConfigFile(configFile)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file %s: %w", configFile, err)
	}
	return nil
}

// Scheduler возвращает конфигурацию планировщика
func (c LiveSyncConfig) Scheduler() livesync.Config {
	return livesync.Config{
		PollInterval:           c.Interval,
		RequestTimeout:         livesync.DefaultRequestTimeout,
		MaxBackoff:             c.MaxBackoff,
		MaxConsecutiveFailures: c.MaxFailures,
		Enabled:                c.Enabled,
		AutoReconnect:          c.AutoReconnect,
		Backoff:                c.Backoff,
	}
}

// Validate проверяет конфигурацию клиента
func (c *Client) Validate() error {
	if c.DB.Path == "" {
		return errors.New("db.path is required")
	}
	if err := c.LiveSync.Scheduler().Validate(); err != nil {
		return fmt.Errorf("live_sync: %w", err)
	}
	return c.Log.Validate()
}

// Validate проверяет конфигурацию портала
func (c *Server) Validate() error {
	if c.Server.Addr == "" {
		return errors.New("server.addr is required")
	}
	if c.DB.Path == "" {
		return errors.New("db.path is required")
	}
	if c.RateLimit.Requests < 0 || c.RateLimit.Window < 0 {
		return errors.New("rate_limit values must not be negative")
	}
	return c.Log.Validate()
}

// Validate проверяет уровень и формат логов
func (c LogConfig) Validate() error {
	if _, err := ParseLevel(c.Level); err != nil {
		return err
	}
	switch strings.ToLower(c.Format) {
	case "", "text", "json":
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogFormat, c.Format)
	}
}
