package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = ""

	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

type Config struct {
	App     AppConfig
	Catalog CatalogConfig
	Upload  UploadConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Catalog.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string   `envconfig:"PRODUCTFORM_APP_ENV" required:"true"`
	Port         string   `envconfig:"PRODUCTFORM_APP_PORT" required:"true"`
	LogLevel     string   `envconfig:"PRODUCTFORM_LOG_LEVEL" default:"info"`
	LogWarnStack bool     `envconfig:"PRODUCTFORM_LOG_WARN_STACK" default:"false"`
	CORSOrigins  []string `envconfig:"PRODUCTFORM_CORS_ORIGINS" default:"http://localhost:3000"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// CatalogConfig points at the remote catalog API that owns products and
// categories.
type CatalogConfig struct {
	BaseURL string        `envconfig:"PRODUCTFORM_CATALOG_BASE_URL" required:"true"`
	Timeout time.Duration `envconfig:"PRODUCTFORM_CATALOG_TIMEOUT" default:"10s"`
}

func (c CatalogConfig) validate() error {
	parsed, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid catalog base url: %w", err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("catalog base url must be absolute, got %q", c.BaseURL)
	}
	return nil
}

// UploadConfig carries the external image hosting endpoint and the client
// credential sent in the Authorization header.
type UploadConfig struct {
	Endpoint    string        `envconfig:"PRODUCTFORM_UPLOAD_ENDPOINT" default:"https://api.imgur.com/3/image"`
	ClientID    string        `envconfig:"PRODUCTFORM_UPLOAD_CLIENT_ID" required:"true"`
	Timeout     time.Duration `envconfig:"PRODUCTFORM_UPLOAD_TIMEOUT" default:"30s"`
	MaxUploadMB int           `envconfig:"PRODUCTFORM_MAX_UPLOAD_MB" default:"10"`
}

func (u UploadConfig) MaxUploadBytes() int64 {
	if u.MaxUploadMB <= 0 {
		return 10 << 20
	}
	return int64(u.MaxUploadMB) << 20
}
