package config

import (
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"portfolio/internal/layout"
)

type Config struct {
	Env           string        `yaml:"env" env:"ENV" env-default:"local"`
	DSN           string        `yaml:"dsn" env:"DSN"`
	SessionSecret string        `yaml:"session_secret" env:"SESSION_SECRET" env-default:"change-me"`
	CatalogPath   string        `yaml:"catalog_path" env:"CATALOG_PATH"`
	HTTP          HTTPConfig    `yaml:"http"`
	Admin         AdminConfig   `yaml:"admin"`
	Redis         RedisConf     `yaml:"redis"`
	Gallery       GalleryConfig `yaml:"gallery"`
	Assets        AssetsConfig  `yaml:"assets"`
	Preload       PreloadConfig `yaml:"preload"`
	Mail          MailConfig    `yaml:"mail"`
}

type HTTPConfig struct {
	Host         string        `yaml:"host" env:"HTTP_HOST"`
	Port         string        `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
	ViewsDir     string        `yaml:"views_dir" env-default:"./views"`
	StaticDir    string        `yaml:"static_dir" env:"HTTP_STATIC_DIR"`
	ReadTimeout  time.Duration `yaml:"read_timeout" env-default:"10s"`
	WriteTimeout time.Duration `yaml:"write_timeout" env-default:"10s"`
}

type AdminConfig struct {
	Secret   string        `yaml:"secret" env:"ADMIN_SECRET"`
	TokenTTL time.Duration `yaml:"token_ttl" env-default:"1h"`
}

type RedisConf struct {
	RedisAddr     string `yaml:"redis_addr" env:"REDIS_ADDR"`
	RedisPassword string `yaml:"redis_password" env:"REDIS_PASSWORD"`
	RedisDB       int    `yaml:"redis_db" env-default:"0"`
}

type GalleryConfig struct {
	PageSize       int                `yaml:"page_size" env-default:"6"`
	ResizeDebounce time.Duration      `yaml:"resize_debounce" env-default:"150ms"`
	LayoutCacheTTL time.Duration      `yaml:"layout_cache_ttl" env-default:"5m"`
	Heights        layout.HeightTable `yaml:"heights"`
}

type AssetsConfig struct {
	BaseURL      string        `yaml:"base_url" env:"ASSETS_BASE_URL"`
	GCSBucket    string        `yaml:"gcs_bucket" env:"ASSETS_GCS_BUCKET"`
	SignedURLTTL time.Duration `yaml:"signed_url_ttl" env-default:"24h"`
}

type PreloadConfig struct {
	Concurrency int           `yaml:"concurrency" env-default:"4"`
	Timeout     time.Duration `yaml:"timeout" env-default:"10s"`
}

type MailConfig struct {
	Provider   string        `yaml:"provider" env:"MAIL_PROVIDER" env-default:"log"`
	Endpoint   string        `yaml:"endpoint" env-default:"https://api.emailjs.com/api/v1.0/email/send"`
	ServiceID  string        `yaml:"service_id" env:"MAIL_SERVICE_ID"`
	TemplateID string        `yaml:"template_id" env:"MAIL_TEMPLATE_ID"`
	PublicKey  string        `yaml:"public_key" env:"MAIL_PUBLIC_KEY"`
	PrivateKey string        `yaml:"private_key" env:"MAIL_PRIVATE_KEY"`
	Timeout    time.Duration `yaml:"timeout" env-default:"10s"`
}

const (
	MailProviderLog     = "log"
	MailProviderEmailJS = "emailjs"
)

// EnvLocal is the only environment allowed to run with DefaultSessionSecret.
const EnvLocal = "local"

const DefaultSessionSecret = "change-me"

func MustLoadPath(configPath string) *Config {
	cfg, err := LoadPath(configPath)
	if err != nil {
		panic(err)
	}

	return cfg
}

// LoadPath reads the YAML file at configPath, applies env overrides and
// defaults, and validates the result.
func LoadPath(configPath string) (*Config, error) {
	// check if file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("cannot read config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadEnv builds a config from environment variables and defaults only.
func LoadEnv() (*Config, error) {
	var cfg Config

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("cannot read config from env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate rejects settings the services cannot start with.
func (c *Config) Validate() error {
	if c.Env != EnvLocal && (c.SessionSecret == "" || c.SessionSecret == DefaultSessionSecret) {
		return fmt.Errorf("session_secret must be set outside the %s env", EnvLocal)
	}
	if err := c.Gallery.Heights.Validate(); err != nil {
		return fmt.Errorf("gallery.heights: %w", err)
	}
	if c.Gallery.PageSize < 1 {
		return fmt.Errorf("gallery.page_size must be positive, got %d", c.Gallery.PageSize)
	}
	if c.Preload.Concurrency < 1 {
		return fmt.Errorf("preload.concurrency must be positive, got %d", c.Preload.Concurrency)
	}

	switch c.Mail.Provider {
	case MailProviderLog:
	case MailProviderEmailJS:
		if c.Mail.ServiceID == "" || c.Mail.TemplateID == "" || c.Mail.PublicKey == "" {
			return fmt.Errorf("mail: emailjs needs service_id, template_id and public_key")
		}
	default:
		return fmt.Errorf("mail.provider: unknown provider %q", c.Mail.Provider)
	}

	return nil
}

// ConfigPath resolves the config path from the --config flag value or CONFIG_PATH.
func ConfigPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return os.Getenv("CONFIG_PATH")
}

// Load reads the file named by the flag or CONFIG_PATH, falling back to
// env and defaults when neither is set.
func Load(flagValue string) (*Config, error) {
	path := ConfigPath(flagValue)
	if path == "" {
		return LoadEnv()
	}
	return LoadPath(path)
}
