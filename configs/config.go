package configs

import (
	"fmt"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	App struct {
		Name     string `koanf:"name"`
		HTTPAddr string `koanf:"http_addr"`
		LogFile  string `koanf:"log_file"`
	} `koanf:"app"`

	HTTP struct {
		ReadTimeout  time.Duration `koanf:"read_timeout"`
		WriteTimeout time.Duration `koanf:"write_timeout"`
		IdleTimeout  time.Duration `koanf:"idle_timeout"`
	} `koanf:"http"`

	Catalog struct {
		BaseURL string        `koanf:"base_url"`
		Timeout time.Duration `koanf:"timeout"`
	} `koanf:"catalog"`

	Provider struct {
		BaseURL string `koanf:"base_url"`

		// Basic auth credentials issued by the payment provider.
		PublicKey string `koanf:"public_key"`
		SecretKey string `koanf:"secret_key"`

		// Public base URL of this service; the merchant confirmation
		// redirect is built from it.
		ConfirmationBaseURL string `koanf:"confirmation_base_url"`

		Timeout time.Duration `koanf:"timeout"`
	} `koanf:"provider"`

	Redis struct {
		Addr     string        `koanf:"addr"`
		Password string        `koanf:"password"`
		CacheTTL time.Duration `koanf:"cache_ttl"`
	} `koanf:"redis"`
}

func Load(pathDir, envName string) (Config, error) {
	k := koanf.New(".")
	// 1) base
	if err := k.Load(file.Provider(fmt.Sprintf("%s/base.yaml", pathDir)), yaml.Parser()); err != nil {
		return Config{}, fmt.Errorf("load base: %w", err)
	}

	// 2) env override (dev/staging/prod). Optional: allow missing for local runs.
	_ = k.Load(file.Provider(fmt.Sprintf("%s/%s.yaml", pathDir, envName)), yaml.Parser())

	// 3) environment variables override (prefix STOREFRONT_, nested with __)
	// e.g. STOREFRONT_PROVIDER__SECRET_KEY, STOREFRONT_REDIS__ADDR
	if err := k.Load(env.Provider("STOREFRONT_", ".", func(s string) string {
		s = strings.TrimPrefix(s, "STOREFRONT_")
		s = strings.ReplaceAll(s, "__", ".")
		return strings.ToLower(s)
	}), nil); err != nil {
		return Config{}, fmt.Errorf("env overlay: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.App.HTTPAddr == "" {
		return fmt.Errorf("app.http_addr required")
	}
	if c.Catalog.BaseURL == "" {
		return fmt.Errorf("catalog.base_url required")
	}
	if c.Provider.BaseURL == "" {
		return fmt.Errorf("provider.base_url required")
	}
	if c.Provider.PublicKey == "" || c.Provider.SecretKey == "" {
		return fmt.Errorf("provider.public_key and provider.secret_key required")
	}
	if c.Provider.ConfirmationBaseURL == "" {
		return fmt.Errorf("provider.confirmation_base_url required")
	}
	return nil
}
