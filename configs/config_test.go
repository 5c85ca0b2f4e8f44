package configs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const baseYAML = `
app:
  name: storefront-api
  http_addr: ":3000"
  log_file: ./logs/app.log
http:
  read_timeout: 10s
  write_timeout: 30s
  idle_timeout: 60s
catalog:
  base_url: https://fakestoreapi.com
  timeout: 10s
provider:
  base_url: https://api.playground.klarna.com
  public_key: pk
  secret_key: sk
  confirmation_base_url: http://localhost:3000
  timeout: 10s
redis:
  addr: ""
  cache_ttl: 5m
`

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	return dir
}

func TestLoad(t *testing.T) {
	dir := writeConfig(t, "base.yaml", baseYAML)

	cfg, err := Load(dir, "dev")
	require.NoError(t, err)
	assert.Equal(t, ":3000", cfg.App.HTTPAddr)
	assert.Equal(t, "https://fakestoreapi.com", cfg.Catalog.BaseURL)
	assert.Equal(t, "pk", cfg.Provider.PublicKey)
	assert.Equal(t, 10*time.Second, cfg.Provider.Timeout)
	assert.Equal(t, 5*time.Minute, cfg.Redis.CacheTTL)
}

func TestLoadEnvOverlay(t *testing.T) {
	dir := writeConfig(t, "base.yaml", baseYAML)
	t.Setenv("STOREFRONT_PROVIDER__SECRET_KEY", "env-secret")
	t.Setenv("STOREFRONT_REDIS__ADDR", "redis:6379")

	cfg, err := Load(dir, "dev")
	require.NoError(t, err)
	assert.Equal(t, "env-secret", cfg.Provider.SecretKey)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
}

func TestLoadMissingBase(t *testing.T) {
	_, err := Load(t.TempDir(), "dev")
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	mutations := []struct {
		name   string
		mutate func(*Config)
	}{
		{"missing http_addr", func(c *Config) { c.App.HTTPAddr = "" }},
		{"missing catalog url", func(c *Config) { c.Catalog.BaseURL = "" }},
		{"missing provider url", func(c *Config) { c.Provider.BaseURL = "" }},
		{"missing public key", func(c *Config) { c.Provider.PublicKey = "" }},
		{"missing secret key", func(c *Config) { c.Provider.SecretKey = "" }},
		{"missing confirmation url", func(c *Config) { c.Provider.ConfirmationBaseURL = "" }},
	}

	dir := writeConfig(t, "base.yaml", baseYAML)
	valid, err := Load(dir, "dev")
	require.NoError(t, err)

	for _, tt := range mutations {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
