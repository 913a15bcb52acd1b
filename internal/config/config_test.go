package config

import (
	"os"
	"path/filepath"
	"testing"

	"pokedex/internal/pokeapi"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")

	v := NewViper()
	require.NoError(t, ReadFile(v, ""))
	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, pokeapi.DefaultBaseURL, cfg.API.BaseURL)
	assert.Equal(t, pokeapi.DefaultUserAgent, cfg.API.UserAgent)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "pokedex", cfg.Telemetry.ServiceName)
	assert.Empty(t, cfg.Telemetry.OTLPEndpoint)
}

func TestLoad_FileAndEnvPrecedence(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
api:
  base_url: http://file.example/api/v2/pokemon/
logging:
  level: debug
telemetry:
  otlp_endpoint: localhost:4318
`), 0o644))
	t.Setenv("POKEDEX_API_BASE_URL", "http://env.example/pokemon/")

	v := NewViper()
	require.NoError(t, ReadFile(v, path))
	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "http://env.example/pokemon/", cfg.API.BaseURL, "env wins over file")
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "localhost:4318", cfg.Telemetry.OTLPEndpoint)
}

func TestLoad_OTLPEndpointFromStandardEnv(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "collector:4318")

	cfg, err := Load(NewViper())
	require.NoError(t, err)
	assert.Equal(t, "collector:4318", cfg.Telemetry.OTLPEndpoint)
}

func TestReadFile_ExplicitMissingFileFails(t *testing.T) {
	err := ReadFile(NewViper(), filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr []string
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{
			name:    "relative base url",
			mutate:  func(c *Config) { c.API.BaseURL = "/api/v2/pokemon/" },
			wantErr: []string{"api.base_url"},
		},
		{
			name:    "ftp base url",
			mutate:  func(c *Config) { c.API.BaseURL = "ftp://pokeapi.co/" },
			wantErr: []string{"api.base_url"},
		},
		{
			name: "bad level and url",
			mutate: func(c *Config) {
				c.API.BaseURL = "::"
				c.Logging.Level = "chatty"
			},
			wantErr: []string{"api.base_url", "logging.level"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			errs := cfg.Validate()
			var fields []string
			for _, e := range errs {
				fields = append(fields, e.Field)
			}
			assert.Equal(t, tt.wantErr, fields)
		})
	}
}

func TestValidationErrors_Error(t *testing.T) {
	err := ValidationErrors{{Field: "api.base_url", Value: "x", Message: "bad"}}
	assert.Equal(t, "invalid configuration: api.base_url: bad (got x)", err.Error())
}

func TestConfigFile_UsesXDGConfigHome(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/cfg")
	assert.Equal(t, filepath.Join("/tmp/cfg", "pokedex", "config.yaml"), ConfigFile())
}
