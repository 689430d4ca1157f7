package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"cardSource": map[string]any{
			"baseUrl": "",
		},
		"redis": map[string]any{
			"cardTtl": "1m",
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "CARDSOURCE_BASEURL", want: "cardSource.baseUrl"},
		{envKey: "REDIS_CARDTTL", want: "redis.cardTtl"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalizeEnvKey(tt.envKey, existing))
		})
	}
}

func TestLoadWithEnv_EnvOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	yamlBody := `
env:
  serviceName: tarjeta
publicUrl: https://tarjeta.example
redis:
  enabled: false
  cardTtl: 1m
cardSource:
  type: database
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.yaml"), []byte(yamlBody), 0o600))

	pwd, err := os.Getwd()
	require.NoError(t, err)
	rel, err := filepath.Rel(pwd, dir)
	require.NoError(t, err)

	t.Setenv("REDIS_CARDTTL", "2m")
	t.Setenv("CARDSOURCE_TYPE", "remote")

	cfg, err := LoadWithEnv[Config]("test", rel)
	require.NoError(t, err)

	assert.Equal(t, "tarjeta", cfg.Env.ServiceName)
	assert.Equal(t, "https://tarjeta.example", cfg.PublicURL)
	require.NotNil(t, cfg.Redis)
	assert.Equal(t, 2*time.Minute, cfg.Redis.CardTTL)
	require.NotNil(t, cfg.CardSource)
	assert.Equal(t, "remote", cfg.CardSource.Type)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	_, err := LoadWithEnv[Config]("does-not-exist", t.TempDir())
	assert.Error(t, err)
}
