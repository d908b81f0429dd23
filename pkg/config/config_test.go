package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_ValoresPorDefecto(t *testing.T) {
	cfg, err := fromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "erp-api", cfg.App.Name)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.Equal(t, "", cfg.Store.FixturesPath)
	assert.Equal(t, time.Duration(0), cfg.Store.Latency)
	assert.Equal(t, 30, cfg.Inventory.ExpiryWindowDays)
}

func TestFromViper_LeeValoresComoTexto(t *testing.T) {
	v := viper.New()
	v.Set("HTTP_PORT", "9090")
	v.Set("STORE_LATENCY_MS", "300")
	v.Set("EXPIRY_WINDOW_DAYS", "45")
	v.Set("FIXTURES_PATH", "/tmp/seed.json")

	cfg, err := fromViper(v)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, 300*time.Millisecond, cfg.Store.Latency)
	assert.Equal(t, 45, cfg.Inventory.ExpiryWindowDays)
	assert.Equal(t, "/tmp/seed.json", cfg.Store.FixturesPath)
}

func TestFromViper_RechazaLatenciaNegativa(t *testing.T) {
	v := viper.New()
	v.Set("STORE_LATENCY_MS", -5)

	_, err := fromViper(v)
	assert.Error(t, err)
}
