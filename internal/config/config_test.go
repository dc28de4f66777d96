package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "", cfg.CatalogPath)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "", cfg.LogFile)
	assert.Equal(t, 0, cfg.MaxWidth)
	assert.Equal(t, 0, cfg.MaxHeight)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("STOCKDESK_CATALOG", "/tmp/catalog.yml")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FILE", "/tmp/stockdesk.log")
	t.Setenv("STOCKDESK_MAX_WIDTH", "120")
	t.Setenv("STOCKDESK_MAX_HEIGHT", "40")

	cfg := Load()

	assert.Equal(t, "/tmp/catalog.yml", cfg.CatalogPath)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/tmp/stockdesk.log", cfg.LogFile)
	assert.Equal(t, 120, cfg.MaxWidth)
	assert.Equal(t, 40, cfg.MaxHeight)
}

func TestLoad_BadIntFallsBack(t *testing.T) {
	t.Setenv("STOCKDESK_MAX_WIDTH", "wide")

	cfg := Load()
	assert.Equal(t, 0, cfg.MaxWidth)
}
