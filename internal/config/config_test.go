package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	assert.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.NotEmpty(t, cfg.MySQL.DSN)
	assert.Equal(t, 2*time.Hour, cfg.Session.TTL)
	assert.Equal(t, 60*time.Second, cfg.Cache.ListingTTL)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadMissingFileFallsBackToDefaults(t *testing.T) {
	cfg, err := Load("does-not-exist.yaml")
	assert.NoError(t, err)
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
}
