package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "file", cfg.Store.Backend)
	assert.Equal(t, "data/hallbook.db", cfg.Store.SQLitePath)
	assert.Equal(t, "data/whatsapp", cfg.WhatsApp.DataDir)
	assert.Equal(t, time.Second, cfg.Support.ReplyDelay)
	assert.False(t, cfg.WhatsApp.Enabled)
}

func TestLoadConfig_Env(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("STORE_BACKEND", "SQLite")
	t.Setenv("DATA_DIR", "/var/lib/hallbook")
	t.Setenv("SUPPORT_REPLY_DELAY", "250ms")
	t.Setenv("REDIS_DB", "3")

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.Store.Backend)
	assert.Equal(t, "/var/lib/hallbook/hallbook.db", cfg.Store.SQLitePath)
	assert.Equal(t, 250*time.Millisecond, cfg.Support.ReplyDelay)
	assert.Equal(t, 3, cfg.Store.RedisDB)
}

func TestLoadConfig_DotEnvAndFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	require.NoError(t, os.WriteFile(".env", []byte("BRIDE_NAME=Priya\n"), 0644))
	cfgPath := filepath.Join(dir, "hallbook.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("HTTP_ADDR: \":9090\"\n"), 0644))
	t.Cleanup(func() { os.Unsetenv("BRIDE_NAME") })

	cfg, err := LoadConfig(cfgPath)
	require.NoError(t, err)

	assert.Equal(t, "Priya", cfg.Wedding.BrideName)
	assert.Equal(t, ":9090", cfg.HTTPAddr)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadConfig("does-not-exist.yaml")
	assert.Error(t, err)
}
