package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig("")
	assert.Equal(t, "RepairTrack", cfg.System.Appid)
	assert.Equal(t, "postgres", cfg.Database.Type)
	assert.Equal(t, 2022, cfg.Web.Port)
	assert.False(t, cfg.Jobs.LowStockWatch)
}

func TestLoadConfigFromFile(t *testing.T) {
	content := []byte("web:\n  port: 8088\ndatabase:\n  type: sqlite\n  name: memory\n")
	cfile := filepath.Join(t.TempDir(), "repairtrack.yml")
	require.NoError(t, os.WriteFile(cfile, content, 0o644))

	cfg := LoadConfig(cfile)
	assert.Equal(t, 8088, cfg.Web.Port)
	assert.Equal(t, "sqlite", cfg.Database.Type)
	assert.Equal(t, "memory", cfg.Database.Name)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("REPAIRTRACK_WEB_PORT", "9100")
	t.Setenv("REPAIRTRACK_DB_TYPE", "sqlite")
	t.Setenv("REPAIRTRACK_JOBS_LOW_STOCK_WATCH", "true")

	cfg := LoadConfig("")
	assert.Equal(t, 9100, cfg.Web.Port)
	assert.Equal(t, "sqlite", cfg.Database.Type)
	assert.True(t, cfg.Jobs.LowStockWatch)
}
