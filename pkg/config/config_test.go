package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
[dataset]
dir = "/srv/food"
delimiter = ";"

[search]
menu_limit = 5
`)
	cfg := LoadConfig(path)

	assert.Equal(t, "/srv/food", cfg.Dataset.Dir)
	assert.Equal(t, "combined_food_data.csv", cfg.Dataset.File)
	assert.Equal(t, ';', cfg.DelimiterRune())
	assert.Equal(t, 5, cfg.Search.MenuLimit)
	assert.Equal(t, 10, cfg.Search.TopOthers)
	assert.True(t, cfg.CLI.ShowBanner)
}

func TestLoadConfig_PartialRecovery(t *testing.T) {
	// menu_limit has the wrong type, so typed decoding fails as a whole
	path := writeConfig(t, `
[dataset]
file = "foods.tsv"

[search]
menu_limit = "many"
top_others = 3

[cli]
show_banner = false
`)
	cfg := LoadConfig(path)

	assert.Equal(t, "foods.tsv", cfg.Dataset.File)
	assert.Equal(t, 15, cfg.Search.MenuLimit)
	assert.Equal(t, 3, cfg.Search.TopOthers)
	assert.False(t, cfg.CLI.ShowBanner)
}

func TestLoadConfig_Garbage(t *testing.T) {
	path := writeConfig(t, "this is [not toml")
	assert.Equal(t, DefaultConfig(), LoadConfig(path))
}

func TestLoadConfig_InvalidLimits(t *testing.T) {
	path := writeConfig(t, "[search]\nmenu_limit = 0\ntop_others = -2\n")
	cfg := LoadConfig(path)
	assert.Equal(t, 15, cfg.Search.MenuLimit)
	assert.Equal(t, 10, cfg.Search.TopOthers)
}

func TestLoadConfigWithPriority(t *testing.T) {
	custom := writeConfig(t, "[search]\nmenu_limit = 4\n")
	def := writeConfig(t, "[search]\nmenu_limit = 6\n")
	missing := filepath.Join(t.TempDir(), "nope.toml")

	cfg, used := LoadConfigWithPriority(custom, def)
	assert.Equal(t, custom, used)
	assert.Equal(t, 4, cfg.Search.MenuLimit)

	cfg, used = LoadConfigWithPriority(missing, def)
	assert.Equal(t, def, used)
	assert.Equal(t, 6, cfg.Search.MenuLimit)

	cfg, used = LoadConfigWithPriority("", missing)
	assert.Empty(t, used)
	assert.Equal(t, DefaultConfig(), cfg)

	_, used = LoadConfigWithPriority("", "")
	assert.Empty(t, used)
}

func TestDelimiterRune(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, ',', cfg.DelimiterRune())

	cfg.Dataset.Delimiter = "\t"
	assert.Equal(t, '\t', cfg.DelimiterRune())

	cfg.Dataset.Delimiter = ""
	assert.Equal(t, ',', cfg.DelimiterRune())
}
