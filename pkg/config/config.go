/*
Package config manages the optional TOML config for nutrisearch.

The file is only ever read. When it is absent or unreadable the built-in
defaults apply, and a file that fails to decode as a whole is salvaged
section by section.

	[dataset]
	dir = "dataset"
	file = "combined_food_data.csv"
	delimiter = ","

	[search]
	menu_limit = 15
	top_others = 10

	[cli]
	show_banner = true
*/
package config

import (
	"github.com/charmbracelet/log"
	"github.com/deitnotify/nutrisearch/internal/utils"
)

// FileName is the config file looked up in the user config dir.
const FileName = "config.toml"

// Config holds the entire config structure
type Config struct {
	Dataset DatasetConfig `toml:"dataset"`
	Search  SearchConfig  `toml:"search"`
	CLI     CliConfig     `toml:"cli"`
}

// DatasetConfig locates and describes the dataset file.
type DatasetConfig struct {
	Dir       string `toml:"dir"`
	File      string `toml:"file"`
	Delimiter string `toml:"delimiter"`
}

// SearchConfig holds the menu and profile limits.
type SearchConfig struct {
	MenuLimit int `toml:"menu_limit"`
	TopOthers int `toml:"top_others"`
}

// CliConfig holds interactive session options.
type CliConfig struct {
	ShowBanner bool `toml:"show_banner"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Dataset: DatasetConfig{
			Dir:       "dataset",
			File:      "combined_food_data.csv",
			Delimiter: ",",
		},
		Search: SearchConfig{
			MenuLimit: 15,
			TopOthers: 10,
		},
		CLI: CliConfig{
			ShowBanner: true,
		},
	}
}

// DelimiterRune returns the first rune of the configured delimiter,
// ',' when unset.
func (c *Config) DelimiterRune() rune {
	for _, r := range c.Dataset.Delimiter {
		return r
	}
	return ','
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from the -config flag
// 2. Default path in the user config dir, when the file exists
// 3. Builtin defaults
// It returns the path actually used, "" for builtin defaults.
func LoadConfigWithPriority(customPath, defaultPath string) (*Config, string) {
	if customPath != "" {
		if utils.FileExists(customPath) {
			log.Debugf("Loading config from custom path: %s", customPath)
			return LoadConfig(customPath), customPath
		}
		log.Warnf("Custom config file not found at %s. Trying default path...", customPath)
	}

	if defaultPath != "" && utils.FileExists(defaultPath) {
		log.Debugf("Loading config from default path: %s", defaultPath)
		return LoadConfig(defaultPath), defaultPath
	}

	log.Debug("No config file, using builtin defaults")
	return DefaultConfig(), ""
}

// LoadConfig loads from a TOML file. It never fails: unreadable files
// yield the defaults and undecodable ones are partially recovered.
func LoadConfig(path string) *Config {
	config := DefaultConfig()

	if err := utils.LoadTOMLFile(path, config); err != nil {
		return tryPartialParse(path)
	}
	config.sanitize()
	return config
}

// tryPartialParse salvages the sections of a TOML file that decode
func tryPartialParse(path string) *Config {
	config := DefaultConfig()

	raw, err := utils.ParseTOMLWithRecovery(path)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", path, err)
		return config
	}

	if section, ok := utils.ExtractSection(raw, "dataset"); ok {
		extractDatasetConfig(section, &config.Dataset)
	}
	if section, ok := utils.ExtractSection(raw, "search"); ok {
		extractSearchConfig(section, &config.Search)
	}
	if section, ok := utils.ExtractSection(raw, "cli"); ok {
		extractCliConfig(section, &config.CLI)
	}
	config.sanitize()
	return config
}

func extractDatasetConfig(data map[string]any, dataset *DatasetConfig) {
	if val, ok := utils.ExtractString(data, "dir"); ok {
		dataset.Dir = val
	}
	if val, ok := utils.ExtractString(data, "file"); ok {
		dataset.File = val
	}
	if val, ok := utils.ExtractString(data, "delimiter"); ok {
		dataset.Delimiter = val
	}
}

func extractSearchConfig(data map[string]any, search *SearchConfig) {
	if val, ok := utils.ExtractInt64(data, "menu_limit"); ok {
		search.MenuLimit = val
	}
	if val, ok := utils.ExtractInt64(data, "top_others"); ok {
		search.TopOthers = val
	}
}

func extractCliConfig(data map[string]any, cli *CliConfig) {
	if val, ok := utils.ExtractBool(data, "show_banner"); ok {
		cli.ShowBanner = val
	}
}

// sanitize replaces out of range values with defaults.
func (c *Config) sanitize() {
	def := DefaultConfig()
	if c.Dataset.Dir == "" {
		c.Dataset.Dir = def.Dataset.Dir
	}
	if c.Dataset.File == "" {
		c.Dataset.File = def.Dataset.File
	}
	if c.Dataset.Delimiter == "" {
		c.Dataset.Delimiter = def.Dataset.Delimiter
	}
	if c.Search.MenuLimit <= 0 {
		log.Warnf("Invalid menu_limit %d, using %d", c.Search.MenuLimit, def.Search.MenuLimit)
		c.Search.MenuLimit = def.Search.MenuLimit
	}
	if c.Search.TopOthers <= 0 {
		log.Warnf("Invalid top_others %d, using %d", c.Search.TopOthers, def.Search.TopOthers)
		c.Search.TopOthers = def.Search.TopOthers
	}
}
