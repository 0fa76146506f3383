package config

import (
	"strings"

	"github.com/spf13/viper"
)

// DefaultRoot is the conventional location of the deployment tree.
const DefaultRoot = "/gem_sw"

// Config holds the settings shared by every command: where the deployment
// tree lives, which EPICS version and site to assume when an entity
// specification does not carry them, and name filters applied to reports.
type Config struct {
	Root         string   `mapstructure:"root"`
	EpicsVersion string   `mapstructure:"epics_version"`
	Site         string   `mapstructure:"site"`
	Exclude      []string `mapstructure:"exclude"`
}

// Load reads the configuration from the optional YAML file at configPath
// and from the environment (GEM_SW_ROOT, GEM_EPICS_RELEASE, GEM_SITE).
// An empty configPath skips the file entirely; flags are applied on top
// by the caller.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetDefault("root", DefaultRoot)
	_ = v.BindEnv("root", "GEM_SW_ROOT")
	_ = v.BindEnv("epics_version", "GEM_EPICS_RELEASE")
	_ = v.BindEnv("site", "GEM_SITE")

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	// Sites are stored lowercase in the tree (cp, mk).
	config.Site = strings.ToLower(config.Site)

	return &config, nil
}
