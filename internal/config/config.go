package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config is the top-level lexpath configuration.
type Config struct {
	Join    Join    `mapstructure:"join"`
	Bench   Bench   `mapstructure:"bench"`
	Output  Output  `mapstructure:"output"`
	History History `mapstructure:"history"`
}

// Join defines the default arguments for the join and bench commands.
type Join struct {
	Dir  string `mapstructure:"dir"`
	File string `mapstructure:"file"`
}

// Bench defines the benchmark harness settings.
type Bench struct {
	Count       int64 `mapstructure:"count"`
	Rounds      int   `mapstructure:"rounds"`
	Parallelism int   `mapstructure:"parallelism"`
	Save        bool  `mapstructure:"save"`
}

// Output defines output preferences.
type Output struct {
	Color bool `mapstructure:"color"`
	Width int  `mapstructure:"width"`
}

// History defines history listing preferences.
type History struct {
	Limit int `mapstructure:"limit"`
}

// expandPath replaces a leading ~ with the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Load reads configuration from the given path (or the default location)
// and returns a Config with all defaults applied.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	// Set defaults.
	v.SetDefault("join.dir", DefaultJoin.Dir)
	v.SetDefault("join.file", DefaultJoin.File)
	v.SetDefault("bench.count", DefaultBench.Count)
	v.SetDefault("bench.rounds", DefaultBench.Rounds)
	v.SetDefault("bench.parallelism", DefaultBench.Parallelism)
	v.SetDefault("bench.save", DefaultBench.Save)
	v.SetDefault("output.color", DefaultOutput.Color)
	v.SetDefault("output.width", DefaultOutput.Width)
	v.SetDefault("history.limit", DefaultHistory.Limit)

	if cfgFile != "" {
		v.SetConfigFile(expandPath(cfgFile))
	} else {
		v.AddConfigPath(expandPath(DefaultConfigDir))
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	// Read config file if it exists; missing file is not an error.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			if !os.IsNotExist(err) {
				return nil, err
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// DBPath returns the full path to the SQLite database.
func DBPath() string {
	return filepath.Join(expandPath(DefaultConfigDir), DefaultDBName)
}

// ConfigDir returns the expanded configuration directory.
func ConfigDir() string {
	return expandPath(DefaultConfigDir)
}
