// Package config provides configuration loading and defaults for lexpath.
package config

// DefaultConfigDir is the default location for lexpath configuration.
const DefaultConfigDir = "~/.config/lexpath"

// DefaultDBName is the filename for the SQLite database of benchmark runs.
const DefaultDBName = "lexpath.db"

// DefaultConfigFile is the filename for the YAML config.
const DefaultConfigFile = "config.yaml"

// DefaultJoin holds the default join arguments, matching the tool's behavior
// when invoked with no positional arguments.
var DefaultJoin = Join{
	Dir:  ".",
	File: ".",
}

// DefaultBench holds the default benchmark harness settings. The count is
// the fixed per-round iteration total the harness has always used.
var DefaultBench = Bench{
	Count:       20_000_000,
	Rounds:      1,
	Parallelism: 1,
	Save:        true,
}

// DefaultOutput holds the default output preferences.
var DefaultOutput = Output{
	Color: true,
	Width: 80,
}

// DefaultHistory holds the default history listing settings.
var DefaultHistory = History{
	Limit: 10,
}
