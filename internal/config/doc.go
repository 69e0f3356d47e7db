// Package config assembles the nutrikeep runtime configuration from three
// sources merged in priority order: environment variables, command-line
// flags, and an optional JSON configuration file. Later sources never
// overwrite values already set by earlier ones (mergo semantics), so
// environment variables win over flags, which win over the JSON file.
package config
