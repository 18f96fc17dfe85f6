package config

import (
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, an optional YAML file and
// environment variables.
//
// Order of precedence (low -> high):
//  1. defaults (Default())
//  2. file (YAML) if MATCH_CONFIG is set
//  3. env (prefix MATCH_, e.g. MATCH_SKILL_WEIGHT -> skill_weight)
func Load() (*Config, error) {
	k := koanf.New(".")

	if path := os.Getenv("MATCH_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, err
		}
	}

	// Preserve underscores so env keys map onto the koanf struct tags.
	envProvider := env.Provider("MATCH_", ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, "match_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, err
	}

	cfg := Default()
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, err
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
