package config

import (
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// Load decodes a TOML file over cfg; keys absent from the file keep their current values
// Unknown keys are rejected so typos do not silently fall back to defaults
func Load(path string, cfg *Config) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return errors.Wrapf(err, "load config %s", path)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return &ConfigError{Field: keys[0], Reason: "unknown key in " + path + ": " + strings.Join(keys, ", ")}
	}
	return nil
}
