// internal/config/load.go
package config

import (
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// Load reads a TOML file over the hero preset. An empty path returns the
// preset unchanged.
//
//	count = 130
//	pointer_mode = "repel"
//	interactive = false
func Load(path string) (Field, error) {
	conf := HeroField()
	if path == "" {
		return conf, nil
	}
	md, err := toml.DecodeFile(path, &conf)
	if err != nil {
		return Field{}, errors.Wrapf(err, "config: decode %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Field{}, errors.Wrapf(ErrInvalid, "%s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	if err := conf.Validate(); err != nil {
		return Field{}, errors.Wrapf(err, "config: %s", path)
	}
	return conf, nil
}
