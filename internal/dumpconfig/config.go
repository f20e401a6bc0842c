// Package dumpconfig loads mp4dump's optional --config file. When a config
// file is given, its settings replace the --tree and --log-file flag values;
// log verbosity is set only by the --verbose flag.
package dumpconfig

import (
	"github.com/elastic/go-ucfg"
	"github.com/elastic/go-ucfg/yaml"
)

// Config wraps a ucfg.Config the way the rest of the stack's tooling does,
// rather than hand-rolling a YAML struct decode.
type Config struct {
	conf *ucfg.Config
}

// Load reads a YAML config file from path.
func Load(path string) (*Config, error) {
	c, err := yaml.NewConfigWithFile(path, ucfg.PathSep("."))
	if err != nil {
		return nil, err
	}
	return &Config{conf: c}, nil
}

// Settings is the decoded shape of a dump config file.
type Settings struct {
	Strict  bool   `config:"strict"`  // decoded but not acted on: mp4dump aborts on every parse error either way
	Tree    bool   `config:"tree"`    // print an indented box tree instead of JSON
	LogFile string `config:"log_file"`
}

// Unpack decodes the config into a Settings value.
func (c *Config) Unpack() (Settings, error) {
	var s Settings
	if err := c.conf.Unpack(&s); err != nil {
		return Settings{}, err
	}
	return s, nil
}
