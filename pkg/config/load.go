package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads the configuration document at path and returns it with
// defaults applied.
//
// Load does not validate: the returned Config may still violate format
// rules. Run Validate before handing it to any resource constructor.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, newError(errorCodeNotFound, fmt.Sprintf("configuration file %s does not exist", path), err)
		}
		return nil, newError(errorCodeNotFound, fmt.Sprintf("configuration file %s is not readable", path), err)
	}
	return Parse(data)
}

// Parse decodes a configuration document and applies defaults. Same
// contract as Load minus the file read.
func Parse(data []byte) (*Config, error) {
	if strings.TrimSpace(string(data)) == "" {
		return nil, newError(errorCodeEmpty, "configuration document is empty", nil)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, newError(errorCodeParse, "configuration document is not valid YAML", err)
	}
	if cfg == (Config{}) {
		return nil, newError(errorCodeEmpty, "configuration document contains no recognized fields", nil)
	}

	applyDefaults(&cfg)
	return &cfg, nil
}
