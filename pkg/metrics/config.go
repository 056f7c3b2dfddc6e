package metrics

import (
	"github.com/pkg/errors"
	yaml "gopkg.in/yaml.v3"
)

const defaultServerPort uint16 = 9090

// ServerConfig holds the configuration of the metrics server.
type ServerConfig struct {
	// Port is the TCP port the metrics server listens on.
	// If zero, a default port is used.
	Port uint16 `yaml:"port"`
}

// LoadServerConfig parses the given YAML-formatted configuration string
// and returns the resulting metrics server configuration.
// An empty configuration string yields the default configuration.
func LoadServerConfig(configYAMLString string) (*ServerConfig, error) {
	config := &ServerConfig{}
	if configYAMLString != "" {
		if err := yaml.Unmarshal([]byte(configYAMLString), config); err != nil {
			return nil, errors.Wrap(err, "invalid metrics server configuration")
		}
	}
	if config.Port == 0 {
		config.Port = defaultServerPort
	}
	return config, nil
}
