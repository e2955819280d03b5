package config

import (
	"errors"
	"fmt"
	"os"

	"sigs.k8s.io/yaml"
)

const (
	DefaultAddress = "127.0.0.1"
	DefaultStart   = 1
	DefaultEnd     = 65535
)

// Config holds the scan settings. Values come from Default, then an
// optional YAML file, then explicitly set command-line flags.
type Config struct {
	Address string `json:"address"`
	Start   int    `json:"start"`
	End     int    `json:"end"`
	Verbose bool   `json:"verbose"`
	// Output is an optional file name for the report, written under result/.
	Output string `json:"output"`
	// DialLimit caps sockets open at once; 0 derives it from the open-file limit.
	DialLimit int `json:"dialLimit"`
}

// Default returns the settings used when nothing else is given.
func Default() Config {
	return Config{
		Address: DefaultAddress,
		Start:   DefaultStart,
		End:     DefaultEnd,
	}
}

// Load reads a YAML file on top of Default. Keys missing from the file
// keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the port bounds: start must be > 0, end must be <= 65535
// and start must not exceed end. A reversed range is rejected rather than
// scanned as empty.
func (c Config) Validate() error {
	if c.Start <= 0 {
		return errors.New("start port must be > 0")
	}
	if c.End > 65535 {
		return errors.New("end port must be <= 65535")
	}
	if c.DialLimit < 0 {
		return errors.New("dial limit must be >= 0")
	}
	if c.Start > c.End {
		return fmt.Errorf("start port %d greater than end port %d", c.Start, c.End)
	}
	return nil
}
