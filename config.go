package main

import (
	"os"
	"slices"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"gopkg.in/yaml.v3"
)

type RunConfig struct {
	Workers          int      `yaml:"workers"`
	Count            int      `yaml:"count"`
	Duration         int      `yaml:"duration"`
	Seed             int      `yaml:"seed"`
	Modules          []string `yaml:"modules"`
	OutputFilePrefix string   `yaml:"output"`
	URI              string   `yaml:"uri"`
	Database         string   `yaml:"database"`
	Collection       string   `yaml:"collection"`
	DropCollection   bool     `yaml:"drop"`
	Verify           bool     `yaml:"verify"`
	LogLevel         string   `yaml:"log_level"`

	// RunID tags every record of one invocation. It is assigned at run time.
	RunID string `yaml:"-"`
}

func defaultConfig() RunConfig {
	return RunConfig{
		Workers:          4,
		Count:            10000,
		Seed:             42,
		Modules:          ModuleNames(),
		OutputFilePrefix: "processing_results",
		Database:         "processing",
		Collection:       "records",
		LogLevel:         "info",
	}
}

// loadConfig reads a YAML file over the defaults. Keys missing from the
// file keep their default values.
func loadConfig(path string) (RunConfig, error) {
	config := defaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return config, errors.Wrap(err, "read config")
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "parse config %s", path)
	}
	return config, nil
}

// withRunID returns c with a fresh RunID unless one is already set.
func (c RunConfig) withRunID() RunConfig {
	if c.RunID == "" {
		c.RunID = primitive.NewObjectID().Hex()
	}
	return c
}

func (c RunConfig) validate() error {
	if c.Workers < 1 {
		return errors.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	if c.Count < 0 {
		return errors.Errorf("count must not be negative, got %d", c.Count)
	}
	if c.Duration < 0 {
		return errors.Errorf("duration must not be negative, got %d", c.Duration)
	}
	if len(c.Modules) == 0 {
		return errors.New("no modules selected")
	}
	known := ModuleNames()
	for i, m := range c.Modules {
		if !slices.Contains(known, m) {
			return errors.Wrapf(ErrUnknownModule, "%q", m)
		}
		if slices.Contains(c.Modules[:i], m) {
			return errors.Errorf("module %q selected more than once", m)
		}
	}
	if c.Verify && c.URI == "" {
		return errors.New("verify requires a MongoDB uri")
	}
	return nil
}
