package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spetersoncode/sentibot/model"
	"gopkg.in/yaml.v3"
)

// RoutesFile is the YAML layout of SENTIBOT_ROUTES_FILE.
// Omitted entries and fields keep their current values.
type RoutesFile struct {
	Classifier *ModelEntry `yaml:"classifier"`
	Routes     struct {
		Positive *ModelEntry `yaml:"positive"`
		Negative *ModelEntry `yaml:"negative"`
		Neutral  *ModelEntry `yaml:"neutral"`
	} `yaml:"routes"`
}

// ModelEntry is one model setting in a routes file.
type ModelEntry struct {
	Model       string   `yaml:"model"`
	Temperature *float64 `yaml:"temperature"`
}

// ParseRoutesFile decodes a routes file. Unknown fields are rejected.
func ParseRoutesFile(r io.Reader) (*RoutesFile, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var rf RoutesFile
	if err := dec.Decode(&rf); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return &rf, nil
}

func (c *Config) applyRoutesFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open routes file: %w", err)
	}
	defer f.Close()

	rf, err := ParseRoutesFile(f)
	if err != nil {
		return fmt.Errorf("parse routes file %s: %w", path, err)
	}
	return c.ApplyRoutes(rf)
}

// ApplyRoutes overlays the entries of rf onto c.
func (c *Config) ApplyRoutes(rf *RoutesFile) error {
	var errs []error
	for _, e := range []struct {
		name    string
		entry   *ModelEntry
		setting *ModelSetting
	}{
		{"classifier", rf.Classifier, &c.Classifier},
		{"routes.positive", rf.Routes.Positive, &c.Positive},
		{"routes.negative", rf.Routes.Negative, &c.Negative},
		{"routes.neutral", rf.Routes.Neutral, &c.Neutral},
	} {
		if e.entry == nil {
			continue
		}
		if e.entry.Model != "" {
			m, err := model.Parse(e.entry.Model)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", e.name, err))
				continue
			}
			e.setting.Model = m
		}
		if e.entry.Temperature != nil {
			e.setting.Temperature = *e.entry.Temperature
		}
	}
	return errors.Join(errs...)
}
