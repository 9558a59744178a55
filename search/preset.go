package search

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tunepath-askeva/eram/pkg/metrics"
)

// Preset is a saved sourcing search, stored as YAML:
//
//	name: senior welders
//	jobId: 665f1c
//	mode: filters
//	pageSize: 20
//	filters:
//	  keywords: welder
//	  experience: [5, 20]
//	  skills: [tig, mig]
type Preset struct {
	Name     string  `yaml:"name"`
	JobID    string  `yaml:"jobId"`
	Mode     string  `yaml:"mode"`
	PageSize int     `yaml:"pageSize"`
	Filters  Filters `yaml:"filters"`
}

// LoadPreset reads a preset file. Ranges left out keep their defaults.
func LoadPreset(path string) (Preset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Preset{}, fmt.Errorf("read preset: %w", err)
	}

	return ParsePreset(raw)
}

func ParsePreset(raw []byte) (Preset, error) {
	preset := Preset{Filters: DefaultFilters()}

	if err := yaml.Unmarshal(raw, &preset); err != nil {
		return Preset{}, fmt.Errorf("parse preset: %w", err)
	}

	if _, err := ParseMode(preset.Mode); err != nil {
		return Preset{}, err
	}

	for name, r := range map[string]Range{
		"experience": preset.Filters.Experience,
		"salary":     preset.Filters.Salary,
		"ageRange":   preset.Filters.AgeRange,
	} {
		if r[0] > r[1] {
			return Preset{}, fmt.Errorf("preset %s: min %d above max %d", name, r[0], r[1])
		}
	}

	preset.JobID = strings.TrimSpace(preset.JobID)

	return preset, nil
}

func SavePreset(path string, preset Preset) error {
	raw, err := yaml.Marshal(preset)
	if err != nil {
		return fmt.Errorf("encode preset: %w", err)
	}

	return os.WriteFile(path, raw, 0o644)
}

// Session builds a session for the preset, with its filters applied or its
// match mode selected.
func (p Preset) Session(jobID string, collector *metrics.Collector) *Session {
	if p.JobID != "" {
		jobID = p.JobID
	}

	session := NewSession(jobID, p.PageSize, collector)

	mode, _ := ParseMode(p.Mode)
	if mode != ModeFilters {
		session.UseMatch(mode)

		return session
	}

	filters := p.Filters.clone()
	session.Set(func(f *Filters) { *f = filters })
	session.Apply()

	return session
}
