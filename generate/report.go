package generate

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// ReportFileName is the build report written beside the package tree.
const ReportFileName = "report.yml"

// Report records one generation run.
type Report struct {
	RunID     string          `yaml:"run_id"`
	StartedAt time.Time       `yaml:"started_at"`
	Duration  string          `yaml:"duration,omitempty"`
	Packages  []PackageReport `yaml:"packages"`
}

// PackageReport records one built package.
type PackageReport struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
	Triples int    `yaml:"triples"`
	Terms   int    `yaml:"terms"`
	Skipped int    `yaml:"skipped,omitempty"`
	Output  string `yaml:"output"`
}

// Save writes the report into dir.
func (r *Report) Save(dir string) error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, ReportFileName), data, 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// Load reads a report from dir.
func Load(dir string) (*Report, error) {
	data, err := os.ReadFile(filepath.Join(dir, ReportFileName))
	if err != nil {
		return nil, fmt.Errorf("read report: %w", err)
	}
	var r Report
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parse report: %w", err)
	}
	return &r, nil
}
