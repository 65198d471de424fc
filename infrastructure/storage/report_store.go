package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"kanban_e2e/domain/entities"
	"kanban_e2e/domain/interfaces"

	"github.com/pkg/errors"
)

const stampLayout = "20060102T150405.000"

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

type reportStore struct {
	dir string
}

// NewReportStore - creates a report store writing into dir
func NewReportStore(dir string) (interfaces.ReportStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "failed to create report directory %s", dir)
	}
	return &reportStore{dir: dir}, nil
}

// SaveReport - saves the run report as <scenario>-<started>.json
func (s *reportStore) SaveReport(report *entities.RunReport) (string, error) {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", errors.Wrap(err, "failed to encode report")
	}

	name := fmt.Sprintf("%s-%s.json", slug(report.Scenario), report.StartedAt.UTC().Format(stampLayout))
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", errors.Wrap(err, "failed to write report")
	}
	return path, nil
}

// LoadReport - loads a run report from file
func (s *reportStore) LoadReport(path string) (*entities.RunReport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read report")
	}

	var report entities.RunReport
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, errors.Wrapf(err, "failed to decode report %s", path)
	}
	return &report, nil
}

// ScreenshotPath - returns the failure screenshot path for a scenario run started at started
func (s *reportStore) ScreenshotPath(scenario string, started time.Time) string {
	name := fmt.Sprintf("%s-%s-failure.png", slug(scenario), started.UTC().Format(stampLayout))
	return filepath.Join(s.dir, name)
}

func slug(s string) string {
	out := strings.Trim(nonSlug.ReplaceAllString(strings.ToLower(s), "-"), "-")
	if out == "" {
		return "scenario"
	}
	return out
}
