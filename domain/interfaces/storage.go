package interfaces

import (
	"time"

	"kanban_e2e/domain/entities"
)

// ReportStore persists scenario run reports
type ReportStore interface {
	// SaveReport writes the report and returns the file it was written to
	SaveReport(report *entities.RunReport) (string, error)

	// LoadReport reads a report previously written by SaveReport
	LoadReport(path string) (*entities.RunReport, error)

	// ScreenshotPath returns where the failure screenshot of a run should go
	ScreenshotPath(scenario string, started time.Time) string
}
