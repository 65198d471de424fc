package scenario

import (
	"kanban_e2e/domain/entities"
	"kanban_e2e/domain/interfaces"

	"github.com/sirupsen/logrus"
)

// SaveArtifacts writes the run report, taking a screenshot first when the run failed
// and screenshots are enabled. It returns the report path.
func SaveArtifacts(report *entities.RunReport, session interfaces.Session, store interfaces.ReportStore, screenshotOnFailure bool, logger *logrus.Logger) (string, error) {
	if !report.Passed() && screenshotOnFailure && session != nil {
		path := store.ScreenshotPath(report.Scenario, report.StartedAt)
		if err := session.Screenshot(path); err != nil {
			logger.WithError(err).Warn("failed to take failure screenshot")
		} else {
			report.Screenshot = path
		}
	}
	return store.SaveReport(report)
}
