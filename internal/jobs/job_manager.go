package jobs

import (
	"fmt"
	"log/slog"

	"amo/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	assetReportJob *AssetReportJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	reportHandler queries.AssetReportQueryHandler,
	reportLocations []string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		assetReportJob: NewAssetReportJob(reportHandler, reportLocations, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.assetReportJob.Start(); err != nil {
		return fmt.Errorf("failed to start asset report job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.assetReportJob.Stop()
}
