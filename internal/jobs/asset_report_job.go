package jobs

import (
	"context"
	"log/slog"

	"amo/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// AssetReportJob periodically logs the per-category asset report for each
// configured location. The log lines feed the ops dashboards; the HTTP report
// endpoint serves the same data on demand.
type AssetReportJob struct {
	handler   queries.AssetReportQueryHandler
	locations []string
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewAssetReportJob creates a job that logs the asset report every hour.
func NewAssetReportJob(handler queries.AssetReportQueryHandler, locations []string, logger *slog.Logger) *AssetReportJob {
	return &AssetReportJob{
		handler:   handler,
		locations: locations,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "asset_report_job"),
	}
}

// Start begins the asset report job, running at the top of every hour.
func (j *AssetReportJob) Start() error {
	_, err := j.cron.AddFunc("0 0 * * * *", func() {
		ctx := context.Background()

		for _, location := range j.locations {
			query, err := queries.NewAssetReportQuery(location)
			if err != nil {
				j.logger.ErrorContext(ctx, "Asset report job failed to build query",
					"location", location, "error", err)
				continue
			}

			report, err := j.handler.Handle(ctx, query)
			if err != nil {
				j.logger.ErrorContext(ctx, "Asset report job failed",
					"location", location, "error", err)
				continue
			}

			for _, line := range report {
				j.logger.InfoContext(ctx, "Asset report",
					"location", location,
					"category", line.CategoryName,
					"total", line.Total,
					"available", line.Available,
					"not_available", line.NotAvailable,
					"assigned", line.Assigned,
					"waiting_for_recycle", line.WaitingForRecycle,
					"recycled", line.Recycled,
				)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Asset report job started (running hourly)")
	return nil
}

// Stop stops the asset report job.
func (j *AssetReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Asset report job stopped")
}
