// Package jobs provides scheduled background tasks for the asset management
// system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. AssetReportJob - Runs hourly and logs the per-category asset report for
// each configured location.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(reportHandler, locations, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The report job logs query failures per location and continues with the
// remaining locations; a failure never stops the schedule.
package jobs
