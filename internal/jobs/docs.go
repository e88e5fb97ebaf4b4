// Package jobs provides scheduled background tasks for the training
// simulator.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to keep the stations supplied with work even when nobody is playing the
// customer or intake roles.
//
// # Available Jobs
//
// 1. OrderGeneratorJob - Runs every 15 seconds to create a random training order
// 2. IntakeReviewJob - Runs every 10 seconds to release pending orders to picking
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(orderGeneratorJob, intakeReviewJob)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Session Handling
//
// Both jobs act through the same login/logout commands a trainee uses, as a
// demo customer and a demo intake operator. At most one session is active
// system-wide, so a tick that finds the slot held by a trainee skips quietly
// instead of failing.
package jobs
