package jobs

import (
	"fmt"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	orderGeneratorJob *OrderGeneratorJob
	intakeReviewJob   *IntakeReviewJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	orderGeneratorJob *OrderGeneratorJob,
	intakeReviewJob *IntakeReviewJob,
) *JobManager {
	return &JobManager{
		orderGeneratorJob: orderGeneratorJob,
		intakeReviewJob:   intakeReviewJob,
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.orderGeneratorJob.Start(); err != nil {
		return fmt.Errorf("failed to start order generator job: %w", err)
	}

	if err := jm.intakeReviewJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.orderGeneratorJob.Stop()
		return fmt.Errorf("failed to start intake review job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.intakeReviewJob.Stop()
	jm.orderGeneratorJob.Stop()
}
