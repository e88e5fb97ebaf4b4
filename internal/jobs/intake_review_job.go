package jobs

import (
	"context"
	"errors"
	"log/slog"

	"atlas/internal/core/application/stations"
	"atlas/internal/core/application/usecases/commands"
	"atlas/internal/core/domain/model/kernel"
	"atlas/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

// IntakeReviewJob periodically releases pending orders to the picking queue
// as a demo intake operator. Like the order generator it only acts through
// the public surface: log in, review, log out, and skip the tick when a
// trainee holds the session slot.
type IntakeReviewJob struct {
	intake *stations.IntakeProcessor
	login  commands.LoginCommandHandler
	logout commands.LogoutCommandHandler

	// operatorID is the demo intake operator session the job acts as
	operatorID kernel.UUID

	cron   *cron.Cron
	logger *slog.Logger
}

// NewIntakeReviewJob creates a job that reviews pending orders every 10
// seconds as the given demo operator session.
func NewIntakeReviewJob(
	intake *stations.IntakeProcessor,
	login commands.LoginCommandHandler,
	logout commands.LogoutCommandHandler,
	operatorID kernel.UUID,
	logger *slog.Logger,
) *IntakeReviewJob {
	return &IntakeReviewJob{
		intake:     intake,
		login:      login,
		logout:     logout,
		operatorID: operatorID,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "intake_review_job"),
	}
}

// Start begins the intake review job.
func (j *IntakeReviewJob) Start() error {
	_, err := j.cron.AddFunc("*/10 * * * * *", func() {
		ctx := context.Background()

		if err := j.tick(ctx); err != nil {
			if !errors.Is(err, errs.ErrConflict) {
				j.logger.ErrorContext(ctx, "Intake review job failed", "error", err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Intake review job started (running every 10 seconds)")
	return nil
}

// Stop stops the intake review job.
func (j *IntakeReviewJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Intake review job stopped")
}

func (j *IntakeReviewJob) tick(ctx context.Context) error {
	loginCmd, err := commands.NewLoginCommand(j.operatorID)
	if err != nil {
		return err
	}
	if err := j.login.Handle(ctx, loginCmd); err != nil {
		return err
	}
	defer func() {
		cmd := commands.NewLogoutCommand()
		_ = j.logout.Handle(ctx, cmd)
	}()

	released, err := j.intake.ProcessPending(ctx)
	if err != nil {
		return err
	}
	if len(released) > 0 {
		j.logger.InfoContext(ctx, "Released pending orders to picking", "count", len(released))
	}
	return nil
}
