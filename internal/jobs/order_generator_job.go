package jobs

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"

	"atlas/internal/core/application/usecases/commands"
	"atlas/internal/core/domain/model/catalog"
	"atlas/internal/core/domain/model/kernel"
	"atlas/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

// demoCustomers feed the generated training orders.
var demoCustomers = []string{
	"Maria Lopez",
	"Carlos Ruiz",
	"Ana Torres",
	"Luis Vega",
	"Sofia Marin",
}

// OrderGeneratorJob periodically creates a random training order so the
// stations always have work. It drives the system exclusively through the
// public commands: it logs the demo customer in, creates an order and logs
// out again. When a trainee holds the session slot the tick is skipped.
type OrderGeneratorJob struct {
	create  commands.CreateOrderCommandHandler
	login   commands.LoginCommandHandler
	logout  commands.LogoutCommandHandler
	catalog *catalog.Catalog

	// customerID is the demo customer session the job acts as
	customerID kernel.UUID

	cron   *cron.Cron
	logger *slog.Logger
}

// NewOrderGeneratorJob creates a job that generates an order every 15
// seconds as the given demo customer session.
func NewOrderGeneratorJob(
	create commands.CreateOrderCommandHandler,
	login commands.LoginCommandHandler,
	logout commands.LogoutCommandHandler,
	cat *catalog.Catalog,
	customerID kernel.UUID,
	logger *slog.Logger,
) *OrderGeneratorJob {
	return &OrderGeneratorJob{
		create:     create,
		login:      login,
		logout:     logout,
		catalog:    cat,
		customerID: customerID,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "order_generator_job"),
	}
}

// Start begins the order generator job.
func (j *OrderGeneratorJob) Start() error {
	_, err := j.cron.AddFunc("*/15 * * * * *", func() {
		ctx := context.Background()

		if err := j.tick(ctx); err != nil {
			// A held session slot is an expected scenario, not a failure
			if !errors.Is(err, errs.ErrConflict) {
				j.logger.ErrorContext(ctx, "Order generator job failed", "error", err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order generator job started (running every 15 seconds)")
	return nil
}

// Stop stops the order generator job.
func (j *OrderGeneratorJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order generator job stopped")
}

func (j *OrderGeneratorJob) tick(ctx context.Context) error {
	loginCmd, err := commands.NewLoginCommand(j.customerID)
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

	createCmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(),
		demoCustomers[rand.IntN(len(demoCustomers))], //nolint:gosec // it's ok
		j.randomLines(),
	)
	if err != nil {
		return err
	}
	return j.create.Handle(ctx, createCmd)
}

// randomLines draws one to three catalog products with small quantities.
func (j *OrderGeneratorJob) randomLines() []commands.OrderLine {
	products := j.catalog.Products()
	count := rand.IntN(3) + 1 //nolint:gosec // it's ok

	lines := make([]commands.OrderLine, 0, count)
	seen := make(map[string]bool, count)
	for len(lines) < count {
		p := products[rand.IntN(len(products))] //nolint:gosec // it's ok
		if seen[p.Name] {
			continue
		}
		seen[p.Name] = true
		lines = append(lines, commands.OrderLine{
			Product:  p.Name,
			Quantity: rand.IntN(5) + 1, //nolint:gosec // it's ok
		})
	}
	return lines
}
