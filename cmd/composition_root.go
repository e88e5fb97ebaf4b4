package cmd

import (
	"log/slog"

	"github.com/labstack/gommon/log"

	"atlas/internal/adapters/in/tui"
	"atlas/internal/adapters/out/memory"
	"atlas/internal/core/application/sessions"
	"atlas/internal/core/application/stations"
	"atlas/internal/core/application/usecases/commands"
	"atlas/internal/core/application/usecases/queries"
	"atlas/internal/core/domain/model/catalog"
	"atlas/internal/core/domain/model/session"
	"atlas/internal/core/domain/services"
	"atlas/internal/jobs"
)

type CompositionRoot struct {
	store          *memory.OrderStore
	catalog        *catalog.Catalog
	sessionManager *sessions.Manager
	recommender    services.ToolRecommender

	intake   *stations.IntakeProcessor
	picking  *stations.PickingProcessor
	packing  *stations.PackingProcessor
	delivery *stations.DeliveryProcessor

	demoCustomer *session.UserSession
	demoOperator *session.UserSession
}

// NewCompositionRoot wires the whole simulator: the in-memory order store,
// the product catalog, one registered session per role and the four station
// processors. Processors hold per-order run state, so they are created once
// here and shared between the board and the jobs.
func NewCompositionRoot(_ Config) CompositionRoot {
	store := memory.NewOrderStore()
	manager := sessions.NewManager()

	demoCustomer := registerSession(manager, "Maria Lopez", session.RoleCustomer)
	demoOperator := registerSession(manager, "Carlos Ruiz", session.RoleIntakeOperator)
	registerSession(manager, "Ana Torres", session.RolePicker)
	registerSession(manager, "Luis Vega", session.RolePacker)
	registerSession(manager, "Sofia Marin", session.RoleDriver)

	cat := catalog.Default()
	recommender := services.NewToolRecommender()

	return CompositionRoot{
		store:          store,
		catalog:        cat,
		sessionManager: manager,
		recommender:    recommender,
		intake:         stations.NewIntakeProcessor(store, cat, manager),
		picking:        stations.NewPickingProcessor(store, manager, recommender),
		packing:        stations.NewPackingProcessor(store, manager),
		delivery:       stations.NewDeliveryProcessor(store, manager),
		demoCustomer:   demoCustomer,
		demoOperator:   demoOperator,
	}
}

func registerSession(manager *sessions.Manager, displayName string, role session.Role) *session.UserSession {
	registered, err := manager.Register(displayName, role)
	if err != nil {
		log.Fatalf("Error registering session %s: %v", displayName, err)
	}
	return registered
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.store, c.catalog, c.sessionManager)
}

func (c *CompositionRoot) CreateTransitionOrderCommandHandler() commands.TransitionOrderCommandHandler {
	return commands.NewTransitionOrderCommandHandler(c.store)
}

func (c *CompositionRoot) CreateAssignWorkerCommandHandler() commands.AssignWorkerCommandHandler {
	return commands.NewAssignWorkerCommandHandler(c.store)
}

func (c *CompositionRoot) CreateLoginCommandHandler() commands.LoginCommandHandler {
	return commands.NewLoginCommandHandler(c.sessionManager)
}

func (c *CompositionRoot) CreateLogoutCommandHandler() commands.LogoutCommandHandler {
	return commands.NewLogoutCommandHandler(c.sessionManager)
}

func (c *CompositionRoot) CreateGetOrdersByStatusQueryHandler() queries.GetOrdersByStatusQueryHandler {
	return queries.NewGetOrdersByStatusQueryHandler(c.store)
}

func (c *CompositionRoot) CreateGetOrderTotalsQueryHandler() queries.GetOrderTotalsQueryHandler {
	return queries.NewGetOrderTotalsQueryHandler(c.store)
}

func (c *CompositionRoot) CreateGetActiveSessionQueryHandler() queries.GetActiveSessionQueryHandler {
	return queries.NewGetActiveSessionQueryHandler(c.sessionManager)
}

func (c *CompositionRoot) IntakeProcessor() *stations.IntakeProcessor {
	return c.intake
}

func (c *CompositionRoot) PickingProcessor() *stations.PickingProcessor {
	return c.picking
}

func (c *CompositionRoot) PackingProcessor() *stations.PackingProcessor {
	return c.packing
}

func (c *CompositionRoot) DeliveryProcessor() *stations.DeliveryProcessor {
	return c.delivery
}

func (c *CompositionRoot) CreateBoard() *tui.App {
	return tui.NewApp(tui.Deps{
		OrdersByStatus: c.CreateGetOrdersByStatusQueryHandler(),
		OrderTotals:    c.CreateGetOrderTotalsQueryHandler(),
		ActiveSession:  c.CreateGetActiveSessionQueryHandler(),
		CreateOrder:    c.CreateCreateOrderCommandHandler(),
		Login:          c.CreateLoginCommandHandler(),
		Logout:         c.CreateLogoutCommandHandler(),
		Directory:      c.sessionManager,
		Catalog:        c.catalog,
		Intake:         c.intake,
		Picking:        c.picking,
		Packing:        c.packing,
		Delivery:       c.delivery,
	})
}

func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	orderGenerator := jobs.NewOrderGeneratorJob(
		c.CreateCreateOrderCommandHandler(),
		c.CreateLoginCommandHandler(),
		c.CreateLogoutCommandHandler(),
		c.catalog,
		c.demoCustomer.ID(),
		logger,
	)
	intakeReview := jobs.NewIntakeReviewJob(
		c.intake,
		c.CreateLoginCommandHandler(),
		c.CreateLogoutCommandHandler(),
		c.demoOperator.ID(),
		logger,
	)
	return jobs.NewJobManager(orderGenerator, intakeReview)
}
