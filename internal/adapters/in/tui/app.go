// Package tui is the terminal front end of the training simulator. It uses
// bubbletea, which follows The Elm Architecture: the App model holds all
// state, Update reacts to messages and View renders the state to a string.
//
// The board shows one column per lifecycle status plus the session roster.
// Number keys switch the active session through the same login and logout
// commands every other caller uses, and enter performs the active role's
// station action. The board itself never mutates an order directly.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"atlas/internal/core/application/stations"
	"atlas/internal/core/application/usecases/commands"
	"atlas/internal/core/application/usecases/queries"
	"atlas/internal/core/domain/model/catalog"
	"atlas/internal/core/domain/model/kernel"
	"atlas/internal/core/domain/model/order"
	"atlas/internal/core/domain/model/packing"
	"atlas/internal/core/domain/model/session"
)

const boardRefreshInterval = time.Second

// statusColumns is the board layout, left to right.
var statusColumns = []order.Status{
	order.Pending,
	order.IntakeReview,
	order.Picked,
	order.Packed,
	order.Shipped,
}

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	columnTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#5B8DEF"))

	columnStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444444")).
			Padding(0, 1)

	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			MarginTop(1)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#AAAAAA"))
)

// SessionDirectory exposes the registered session roster to the board.
type SessionDirectory interface {
	Sessions() []*session.UserSession
}

// Deps are the collaborators the board drives. All state flows through the
// command handlers and station processors; the board only renders.
type Deps struct {
	OrdersByStatus queries.GetOrdersByStatusQueryHandler
	OrderTotals    queries.GetOrderTotalsQueryHandler
	ActiveSession  queries.GetActiveSessionQueryHandler
	CreateOrder    commands.CreateOrderCommandHandler
	Login          commands.LoginCommandHandler
	Logout         commands.LogoutCommandHandler
	Directory      SessionDirectory
	Catalog        *catalog.Catalog
	Intake         *stations.IntakeProcessor
	Picking        *stations.PickingProcessor
	Packing        *stations.PackingProcessor
	Delivery       *stations.DeliveryProcessor
}

// refreshMsg carries one board snapshot.
type refreshMsg struct {
	columns map[order.Status][]queries.OrderSummaryResponse
	totals  queries.OrderTotalsResponse
	active  queries.ActiveSessionResponse
	err     error
}

// App is the board model. In bubbletea, this holds ALL the state.
type App struct {
	deps Deps

	columns   map[order.Status][]queries.OrderSummaryResponse
	totals    queries.OrderTotalsResponse
	active    queries.ActiveSessionResponse
	cart      []commands.OrderLine
	statusMsg string
	boardErr  string

	width  int
	height int
}

// NewApp creates the board model.
func NewApp(deps Deps) *App {
	return &App{
		deps:      deps,
		columns:   make(map[order.Status][]queries.OrderSummaryResponse),
		statusMsg: "1-5 take a role · 0 log out · enter work · q quit",
	}
}

// Init is called once when the program starts.
func (a *App) Init() tea.Cmd {
	return a.fetchSnapshot()
}

// Update is called when a message is received.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case refreshMsg:
		if msg.err != nil {
			a.boardErr = msg.err.Error()
		} else {
			a.boardErr = ""
			a.columns = msg.columns
			a.totals = msg.totals
			a.active = msg.active
		}
		return a, a.scheduleRefresh()

	case tea.KeyMsg:
		key := msg.String()
		switch key {
		case "ctrl+c", "q":
			return a, tea.Quit
		case "0":
			a.switchSession(nil)
			return a, a.fetchSnapshot()
		case "1", "2", "3", "4", "5":
			roster := a.deps.Directory.Sessions()
			idx := int(key[0] - '1')
			if idx < len(roster) {
				a.switchSession(roster[idx])
			}
			return a, a.fetchSnapshot()
		case "a", "b", "c", "d", "e", "f", "g", "h":
			a.addToCart(int(key[0] - 'a'))
			return a, nil
		case "x":
			a.cart = nil
			a.statusMsg = "Cart cleared"
			return a, nil
		case "enter":
			a.roleAction()
			return a, a.fetchSnapshot()
		case "r":
			return a, a.fetchSnapshot()
		}
	}

	return a, nil
}

// switchSession logs out whoever holds the slot and logs target in. A nil
// target just frees the slot.
func (a *App) switchSession(target *session.UserSession) {
	ctx := context.Background()

	logoutCmd := commands.NewLogoutCommand()
	if err := a.deps.Logout.Handle(ctx, logoutCmd); err != nil {
		a.statusMsg = fmt.Sprintf("Logout failed: %v", err)
		return
	}
	if target == nil {
		a.statusMsg = "Logged out"
		return
	}

	loginCmd, err := commands.NewLoginCommand(target.ID())
	if err != nil {
		a.statusMsg = fmt.Sprintf("Login failed: %v", err)
		return
	}
	if err := a.deps.Login.Handle(ctx, loginCmd); err != nil {
		a.statusMsg = fmt.Sprintf("Login failed: %v", err)
		return
	}
	a.statusMsg = fmt.Sprintf("Logged in as %s (%s)", target.DisplayName(), target.Role())
}

// addToCart bumps the cart line for the nth catalog product. Only the
// customer session builds a cart.
func (a *App) addToCart(idx int) {
	if !a.active.LoggedIn || a.active.Role != session.RoleCustomer {
		a.statusMsg = "Log in as the customer to build a cart"
		return
	}
	products := a.deps.Catalog.Products()
	if idx >= len(products) {
		return
	}

	name := products[idx].Name
	for i := range a.cart {
		if a.cart[i].Product == name {
			a.cart[i].Quantity++
			a.statusMsg = fmt.Sprintf("%s x%d in cart", name, a.cart[i].Quantity)
			return
		}
	}
	a.cart = append(a.cart, commands.OrderLine{Product: name, Quantity: 1})
	a.statusMsg = fmt.Sprintf("%s added to cart", name)
}

// roleAction performs the active role's station step.
func (a *App) roleAction() {
	if !a.active.LoggedIn {
		a.statusMsg = "Log in first (keys 1-5)"
		return
	}

	ctx := context.Background()
	switch a.active.Role {
	case session.RoleCustomer:
		a.submitCart(ctx)
	case session.RoleIntakeOperator:
		a.workIntake(ctx)
	case session.RolePicker:
		a.workPicking(ctx)
	case session.RolePacker:
		a.workPacking(ctx)
	case session.RoleDriver:
		a.workDelivery(ctx)
	default:
		a.statusMsg = fmt.Sprintf("No station action for role %s", a.active.Role)
	}
}

func (a *App) submitCart(ctx context.Context) {
	if len(a.cart) == 0 {
		a.statusMsg = "Cart is empty (keys a-h add products)"
		return
	}

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), a.active.DisplayName, a.cart)
	if err != nil {
		a.statusMsg = fmt.Sprintf("Order rejected: %v", err)
		return
	}
	if err := a.deps.CreateOrder.Handle(ctx, cmd); err != nil {
		a.statusMsg = fmt.Sprintf("Order rejected: %v", err)
		return
	}
	a.statusMsg = fmt.Sprintf("Order placed (%d line(s))", len(a.cart))
	a.cart = nil
}

func (a *App) workIntake(ctx context.Context) {
	released, err := a.deps.Intake.ProcessPending(ctx)
	if err != nil {
		a.statusMsg = fmt.Sprintf("Intake failed: %v", err)
		return
	}
	a.statusMsg = fmt.Sprintf("Released %d order(s) to picking", len(released))
}

// workPicking runs the oldest reviewed order through the whole picking flow
// with the recommended tool.
func (a *App) workPicking(ctx context.Context) {
	summary, ok := a.oldest(order.IntakeReview)
	if !ok {
		a.statusMsg = "No orders ready for picking"
		return
	}

	run, recommended, err := a.deps.Picking.Start(ctx, summary.ID)
	if err != nil {
		a.statusMsg = fmt.Sprintf("Picking failed: %v", err)
		return
	}
	if _, _, err := a.deps.Picking.SelectTool(ctx, summary.ID, recommended); err != nil {
		a.statusMsg = fmt.Sprintf("Picking failed: %v", err)
		return
	}
	for _, item := range run.Items() {
		if err := a.deps.Picking.MarkItemPicked(ctx, summary.ID, item.LineItemID()); err != nil {
			a.statusMsg = fmt.Sprintf("Picking failed: %v", err)
			return
		}
	}
	if err := a.deps.Picking.Complete(ctx, summary.ID); err != nil {
		a.statusMsg = fmt.Sprintf("Picking failed: %v", err)
		return
	}
	a.statusMsg = fmt.Sprintf("Picked order for %s with %s", summary.Customer, recommended.Label())
}

// workPacking boxes, packs and verifies the oldest picked order.
func (a *App) workPacking(ctx context.Context) {
	summary, ok := a.oldest(order.Picked)
	if !ok {
		a.statusMsg = "No orders ready for packing"
		return
	}

	run, err := a.deps.Packing.Start(ctx, summary.ID)
	if err != nil {
		a.statusMsg = fmt.Sprintf("Packing failed: %v", err)
		return
	}
	if err := a.deps.Packing.SelectPackaging(ctx, summary.ID, packing.PackagingBox); err != nil {
		a.statusMsg = fmt.Sprintf("Packing failed: %v", err)
		return
	}
	for _, item := range run.Items() {
		if err := a.deps.Packing.MarkItemPacked(ctx, summary.ID, item.LineItemID()); err != nil {
			a.statusMsg = fmt.Sprintf("Packing failed: %v", err)
			return
		}
		if err := a.deps.Packing.VerifyItem(ctx, summary.ID, item.LineItemID()); err != nil {
			a.statusMsg = fmt.Sprintf("Packing failed: %v", err)
			return
		}
	}
	if err := a.deps.Packing.Complete(ctx, summary.ID); err != nil {
		a.statusMsg = fmt.Sprintf("Packing failed: %v", err)
		return
	}
	a.statusMsg = fmt.Sprintf("Packed order for %s (est. %.1f kg)",
		summary.Customer, run.EstimatedWeight())
}

// workDelivery starts a run on the oldest packed order or advances the run
// already on the road, one stage per press.
func (a *App) workDelivery(ctx context.Context) {
	summary, ok := a.oldest(order.Packed)
	if !ok {
		a.statusMsg = "No orders ready for delivery"
		return
	}

	run, started := a.deps.Delivery.Run(summary.ID)
	if !started {
		run, err := a.deps.Delivery.Start(ctx, summary.ID)
		if err != nil {
			a.statusMsg = fmt.Sprintf("Delivery failed: %v", err)
			return
		}
		a.statusMsg = fmt.Sprintf("%s with %s to %s, ETA %s",
			run.Assignment().Carrier, run.Assignment().Vehicle,
			run.Assignment().Address, run.Assignment().Estimate)
		return
	}

	next, ok := run.Stage().Next()
	if !ok {
		a.statusMsg = "Run already delivered"
		return
	}
	if err := a.deps.Delivery.Advance(ctx, summary.ID, next); err != nil {
		a.statusMsg = fmt.Sprintf("Delivery failed: %v", err)
		return
	}
	a.statusMsg = fmt.Sprintf("Delivery %s, %s on the road",
		next, run.ElapsedDisplay(time.Now()))
}

// oldest returns the first summary of the given status from the last
// snapshot. Listings preserve creation order, so the first entry is the
// oldest.
func (a *App) oldest(status order.Status) (queries.OrderSummaryResponse, bool) {
	summaries := a.columns[status]
	if len(summaries) == 0 {
		return queries.OrderSummaryResponse{}, false
	}
	return summaries[0], true
}

// View renders the current state to a string.
func (a *App) View() string {
	width := a.width
	if width <= 0 {
		width = 120
	}
	columnWidth := max(18, width/len(statusColumns)-4)

	header := headerStyle.Render(fmt.Sprintf(
		"◆ ATLAS · WAREHOUSE TRAINING BOARD · %d order(s) · $%.2f",
		a.totals.Count, a.totals.Revenue))

	rendered := make([]string, 0, len(statusColumns))
	for _, status := range statusColumns {
		rendered = append(rendered, a.renderColumn(status, columnWidth))
	}
	body := lipgloss.JoinHorizontal(lipgloss.Top, rendered...)

	sections := []string{header, body, a.renderRoster()}
	if cart := a.renderCart(); cart != "" {
		sections = append(sections, cart)
	}
	if a.boardErr != "" {
		sections = append(sections, dimStyle.Render(fmt.Sprintf("⚠ %s", a.boardErr)))
	}
	sections = append(sections, footerStyle.Render(a.statusMsg))
	return strings.Join(sections, "\n")
}

func (a *App) renderColumn(status order.Status, width int) string {
	summaries := a.columns[status]
	title := columnTitleStyle.Render(
		fmt.Sprintf("%s (%d)", strings.ToUpper(status.String()), len(summaries)))

	var rows []string
	for _, summary := range summaries {
		rows = append(rows, fmt.Sprintf("%s\n%d item(s) · $%.2f",
			summary.Customer, summary.ItemCount, summary.Total))
	}
	body := dimStyle.Render("empty")
	if len(rows) > 0 {
		body = strings.Join(rows, "\n\n")
	}

	content := lipgloss.JoinVertical(lipgloss.Left, title, body)
	return columnStyle.Width(width).Render(content)
}

func (a *App) renderRoster() string {
	var parts []string
	for i, s := range a.deps.Directory.Sessions() {
		label := fmt.Sprintf("%d %s·%s", i+1, s.DisplayName(), s.Role())
		if a.active.LoggedIn && a.active.ID.IsEqual(s.ID()) {
			label = lipgloss.NewStyle().Bold(true).Render("▶ " + label)
		}
		parts = append(parts, label)
	}
	if len(parts) == 0 {
		return dimStyle.Render("No sessions registered")
	}
	return dimStyle.Render(strings.Join(parts, "    "))
}

// renderCart shows the in-progress cart for the customer session, with the
// a-h key hints taken from catalog order.
func (a *App) renderCart() string {
	if !a.active.LoggedIn || a.active.Role != session.RoleCustomer {
		return ""
	}

	var lines []string
	for _, line := range a.cart {
		lines = append(lines, fmt.Sprintf("%s x%d", line.Product, line.Quantity))
	}
	cart := "empty"
	if len(lines) > 0 {
		cart = strings.Join(lines, ", ")
	}

	var hints []string
	for i, product := range a.deps.Catalog.Products() {
		if i >= 8 {
			break
		}
		hints = append(hints, fmt.Sprintf("%c %s", 'a'+i, product.Name))
	}
	return dimStyle.Render(fmt.Sprintf("Cart: %s\n%s · x clear · enter order",
		cart, strings.Join(hints, " · ")))
}

func (a *App) fetchSnapshot() tea.Cmd {
	return func() tea.Msg {
		return a.buildSnapshot()
	}
}

func (a *App) scheduleRefresh() tea.Cmd {
	return tea.Tick(boardRefreshInterval, func(time.Time) tea.Msg {
		return a.buildSnapshot()
	})
}

func (a *App) buildSnapshot() refreshMsg {
	ctx := context.Background()

	columns := make(map[order.Status][]queries.OrderSummaryResponse, len(statusColumns))
	for _, status := range statusColumns {
		query, err := queries.NewGetOrdersByStatusQuery(status)
		if err != nil {
			return refreshMsg{err: err}
		}
		summaries, err := a.deps.OrdersByStatus.Handle(ctx, query)
		if err != nil {
			return refreshMsg{err: err}
		}
		columns[status] = summaries
	}

	totals, err := a.deps.OrderTotals.Handle(ctx, queries.NewGetOrderTotalsQuery())
	if err != nil {
		return refreshMsg{err: err}
	}

	active, err := a.deps.ActiveSession.Handle(ctx, queries.NewGetActiveSessionQuery())
	if err != nil {
		return refreshMsg{err: err}
	}

	return refreshMsg{columns: columns, totals: totals, active: active}
}
