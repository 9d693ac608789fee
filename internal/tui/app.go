// Package tui provides the interactive Bubble Tea simulation session: enter
// balances, pick a plan, read the results, tweak the budget, repeat.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	"dburn/internal/cli"
	"dburn/internal/config"
	"dburn/internal/engine"
	"dburn/internal/store"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

type phase int

const (
	phasePlan phase = iota
	phaseResults
)

var (
	titleStyle = lipgloss.NewStyle().Foreground(cli.ColorAccent).Bold(true)
	labelStyle = lipgloss.NewStyle().Foreground(cli.ColorTextMuted)
	valueStyle = lipgloss.NewStyle().Foreground(cli.ColorText)
	goodStyle  = lipgloss.NewStyle().Foreground(cli.ColorGreen)
	badStyle   = lipgloss.NewStyle().Foreground(cli.ColorRed)
	errStyle   = lipgloss.NewStyle().Foreground(cli.ColorOrange)
)

// App is the root Bubble Tea model.
type App struct {
	cfg     config.Config
	dataDir string

	// accounts holds the working set; balances are replaced by the form on
	// every run.
	accounts []engine.Account

	phase phase
	form  *huh.Form
	vals  planValues

	// Results state
	strategy engine.Strategy
	blocks   []string
	runErr   error
	customIn textinput.Model

	width  int
	height int
}

// NewApp builds the session over the saved accounts.
func NewApp(cfg config.Config, dataDir string, accounts []engine.Account) App {
	ti := textinput.New()
	ti.Placeholder = "another budget, e.g. 900"
	ti.Prompt = "$ "
	ti.CharLimit = 12
	ti.Width = 24

	a := App{
		cfg:      cfg,
		dataDir:  dataDir,
		accounts: accounts,
		customIn: ti,
	}
	a.vals = newPlanValues(accounts, cfg.General.DefaultStrategy, cfg.General.DefaultBudgets)
	a.form = buildPlanForm(accounts, &a.vals)
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return a.form.Init()
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		if a.phase == phaseResults {
			return a.updateResults(msg)
		}
	}

	if a.phase == phasePlan {
		return a.updatePlanForm(msg)
	}

	var cmd tea.Cmd
	a.customIn, cmd = a.customIn.Update(msg)
	return a, cmd
}

func (a App) updatePlanForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.form = f
	}

	if a.form.State == huh.StateCompleted {
		a.runPlan()
		a.phase = phaseResults
		a.customIn.Reset()
		return a, a.customIn.Focus()
	}

	if a.form.State == huh.StateAborted {
		return a, tea.Quit
	}

	return a, cmd
}

func (a App) updateResults(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return a, tea.Quit

	case "e":
		// Back to the form, keeping the entered values.
		a.phase = phasePlan
		a.form = buildPlanForm(a.accounts, &a.vals)
		return a, a.form.Init()

	case "enter":
		raw := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(a.customIn.Value()), "$"))
		if raw == "" {
			return a, nil
		}
		budget, err := strconv.ParseFloat(raw, 64)
		if err != nil || budget <= 0 {
			a.runErr = fmt.Errorf("%q is not a positive amount", raw)
			return a, nil
		}
		a.runErr = nil
		a.blocks = append(a.blocks, a.simulateOne(budget))
		a.customIn.Reset()
		return a, nil
	}

	var cmd tea.Cmd
	a.customIn, cmd = a.customIn.Update(msg)
	return a, cmd
}

// runPlan applies the completed form: save balances wholesale, apply
// one-time payments, then simulate every requested budget.
func (a *App) runPlan() {
	a.blocks = nil
	a.runErr = nil

	for i := range a.accounts {
		a.accounts[i].Balance = parseBalance(a.vals.balances[i])
	}

	// Auto-save on run: the balance file always mirrors the latest entry.
	if err := store.SaveAccountBalances(a.dataDir, a.accounts); err != nil {
		a.runErr = err
	}

	payments, err := parsePayments(a.vals.payments)
	if err != nil {
		a.runErr = err
		return
	}
	for name, amt := range payments {
		if err := engine.ApplyOneTimePayment(a.accounts, name, amt); err != nil {
			a.runErr = err
			return
		}
	}

	strat, err := engine.ParseStrategy(a.vals.strategy)
	if err != nil {
		a.runErr = err
		return
	}
	a.strategy = strat

	budgets, err := parseBudgets(a.vals.budgets)
	if err != nil {
		a.runErr = err
		return
	}
	for _, budget := range budgets {
		a.blocks = append(a.blocks, a.simulateOne(budget))
	}
}

// simulateOne runs a single budget and returns its rendered block. Runs are
// logged to history best-effort.
func (a *App) simulateOne(budget float64) string {
	opts := engine.Options{
		MaxMonths: a.cfg.Simulation.MaxMonths,
		Epsilon:   a.cfg.Simulation.Epsilon,
	}

	res, err := engine.SimulateBudget(a.accounts, budget, a.strategy, opts)
	if err != nil {
		return errStyle.Render(fmt.Sprintf("  %s/mo: %s", cli.FormatMoney(budget), err))
	}

	principal := engine.TotalBalance(a.accounts)
	a.logRun(budget, principal, res)

	header := titleStyle.Render(fmt.Sprintf("  %s/mo", cli.FormatMoney(budget)))

	if !res.PaidOff {
		return fmt.Sprintf("%s\n%s",
			header,
			badStyle.Render(fmt.Sprintf("    Not paid off: %s", res.Reason)))
	}

	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n")
	fmt.Fprintf(&b, "    %s %s\n",
		labelStyle.Render("Months to payoff:"),
		valueStyle.Render(cli.FormatMonths(res.Months)))
	fmt.Fprintf(&b, "    %s %s\n",
		labelStyle.Render("Total interest:  "),
		valueStyle.Render(cli.FormatMoney(res.TotalInterest)))
	fmt.Fprintf(&b, "    %s %s\n",
		labelStyle.Render("Total paid:      "),
		goodStyle.Render(cli.FormatMoney(principal+res.TotalInterest)))

	balances := make([]float64, 0, len(res.History))
	for _, m := range res.History {
		balances = append(balances, m.TotalBalance)
	}
	if len(balances) > 1 {
		fmt.Fprintf(&b, "    %s %s", labelStyle.Render("Burndown:"), cli.RenderSparkline(balances))
	}

	return b.String()
}

func (a *App) logRun(budget, principal float64, res engine.Result) {
	h, err := store.OpenHistory(store.HistoryPath(a.dataDir))
	if err != nil {
		return
	}
	defer func() { _ = h.Close() }()

	totalPaid := 0.0
	if res.PaidOff {
		totalPaid = principal + res.TotalInterest
	}
	_, _ = h.SaveRun(store.Run{
		Kind:          store.RunKindBudget,
		Strategy:      a.strategy.String(),
		MonthlyBudget: budget,
		PaidOff:       res.PaidOff,
		Months:        res.Months,
		TotalInterest: res.TotalInterest,
		TotalPaid:     totalPaid,
		Reason:        res.Reason,
	}, a.accounts)
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.phase == phasePlan {
		return a.form.View()
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(titleStyle.Render(fmt.Sprintf("  Payoff results — %s", a.strategy)))
	b.WriteString("\n\n")

	for _, block := range a.blocks {
		b.WriteString(block)
		b.WriteString("\n\n")
	}

	if a.runErr != nil {
		b.WriteString(errStyle.Render(fmt.Sprintf("  %s", a.runErr)))
		b.WriteString("\n\n")
	}

	b.WriteString("  ")
	b.WriteString(a.customIn.View())
	b.WriteString("\n\n")
	b.WriteString(labelStyle.Render("  enter run another budget · e edit balances · q quit"))

	return b.String()
}
