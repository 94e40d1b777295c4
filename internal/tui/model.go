package tui

import (
	"context"
	"time"

	"github.com/currencydash/anchor/internal/education"
	"github.com/currencydash/anchor/internal/model"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Backend is the narrow client contract the dashboard consumes. The three
// pipelines behind it are independent; the dashboard never assumes shared
// state between them.
type Backend interface {
	CheckHealth(ctx context.Context) model.HealthReport
	CheckLiveness(ctx context.Context) model.HealthReport
	CheckReadiness(ctx context.Context) model.HealthReport
	FetchStats(ctx context.Context) (model.StatsSnapshot, error)
	RequestAnalysis(ctx context.Context, marketData string) (model.AnalysisOutcome, error)
}

// Check targets for the health pipeline family.
const (
	checkHealth = "health"
	checkLive   = "live"
	checkReady  = "ready"
)

// CheckState tracks one health-family pipeline slot. Seq is the request
// token: a completing fetch carrying a stale token is discarded, so the
// latest completed response always wins.
type CheckState struct {
	Busy   bool
	Seq    int
	Report *model.HealthReport
	At     time.Time
}

// StatsState tracks the stats pipeline slot.
type StatsState struct {
	Busy     bool
	Seq      int
	Snapshot *model.StatsSnapshot
	Err      string
	At       time.Time
}

// AnalysisState tracks the analysis pipeline slot.
type AnalysisState struct {
	Busy    bool
	Seq     int
	Outcome *model.AnalysisOutcome
	At      time.Time
}

// ViewState is one dashboard view (tab) composed of decks.
type ViewState struct {
	ID            string
	Title         string
	Decks         []Deck
	ActiveDeckIdx int
}

// CheckResultMsg carries one finished health-family request back to its slot.
type CheckResultMsg struct {
	Target string
	Seq    int
	Report model.HealthReport
}

// StatsResultMsg carries one finished stats request.
type StatsResultMsg struct {
	Seq      int
	Snapshot model.StatsSnapshot
	Err      error
}

// AnalysisResultMsg carries one finished analysis request.
type AnalysisResultMsg struct {
	Seq     int
	Outcome model.AnalysisOutcome
}

// SpinnerTickMsg triggers a re-render while any pipeline is in flight.
type SpinnerTickMsg struct{}

// DashboardModel is the main TUI model.
type DashboardModel struct {
	backend Backend
	keys    KeyMap

	width  int
	height int

	views         []ViewState
	activeViewIdx int

	// Pipeline slots. No locking needed: bubbletea delivers messages to
	// Update serially, and the pipelines share no state with each other.
	checks   map[string]*CheckState
	stats    StatsState
	analysis AnalysisState

	// Portfolio interaction
	input       textinput.Model
	inputActive bool

	// Education interaction
	fedRate      float64
	indicatorIdx int

	showHelp bool

	// Last user-facing notice for the status line (auto-clears after 30s).
	notice   string
	noticeAt time.Time

	version string
}

// NewDashboardModel creates the dashboard over a backend client.
func NewDashboardModel(backend Backend, version string) *DashboardModel {
	input := textinput.New()
	input.Placeholder = "Describe current market conditions..."
	input.CharLimit = 500
	input.SetValue(education.DefaultMarketInput)

	m := &DashboardModel{
		backend: backend,
		keys:    DefaultKeyMap(),
		checks: map[string]*CheckState{
			checkHealth: {},
			checkLive:   {},
			checkReady:  {},
		},
		input:   input,
		fedRate: education.FedRateDefault,
		version: version,
	}
	m.views = DefaultViews()
	return m
}

// DefaultViews declares the built-in views and their decks, mirroring the
// original dashboard's three tabs.
func DefaultViews() []ViewState {
	return []ViewState{
		{
			ID:    "education",
			Title: "Education",
			Decks: []Deck{
				NewMetricsDeck("headline", "Anchor Currency", education.HeadlineMetrics()),
				NewIndicatorsDeck(),
				NewReservesDeck(),
			},
		},
		{
			ID:    "portfolio",
			Title: "Portfolio",
			Decks: []Deck{
				NewMetricsDeck("portfolio-metrics", "Portfolio", education.PortfolioMetrics()),
				NewAllocationDeck(),
				NewAnalysisDeck(),
			},
		},
		{
			ID:    "system",
			Title: "System",
			Decks: []Deck{
				NewHealthDeck(),
				NewStatsDeck(),
				NewEndpointsDeck(),
			},
		},
	}
}

// Init initializes the model.
func (m *DashboardModel) Init() tea.Cmd {
	return textinput.Blink
}

// viewContext builds the read-only snapshot decks render from.
func (m *DashboardModel) viewContext() ViewContext {
	return ViewContext{
		ContentWidth: m.width,
		Health:       m.checks[checkHealth],
		Live:         m.checks[checkLive],
		Ready:        m.checks[checkReady],
		Stats:        &m.stats,
		Analysis:     &m.analysis,
		InputView:    m.input.View(),
		InputActive:  m.inputActive,
		FedRate:      m.fedRate,
		IndicatorIdx: m.indicatorIdx,
	}
}

func (m *DashboardModel) activeView() *ViewState {
	return &m.views[m.activeViewIdx]
}

func (m *DashboardModel) nextView() {
	m.activeViewIdx = (m.activeViewIdx + 1) % len(m.views)
}

func (m *DashboardModel) prevView() {
	m.activeViewIdx = (m.activeViewIdx - 1 + len(m.views)) % len(m.views)
}

func (m *DashboardModel) setView(id string) {
	for i, vw := range m.views {
		if vw.ID == id {
			m.activeViewIdx = i
			return
		}
	}
}

// triggerCheck starts one health-family request unless that slot already has
// one in flight (the triggering control is busy until it completes).
func (m *DashboardModel) triggerCheck(target string) tea.Cmd {
	st := m.checks[target]
	if st.Busy {
		return nil
	}
	st.Busy = true
	st.Seq++
	seq := st.Seq
	backend := m.backend

	return func() tea.Msg {
		var report model.HealthReport
		switch target {
		case checkLive:
			report = backend.CheckLiveness(context.Background())
		case checkReady:
			report = backend.CheckReadiness(context.Background())
		default:
			report = backend.CheckHealth(context.Background())
		}
		return CheckResultMsg{Target: target, Seq: seq, Report: report}
	}
}

// triggerStats starts one stats request unless one is in flight.
func (m *DashboardModel) triggerStats() tea.Cmd {
	if m.stats.Busy {
		return nil
	}
	m.stats.Busy = true
	m.stats.Seq++
	seq := m.stats.Seq
	backend := m.backend

	return func() tea.Msg {
		snapshot, err := backend.FetchStats(context.Background())
		return StatsResultMsg{Seq: seq, Snapshot: snapshot, Err: err}
	}
}

// triggerAnalysis starts one analysis request for the current input unless
// one is in flight. Empty input surfaces a notice instead of a request.
func (m *DashboardModel) triggerAnalysis() tea.Cmd {
	if m.analysis.Busy {
		return nil
	}
	market := m.input.Value()
	if market == "" {
		m.setNotice("enter a market description first")
		return nil
	}
	m.analysis.Busy = true
	m.analysis.Seq++
	seq := m.analysis.Seq
	backend := m.backend

	return func() tea.Msg {
		outcome, err := backend.RequestAnalysis(context.Background(), market)
		if err != nil {
			// Precondition failures classify as connection-independent
			// client mistakes; show them as a failed outcome.
			outcome = model.AnalysisOutcome{Kind: model.AnalysisConnectionFailed}
		}
		return AnalysisResultMsg{Seq: seq, Outcome: outcome}
	}
}

func (m *DashboardModel) setNotice(text string) {
	m.notice = text
	m.noticeAt = time.Now()
}

func (m *DashboardModel) currentNotice() string {
	if m.notice == "" || time.Since(m.noticeAt) > 30*time.Second {
		return ""
	}
	return m.notice
}

// anyPipelineBusy reports whether any request is in flight, for the spinner.
func (m *DashboardModel) anyPipelineBusy() bool {
	for _, st := range m.checks {
		if st.Busy {
			return true
		}
	}
	return m.stats.Busy || m.analysis.Busy
}

// startSpinnerIfNeeded schedules a spinner tick while anything is loading.
func (m *DashboardModel) startSpinnerIfNeeded() tea.Cmd {
	if !m.anyPipelineBusy() {
		return nil
	}
	return tea.Tick(120*time.Millisecond, func(_ time.Time) tea.Msg {
		return SpinnerTickMsg{}
	})
}

// DashboardPage adapts DashboardModel to the Page interface.
type DashboardPage struct {
	Model *DashboardModel
}

// NewDashboardPage wraps a DashboardModel as a Page.
func NewDashboardPage(m *DashboardModel) *DashboardPage {
	return &DashboardPage{Model: m}
}

func (p *DashboardPage) ID() string { return "dashboard" }

func (p *DashboardPage) Init() tea.Cmd {
	return p.Model.Init()
}

func (p *DashboardPage) Update(msg tea.Msg) (tea.Cmd, *PageNav) {
	_, cmd := p.Model.Update(msg)
	return cmd, nil
}

func (p *DashboardPage) View(width, height int) string {
	p.Model.width = width
	p.Model.height = height
	return p.Model.View()
}
