package tui

// ViewContext provides read-only context to decks for rendering, replacing
// direct access to *DashboardModel. Each deck sees the latest completed
// pipeline results plus the interactive state it renders.
type ViewContext struct {
	ContentWidth int

	Health *CheckState
	Live   *CheckState
	Ready  *CheckState
	Stats  *StatsState

	Analysis    *AnalysisState
	InputView   string
	InputActive bool

	FedRate      float64
	IndicatorIdx int
}
