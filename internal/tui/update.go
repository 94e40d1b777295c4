package tui

import (
	"time"

	"github.com/currencydash/anchor/internal/education"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles messages.
func (m *DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case CheckResultMsg:
		st, ok := m.checks[msg.Target]
		if !ok || msg.Seq != st.Seq {
			// A response for a superseded request arrived late; the
			// finalized slot must not be overwritten.
			return m, nil
		}
		st.Busy = false
		report := msg.Report
		st.Report = &report
		st.At = time.Now()
		return m, m.startSpinnerIfNeeded()

	case StatsResultMsg:
		if msg.Seq != m.stats.Seq {
			return m, nil
		}
		m.stats.Busy = false
		m.stats.At = time.Now()
		if msg.Err != nil {
			m.stats.Snapshot = nil
			m.stats.Err = msg.Err.Error()
		} else {
			snapshot := msg.Snapshot
			m.stats.Snapshot = &snapshot
			m.stats.Err = ""
		}
		return m, m.startSpinnerIfNeeded()

	case AnalysisResultMsg:
		if msg.Seq != m.analysis.Seq {
			return m, nil
		}
		m.analysis.Busy = false
		outcome := msg.Outcome
		m.analysis.Outcome = &outcome
		m.analysis.At = time.Now()
		return m, m.startSpinnerIfNeeded()

	case SpinnerTickMsg:
		return m, m.startSpinnerIfNeeded()
	}

	if m.inputActive {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *DashboardModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// While editing the market description, keys belong to the input field
	// except confirm/cancel.
	if m.inputActive {
		switch {
		case key.Matches(msg, m.keys.ForceQuit):
			return m, tea.Quit
		case msg.Type == tea.KeyEnter:
			m.inputActive = false
			m.input.Blur()
			cmd := m.triggerAnalysis()
			return m, tea.Batch(cmd, m.startSpinnerIfNeeded())
		case key.Matches(msg, m.keys.Escape):
			m.inputActive = false
			m.input.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.ForceQuit), key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return m, nil

	case key.Matches(msg, m.keys.Escape):
		m.showHelp = false
		return m, nil

	case key.Matches(msg, m.keys.NextView):
		m.nextView()
		return m, nil
	case key.Matches(msg, m.keys.PrevView):
		m.prevView()
		return m, nil
	case key.Matches(msg, m.keys.EducationTab):
		m.setView("education")
		return m, nil
	case key.Matches(msg, m.keys.PortfolioTab):
		m.setView("portfolio")
		return m, nil
	case key.Matches(msg, m.keys.SystemTab):
		m.setView("system")
		return m, nil

	case key.Matches(msg, m.keys.NextDeck):
		vw := m.activeView()
		vw.ActiveDeckIdx = (vw.ActiveDeckIdx + 1) % len(vw.Decks)
		return m, nil
	case key.Matches(msg, m.keys.PrevDeck):
		vw := m.activeView()
		vw.ActiveDeckIdx = (vw.ActiveDeckIdx - 1 + len(vw.Decks)) % len(vw.Decks)
		return m, nil
	}

	switch m.activeView().ID {
	case "education":
		return m.handleEducationKey(msg)
	case "portfolio":
		return m.handlePortfolioKey(msg)
	case "system":
		return m.handleSystemKey(msg)
	}
	return m, nil
}

func (m *DashboardModel) handleEducationKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.RateUp):
		m.fedRate = education.ClampFedRate(m.fedRate + education.FedRateStep)
	case key.Matches(msg, m.keys.RateDown):
		m.fedRate = education.ClampFedRate(m.fedRate - education.FedRateStep)
	case key.Matches(msg, m.keys.NextIndicator):
		m.indicatorIdx = (m.indicatorIdx + 1) % len(education.Indicators())
	case key.Matches(msg, m.keys.PrevIndicator):
		n := len(education.Indicators())
		m.indicatorIdx = (m.indicatorIdx - 1 + n) % n
	}
	return m, nil
}

func (m *DashboardModel) handlePortfolioKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.EditInput):
		m.inputActive = true
		return m, m.input.Focus()
	case key.Matches(msg, m.keys.Analyze), msg.Type == tea.KeyEnter:
		cmd := m.triggerAnalysis()
		return m, tea.Batch(cmd, m.startSpinnerIfNeeded())
	}
	return m, nil
}

func (m *DashboardModel) handleSystemKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.CheckHealth):
		cmd := m.triggerCheck(checkHealth)
		return m, tea.Batch(cmd, m.startSpinnerIfNeeded())
	case key.Matches(msg, m.keys.CheckProbes):
		// Two independent probe requests, each with its own slot and token.
		cmds := []tea.Cmd{
			m.triggerCheck(checkLive),
			m.triggerCheck(checkReady),
		}
		cmds = append(cmds, m.startSpinnerIfNeeded())
		return m, tea.Batch(cmds...)
	case key.Matches(msg, m.keys.FetchStats):
		cmd := m.triggerStats()
		return m, tea.Batch(cmd, m.startSpinnerIfNeeded())
	}
	return m, nil
}
