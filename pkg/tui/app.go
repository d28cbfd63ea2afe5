// Package tui is the interactive terminal dashboard: chart, data table, and
// analysis views over the readiness sweep.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/oneflow1982/ktg/pkg/analysis"
	"github.com/oneflow1982/ktg/pkg/readiness"
	"github.com/oneflow1982/ktg/pkg/report"
)

// Tab identifies the current view.
type Tab int

const (
	TabChart Tab = iota
	TabTable
	TabAnalysis
	tabCount
)

var tabNames = []string{"Chart", "Table", "Analysis"}

// Model is the bubbletea model. All calculation inputs live in params; every
// change recomputes the sweep from scratch, there is no other state.
type Model struct {
	params readiness.Params

	tab    Tab
	width  int
	height int
	scroll int

	sweep   *readiness.Sweep
	grid    *readiness.Grid
	summary analysis.Summary
	err     error
}

// NewModel builds a dashboard seeded with the given parameters.
func NewModel(params readiness.Params) Model {
	m := Model{params: params, width: 80, height: 24}
	m.recompute()
	return m
}

// recompute regenerates every derived value from the current params.
func (m *Model) recompute() {
	m.sweep, m.err = readiness.GenerateSweep(m.params.Baseline, m.params.SystemTime, m.params.TMin, m.params.TMax)
	if m.err != nil {
		return
	}
	m.grid, m.err = readiness.GenerateGrid(m.params.Baseline, m.params.TMin, m.params.TMax)
	if m.err != nil {
		return
	}
	m.summary = analysis.Summarize(m.sweep, m.params.Baseline)
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "tab", "right", "l":
			m.tab = (m.tab + 1) % tabCount
			m.scroll = 0
		case "shift+tab", "left", "h":
			m.tab = (m.tab + tabCount - 1) % tabCount
			m.scroll = 0
		case "up", "k":
			if m.scroll > 0 {
				m.scroll--
			}
		case "down", "j":
			m.scroll++
		case "+", "=":
			m.params.Baseline = clampParam(m.params.Baseline+0.01, readiness.MinCoefficient, readiness.MaxCoefficient)
			m.recompute()
		case "-", "_":
			m.params.Baseline = clampParam(m.params.Baseline-0.01, readiness.MinCoefficient, readiness.MaxCoefficient)
			m.recompute()
		case "]":
			m.params.SystemTime += 0.5
			m.recompute()
		case "[":
			if m.params.SystemTime > 0.5 {
				m.params.SystemTime -= 0.5
				m.recompute()
			}
		}
	}

	return m, nil
}

func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(m.headerView())
	sb.WriteString("\n")

	if m.err != nil {
		sb.WriteString(critStyle.Render(fmt.Sprintf("error: %v", m.err)))
		sb.WriteString("\n")
		sb.WriteString(helpStyle.Render("q quit"))
		return sb.String()
	}

	switch m.tab {
	case TabChart:
		sb.WriteString(m.chartView())
	case TabTable:
		sb.WriteString(m.tableView())
	case TabAnalysis:
		sb.WriteString(m.analysisView())
	}

	sb.WriteString("\n")
	sb.WriteString(helpStyle.Render("tab/←→ switch view  +/- baseline  [/] system time  ↑↓ scroll  q quit"))

	return sb.String()
}

func (m Model) headerView() string {
	var tabs []string
	for i, name := range tabNames {
		if Tab(i) == m.tab {
			tabs = append(tabs, activeTabStyle.Render(name))
		} else {
			tabs = append(tabs, tabStyle.Render(name))
		}
	}

	params := paramStyle.Render(fmt.Sprintf(
		"baseline %.2f  system %.1f h  range %.0f-%.0f h",
		m.params.Baseline, m.params.SystemTime, m.params.TMin, m.params.TMax,
	))

	return lipgloss.JoinHorizontal(lipgloss.Top, strings.Join(tabs, " "), "  ", params)
}

func (m Model) chartView() string {
	chartH := m.height - 8
	if chartH < 4 {
		chartH = 4
	}
	if chartH > 16 {
		chartH = 16
	}
	return report.Chart(m.sweep, m.params.Baseline, m.width-2, chartH)
}

func (m Model) tableView() string {
	var sb strings.Builder

	sb.WriteString(headerStyle.Render(fmt.Sprintf("%10s  %8s  %10s  %s", "t_hist (h)", "KTG", "change %", "status")))
	sb.WriteString("\n")

	rows := m.height - 6
	if rows < 3 {
		rows = 3
	}
	start := m.scroll
	if start > m.sweep.Len()-1 {
		start = m.sweep.Len() - 1
	}
	end := start + rows
	if end > m.sweep.Len() {
		end = m.sweep.Len()
	}

	for i := start; i < end; i++ {
		status := analysis.Status(m.sweep.ChangePercent[i])
		style := okStyle
		if status == "degradation" {
			style = critStyle
		}
		sb.WriteString(fmt.Sprintf("%10.1f  %8.3f  %10.2f  %s\n",
			m.sweep.Times[i], m.sweep.Values[i], m.sweep.ChangePercent[i], style.Render(status)))
	}

	sb.WriteString(helpStyle.Render(fmt.Sprintf("rows %d-%d of %d", start+1, end, m.sweep.Len())))

	return sb.String()
}

func (m Model) analysisView() string {
	var sb strings.Builder

	rec := analysis.Recommend(m.params.Baseline, m.params.SystemTime)
	rating := analysis.Rate(m.summary.MaxImprovementPercent)

	sb.WriteString(headerStyle.Render("Summary"))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  mean %.3f  min %.3f  max %.3f  improvement %+.1f%% (%s)\n",
		m.summary.Mean, m.summary.Min, m.summary.Max, m.summary.MaxImprovementPercent, rating))
	if m.summary.ReachesFull {
		sb.WriteString(okStyle.Render(fmt.Sprintf("  reaches full readiness up to %.1f h", m.summary.FullAtTime)))
		sb.WriteString("\n")
	}

	sb.WriteString(headerStyle.Render("Recommendations"))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  situation: %s, planned repair time: %s\n", rec.Situation, rec.SystemTimeVerdict))
	for _, a := range rec.Actions {
		sb.WriteString("  - " + a + "\n")
	}

	sb.WriteString("\n")
	sb.WriteString(report.Heatmap(m.grid))

	return sb.String()
}

func clampParam(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Run starts the dashboard in the alternate screen.
func Run(params readiness.Params) error {
	p := tea.NewProgram(NewModel(params), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
