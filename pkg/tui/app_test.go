package tui

import (
	"math"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/oneflow1982/ktg/pkg/readiness"
)

func testModel() Model {
	return NewModel(readiness.Params{Baseline: 0.05, SystemTime: 2.0, TMin: 4, TMax: 24})
}

func key(s string) tea.KeyMsg {
	if s == "tab" {
		return tea.KeyMsg{Type: tea.KeyTab}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewModelComputesSweep(t *testing.T) {
	m := testModel()
	if m.err != nil {
		t.Fatalf("model has error: %v", m.err)
	}
	if m.sweep == nil || m.sweep.Len() != 41 {
		t.Fatalf("sweep not computed: %+v", m.sweep)
	}
	if m.grid == nil {
		t.Fatal("grid not computed")
	}
}

func TestTabSwitching(t *testing.T) {
	m := testModel()

	next, _ := m.Update(key("tab"))
	m = next.(Model)
	if m.tab != TabTable {
		t.Fatalf("tab = %d, want TabTable", m.tab)
	}

	next, _ = m.Update(key("tab"))
	m = next.(Model)
	if m.tab != TabAnalysis {
		t.Fatalf("tab = %d, want TabAnalysis", m.tab)
	}

	next, _ = m.Update(key("tab"))
	m = next.(Model)
	if m.tab != TabChart {
		t.Fatalf("tab = %d, want wraparound to TabChart", m.tab)
	}
}

func TestParameterKeysRecompute(t *testing.T) {
	m := testModel()
	before := m.sweep.Values[0]

	next, _ := m.Update(key("+"))
	m = next.(Model)
	if math.Abs(m.params.Baseline-0.06) > 1e-9 {
		t.Fatalf("Baseline = %g, want 0.06", m.params.Baseline)
	}
	if m.sweep.Values[0] <= before {
		t.Fatal("raising the baseline should raise the sweep values")
	}

	next, _ = m.Update(key("]"))
	m = next.(Model)
	if m.params.SystemTime != 2.5 {
		t.Fatalf("SystemTime = %g, want 2.5", m.params.SystemTime)
	}
}

func TestBaselineStaysClamped(t *testing.T) {
	m := testModel()
	for i := 0; i < 10; i++ {
		next, _ := m.Update(key("-"))
		m = next.(Model)
	}
	if m.params.Baseline != readiness.MinCoefficient {
		t.Fatalf("Baseline = %g, want clamp at %g", m.params.Baseline, readiness.MinCoefficient)
	}
	if m.err != nil {
		t.Fatalf("clamped baseline must stay valid, got error: %v", m.err)
	}
}

func TestViewRendersEachTab(t *testing.T) {
	m := testModel()

	for tab, want := range map[Tab]string{
		TabChart:    "KTG vs historical recovery time",
		TabTable:    "t_hist (h)",
		TabAnalysis: "Recommendations",
	} {
		m.tab = tab
		out := m.View()
		if !strings.Contains(out, want) {
			t.Errorf("tab %d view missing %q", tab, want)
		}
	}
}
