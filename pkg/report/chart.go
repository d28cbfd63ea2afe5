package report

import (
	"fmt"
	"strings"

	"github.com/oneflow1982/ktg/pkg/readiness"
)

// Chart renders a sweep as a terminal area chart with a Y axis, sub-cell
// resolution using fractional block characters, and per-cell coloring:
//
//	KTG vs historical recovery time        baseline: 0.05
//	1.00│
//	0.75│▄
//	0.50│██▆▃
//	0.25│██████▅▃▂
//	0.00│████████████████████████████
//	    └────────────────────────────
//	    4.0 h                  24.0 h
func Chart(s *readiness.Sweep, baseline float64, width, height int) string {
	if s == nil || s.Len() == 0 {
		return ""
	}
	if height < 2 {
		height = 2
	}

	axisW := 5 // e.g. "0.75│"
	chartW := width - axisW - 1
	if chartW < 10 {
		chartW = 10
	}

	resampled := resample(s.Values, chartW)

	subBlocks := []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("KTG vs historical recovery time"))
	sb.WriteString(dimStyle.Render(fmt.Sprintf("  baseline: %.2f", baseline)))
	sb.WriteString("\n")

	// Fixed scale: coefficients always live in [0, 1].
	for row := height - 1; row >= 0; row-- {
		yVal := float64(row+1) / float64(height)
		sb.WriteString(dimStyle.Render(fmt.Sprintf("%4.2f", yVal)))
		sb.WriteString(dimStyle.Render("│"))

		for _, val := range resampled {
			normalized := val * float64(height)
			cellBottom := float64(row)
			cellTop := float64(row + 1)

			var ch rune
			switch {
			case normalized >= cellTop:
				ch = '█'
			case normalized <= cellBottom:
				ch = ' '
			default:
				idx := int((normalized - cellBottom) * 8)
				if idx >= len(subBlocks) {
					idx = len(subBlocks) - 1
				}
				if idx < 0 {
					idx = 0
				}
				ch = subBlocks[idx]
			}

			if ch == ' ' {
				sb.WriteRune(' ')
			} else {
				sb.WriteString(coefficientColor(val).Render(string(ch)))
			}
		}
		sb.WriteString("\n")
	}

	sb.WriteString(dimStyle.Render("    └" + strings.Repeat("─", len(resampled))))
	sb.WriteString("\n")

	left := fmt.Sprintf("%.1f h", s.Times[0])
	right := fmt.Sprintf("%.1f h", s.Times[s.Len()-1])
	gap := len(resampled) - len(left) - len(right) + axisW
	if gap < 1 {
		gap = 1
	}
	sb.WriteString(dimStyle.Render("    " + left + strings.Repeat(" ", gap) + right))

	return sb.String()
}

// Heatmap renders the two-dimensional grid: one row per system recovery
// time, one two-column cell per historical time, colored by coefficient.
func Heatmap(g *readiness.Grid) string {
	if g == nil || len(g.Values) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("KTG by system and historical recovery time"))
	sb.WriteString("\n")

	// Column header with every other historical time to keep it readable.
	sb.WriteString(dimStyle.Render("  t_sys│"))
	for j, t := range g.HistoricalTimes {
		if j%2 == 0 {
			sb.WriteString(dimStyle.Render(fmt.Sprintf("%-4.0f", t)))
		}
	}
	sb.WriteString("\n")

	for i, sysT := range g.SystemTimes {
		sb.WriteString(dimStyle.Render(fmt.Sprintf("%5.1fh│", sysT)))
		for _, v := range g.Values[i] {
			sb.WriteString(coefficientColor(v).Render("██"))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("       " + critStyle.Render("██") + dimStyle.Render(" low  ") + warnStyle.Render("██") + dimStyle.Render(" mid  ") + okStyle.Render("██") + dimStyle.Render(" high"))

	return sb.String()
}

// resample shrinks data to targetWidth columns by bucket averaging; shorter
// series are returned as is.
func resample(data []float64, targetWidth int) []float64 {
	if len(data) <= targetWidth {
		return data
	}
	result := make([]float64, targetWidth)
	for i := 0; i < targetWidth; i++ {
		srcStart := i * len(data) / targetWidth
		srcEnd := (i + 1) * len(data) / targetWidth
		if srcEnd > len(data) {
			srcEnd = len(data)
		}
		if srcStart >= srcEnd {
			srcStart = srcEnd - 1
		}
		sum := 0.0
		for j := srcStart; j < srcEnd; j++ {
			sum += data[j]
		}
		result[i] = sum / float64(srcEnd-srcStart)
	}
	return result
}
