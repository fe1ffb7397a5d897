// Package report renders simulation results for the console: a styled
// parameter and equilibrium summary plus ascii time-series plots of the
// four state components.
package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/Ricardo-B04/Sistema-masa-resorte/internal/physics"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(26)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	panelStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("240")).Padding(0, 2)
)

func row(label string, format string, args ...any) string {
	return labelStyle.Render(label) + valueStyle.Render(fmt.Sprintf(format, args...))
}

// Summary renders the system parameters and, when the equilibrium is
// defined, the equilibrium positions of both masses.
func Summary(chain *physics.TwoMassChain) string {
	p := chain.Params()

	var b strings.Builder
	b.WriteString(headerStyle.Render("two-mass spring chain"))
	b.WriteString("\n\n")

	lines := []string{
		row("mass 1 (m1)", "%.3f kg", p.M1),
		row("mass 2 (m2)", "%.3f kg", p.M2),
		row("stiffness 1 (k1)", "%.3f N/m", p.K1),
		row("stiffness 2 (k2)", "%.3f N/m", p.K2),
		row("natural length 1 (l1)", "%.3f m", p.L1),
		row("natural length 2 (l2)", "%.3f m", p.L2),
		row("gravity (g)", "%.3f m/s²", p.G),
	}

	x1eq, x2eq, err := chain.Equilibrium()
	if err == nil {
		lines = append(lines,
			"",
			row("equilibrium mass 1", "%.4f m", x1eq),
			row("equilibrium mass 2", "%.4f m", x2eq),
		)
	}

	b.WriteString(panelStyle.Render(strings.Join(lines, "\n")))
	b.WriteString("\n")
	return b.String()
}

type plotSpec struct {
	data    []float64
	caption string
}

// PlotSeries renders time-series plots of x1, v1, x2, v2. When the
// equilibrium is defined the position captions carry the reference value,
// matching the dashed reference line of a conventional plot.
func PlotSeries(chain *physics.TwoMassChain, series *physics.Series) string {
	capX1 := "x1: mass 1 position (m)"
	capX2 := "x2: mass 2 position (m)"
	if x1eq, x2eq, err := chain.Equilibrium(); err == nil {
		capX1 = fmt.Sprintf("x1: mass 1 position (m), equilibrium %.4f", x1eq)
		capX2 = fmt.Sprintf("x2: mass 2 position (m), equilibrium %.4f", x2eq)
	}

	plots := []plotSpec{
		{series.X1, capX1},
		{series.V1, "v1: mass 1 velocity (m/s)"},
		{series.X2, capX2},
		{series.V2, "v2: mass 2 velocity (m/s)"},
	}

	var b strings.Builder
	for _, p := range plots {
		if len(p.data) == 0 {
			continue
		}
		graph := asciigraph.Plot(p.data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(p.caption),
		)
		b.WriteString(graph)
		b.WriteString("\n\n")
	}
	return b.String()
}
