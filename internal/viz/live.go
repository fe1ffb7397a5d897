// Package viz provides a terminal live view of the spring chain: the two
// masses drawn on a vertical axis, stepped in real time, with a position
// history graph alongside.
package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/Ricardo-B04/Sistema-masa-resorte/internal/ode"
	"github.com/Ricardo-B04/Sistema-masa-resorte/internal/physics"
)

const (
	canvasRows      = 22
	historyCapacity = 360
	frameDt         = 1.0 / 60.0
	subDt           = 0.002
)

var (
	canvasStyle = lipgloss.NewStyle().Padding(1, 2)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(40)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(14)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	massStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	springStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("49"))
	eqStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

type Model struct {
	chain      *physics.TwoMassChain
	integrator ode.Integrator
	state      ode.State
	initial    ode.State
	t          float64
	running    bool
	x1eq, x2eq float64
	hasEq      bool
	history    []float64
	depth      float64 // vertical extent of the canvas in meters
}

func NewModel(chain *physics.TwoMassChain, integ ode.Integrator, initState ode.State) Model {
	m := Model{
		chain:      chain,
		integrator: integ,
		state:      initState.Clone(),
		initial:    initState.Clone(),
		running:    true,
		history:    make([]float64, 0, historyCapacity),
	}

	if x1eq, x2eq, err := chain.Equilibrium(); err == nil {
		m.x1eq, m.x2eq = x1eq, x2eq
		m.hasEq = true
	}

	// Scale the canvas to comfortably contain the motion.
	m.depth = math.Max(initState[2]*1.5, 0.1)
	if m.hasEq {
		m.depth = math.Max(m.depth, m.x2eq*1.5)
	}

	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(time.Second/60, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.t = 0
			m.state = m.initial.Clone()
			m.history = m.history[:0]
		}
	case TickMsg:
		if m.running {
			m.step()
		}
		return m, tea.Tick(time.Second/60, func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

// step advances one frame of simulated time in fixed sub-steps.
func (m *Model) step() {
	remaining := frameDt
	for remaining > 0 {
		dt := math.Min(subDt, remaining)
		m.state = m.integrator.Step(m.chain, m.state, m.t, dt)
		m.t += dt
		remaining -= dt
	}

	if !m.state.IsValid() {
		m.running = false
		return
	}

	m.history = append(m.history, m.state[0])
	if len(m.history) > historyCapacity {
		m.history = m.history[1:]
	}
}

func (m Model) toRow(x float64) int {
	row := int(x / m.depth * float64(canvasRows-1))
	if row < 0 {
		row = 0
	}
	if row > canvasRows-1 {
		row = canvasRows - 1
	}
	return row
}

func (m Model) View() string {
	lines := make([]string, canvasRows)
	for i := range lines {
		lines[i] = "      "
	}

	lines[0] = "══╦═══"

	r1 := m.toRow(m.state[0])
	r2 := m.toRow(m.state[2])

	for i := 1; i < canvasRows; i++ {
		switch {
		case i < r1:
			lines[i] = springStyle.Render("  ║   ")
		case i == r1:
			lines[i] = massStyle.Render(" (m1) ")
		case i < r2:
			lines[i] = springStyle.Render("  ║   ")
		case i == r2 && r2 > r1:
			lines[i] = massStyle.Render(" (m2) ")
		}
	}

	if m.hasEq {
		e1, e2 := m.toRow(m.x1eq), m.toRow(m.x2eq)
		if e1 != r1 && e1 != r2 && e1 > 0 {
			lines[e1] += eqStyle.Render(" ┄ eq1")
		}
		if e2 != r1 && e2 != r2 && e2 > 0 {
			lines[e2] += eqStyle.Render(" ┄ eq2")
		}
	}

	canvas := canvasStyle.Render(strings.Join(lines, "\n"))

	status := "running"
	if !m.running {
		status = "paused"
	}

	stats := []string{
		headerStyle.Render("spring chain"),
		labelStyle.Render("t") + valueStyle.Render(fmt.Sprintf("%.2f s", m.t)),
		labelStyle.Render("x1") + valueStyle.Render(fmt.Sprintf("%.4f m", m.state[0])),
		labelStyle.Render("v1") + valueStyle.Render(fmt.Sprintf("%.4f m/s", m.state[1])),
		labelStyle.Render("x2") + valueStyle.Render(fmt.Sprintf("%.4f m", m.state[2])),
		labelStyle.Render("v2") + valueStyle.Render(fmt.Sprintf("%.4f m/s", m.state[3])),
		labelStyle.Render("energy") + valueStyle.Render(fmt.Sprintf("%.4f J", m.chain.Energy(m.state))),
		labelStyle.Render("status") + valueStyle.Render(status),
	}
	if m.hasEq {
		stats = append(stats,
			labelStyle.Render("eq1")+valueStyle.Render(fmt.Sprintf("%.4f m", m.x1eq)),
			labelStyle.Render("eq2")+valueStyle.Render(fmt.Sprintf("%.4f m", m.x2eq)),
		)
	}

	if len(m.history) > 2 {
		graph := asciigraph.Plot(m.history,
			asciigraph.Height(6),
			asciigraph.Width(34),
			asciigraph.Caption("x1 history"),
		)
		stats = append(stats, "", graph)
	}

	view := lipgloss.JoinHorizontal(lipgloss.Top, canvas, statsStyle.Render(strings.Join(stats, "\n")))
	return view + helpStyle.Render("\nspace pause · r reset · q quit\n")
}

// Run starts the live view and blocks until the user quits.
func Run(chain *physics.TwoMassChain, integ ode.Integrator, initState ode.State) error {
	p := tea.NewProgram(NewModel(chain, integ, initState))
	_, err := p.Run()
	return err
}
