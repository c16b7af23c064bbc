// Package tui runs the live orbit viewer: a bubbletea program animating
// one system at a time on a Braille canvas, with an info panel showing
// stellar parameters, planet elements (estimated values marked with *),
// and the derived trait badges.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/exosim/internal/audio"
	"github.com/san-kum/exosim/internal/config"
	"github.com/san-kum/exosim/internal/orbit"
	"github.com/san-kum/exosim/internal/simclock"
	"github.com/san-kum/exosim/internal/system"
	"github.com/san-kum/exosim/internal/viz"
)

type tickMsg time.Time

type model struct {
	systems []*system.System
	index   int

	clock    *simclock.Clock
	sonifier *audio.Sonifier

	showOrbits bool
	showHZ     bool
	showLabels bool

	frameDelay time.Duration
	width      int
	height     int
}

func newModel(systems []*system.System, cfg *config.Config, son *audio.Sonifier) *model {
	clock := simclock.New()
	clock.SetSpeed(cfg.Speed)

	fps := cfg.FPS
	if fps <= 0 {
		fps = config.DefaultFPS
	}

	m := &model{
		systems:    systems,
		clock:      clock,
		sonifier:   son,
		showOrbits: cfg.ShowOrbits,
		showHZ:     cfg.ShowHZ,
		showLabels: cfg.ShowLabels,
		frameDelay: time.Second / time.Duration(fps),
		width:      80,
		height:     24,
	}
	m.retune()
	return m
}

func (m *model) current() *system.System {
	return m.systems[m.index]
}

// retune points the sonifier at the current system's planets.
func (m *model) retune() {
	if m.sonifier == nil {
		return
	}
	sys := m.current()
	periods := make([]float64, len(sys.Planets))
	radii := make([]float64, len(sys.Planets))
	anomalies := make([]float64, len(sys.Planets))
	for i, p := range sys.Planets {
		periods[i] = p.PeriodDays
		radii[i] = p.DisplayRadiusEarth
		anomalies[i] = p.Elements.MeanAnomalyDeg
	}
	m.sonifier.SetVoices(periods, radii, anomalies)
}

func (m *model) Init() tea.Cmd {
	return m.tick()
}

func (m *model) tick() tea.Cmd {
	return tea.Tick(m.frameDelay, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		t := m.clock.Advance(time.Time(msg))
		if m.sonifier != nil {
			m.sonifier.Advance(t)
		}
		return m, m.tick()
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "escape":
		return m, tea.Quit
	case " ", "p":
		m.clock.TogglePause()
	case "+", "=":
		m.clock.AdjustSpeed(2)
	case "-", "_":
		m.clock.AdjustSpeed(0.5)
	case "r":
		m.clock.Reset()
	case "h":
		m.showHZ = !m.showHZ
	case "o":
		m.showOrbits = !m.showOrbits
	case "l":
		m.showLabels = !m.showLabels
	case "n", "right", "tab":
		m.index = (m.index + 1) % len(m.systems)
		m.clock.Reset()
		m.retune()
		return m, tea.ClearScreen
	case "b", "left", "shift+tab":
		m.index = (m.index - 1 + len(m.systems)) % len(m.systems)
		m.clock.Reset()
		m.retune()
		return m, tea.ClearScreen
	}
	return m, nil
}

func (m *model) View() string {
	sys := m.current()
	t := m.clock.Now()

	panelWidth := 38
	canvasW := m.width - panelWidth - 6
	canvasH := m.height - 6
	if canvasW < 40 {
		canvasW = 40
	}
	if canvasH < 14 {
		canvasH = 14
	}

	left := viz.Panel.Render(m.renderCanvas(sys, t, canvasW, canvasH))
	right := viz.Panel.Render(m.renderInfo(sys, t, panelWidth))

	body := lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)

	return m.renderHeader(sys, t) + "\n" + body + "\n" + m.renderFooter()
}

func (m *model) renderHeader(sys *system.System, t float64) string {
	status := viz.StatusRunning.Render("● running")
	if m.clock.Paused() {
		status = viz.StatusPaused.Render("○ paused")
	}
	badges := viz.TraitBadges(sys.MultiPlanet, sys.HasEccentricOrbit,
		sys.HasResonantPair, sys.HasHZPlanet, sys.Binary.IsBinary)

	return fmt.Sprintf(" %s  %s  %s  %s  %s",
		viz.Title.Render(sys.Star.Name),
		badges,
		status,
		viz.Label.Render(fmt.Sprintf("t=%.1f d", t)),
		viz.Label.Render(fmt.Sprintf("%.1fx", m.clock.Speed())))
}

func (m *model) renderCanvas(sys *system.System, t float64, w, h int) string {
	canvas := viz.NewCanvas(w, h)

	outer := 1.0
	for _, p := range sys.Planets {
		_, apo := orbit.Apsides(p.Elements.SemiMajorAxis, p.Elements.Eccentricity)
		if apo > outer {
			outer = apo
		}
	}
	if m.showHZ && sys.HabitableZone != nil && sys.HabitableZone.OuterAU > outer {
		outer = sys.HabitableZone.OuterAU
	}
	proj := viz.NewProjection(canvas, outer)

	if m.showHZ && sys.HabitableZone != nil {
		canvas.DrawRing(proj, sys.HabitableZone.InnerAU)
		canvas.DrawRing(proj, sys.HabitableZone.OuterAU)
	}

	if m.showOrbits {
		for _, p := range sys.Planets {
			pts := orbit.Path(p.Elements.SemiMajorAxis, p.Elements.Eccentricity,
				p.Elements.ArgPeriapsisDeg, orbit.DefaultPathPoints)
			canvas.DrawPath(proj, pts)
		}
	}

	positions := sys.PositionsAt(t)
	labels := make(map[int]string)
	for _, p := range sys.Planets {
		pos := positions[p.Name]
		col, row := proj.Cell(pos.X, pos.Y)
		canvas.SetRune(col, row, viz.PlanetGlyph(p.DisplayRadiusEarth))
		if m.showLabels && col+1 < canvas.Width {
			labels[row*canvas.Width+col+1] = shortName(p.Name, sys.Star.Name)
		}
	}

	// Star at the focus; '*' for single, '✦' when a close companion shares
	// the center.
	starCol, starRow := proj.Cell(0, 0)
	glyph := '*'
	if sys.Binary.IsBinary && sys.Binary.Close {
		glyph = '✦'
	}
	canvas.SetRune(starCol, starRow, glyph)
	if sys.Binary.IsBinary && !sys.Binary.Close {
		canvas.SetRune(1, 0, '*')
	}

	return overlayLabels(canvas, labels)
}

// overlayLabels writes short planet labels to the right of their glyphs,
// clipped at the canvas edge.
func overlayLabels(c *viz.Canvas, labels map[int]string) string {
	for key, label := range labels {
		row, col := key/c.Width, key%c.Width
		for i, r := range label {
			if col+i >= c.Width {
				break
			}
			c.SetRune(col+i, row, r)
		}
	}
	return strings.TrimRight(c.String(), "\n")
}

// shortName strips the host-star prefix so labels stay compact ("b"
// instead of "TRAPPIST-1 b").
func shortName(planet, host string) string {
	if s := strings.TrimPrefix(planet, host); s != planet {
		return strings.TrimSpace(s)
	}
	if len(planet) > 8 {
		return planet[:8]
	}
	return planet
}

func (m *model) renderInfo(sys *system.System, t float64, width int) string {
	var b strings.Builder

	star := sys.Star
	b.WriteString(viz.Title.Render(star.Name) + "\n")
	if sys.Binary.IsBinary {
		kind := "distant"
		if sys.Binary.Close {
			kind = "close"
		}
		b.WriteString(viz.BinaryBadge.Render(fmt.Sprintf("binary (%s)", kind)))
		if sys.Binary.Companion != "" {
			b.WriteString(viz.Label.Render("  companion " + sys.Binary.Companion))
		}
		b.WriteString("\n")
	}

	b.WriteString(statLine("mass", fmt.Sprintf("%.2f M☉", star.MassSolar), star.Estimated.Mass))
	b.WriteString(statLine("radius", fmt.Sprintf("%.2f R☉", star.RadiusSolar), star.Estimated.Radius))
	b.WriteString(statLine("temp", fmt.Sprintf("%.0f K", star.TemperatureK), star.Estimated.Temperature))
	if star.SpectralType != "" {
		b.WriteString(statLine("spectral", star.SpectralType, false))
	}

	if hz := sys.HabitableZone; hz != nil {
		b.WriteString(viz.Label.Render("habitable zone ") +
			viz.HZBadge.Render(fmt.Sprintf("%.3f – %.3f AU", hz.InnerAU, hz.OuterAU)))
		if !hz.DataAvailable {
			b.WriteString(viz.EstimatedMark.Render(" *"))
		}
		b.WriteString("\n")
	}

	b.WriteString(viz.Subtle.Render(strings.Repeat("─", width-4)) + "\n")

	positions := sys.PositionsAt(t)
	for _, p := range sys.Planets {
		pos := positions[p.Name]
		b.WriteString(viz.Value.Render(shortName(p.Name, sys.Star.Name)))
		if p.InHabitableZone {
			b.WriteString(" " + viz.HZBadge.Render("HZ"))
		}
		b.WriteString("\n")

		b.WriteString(statLine("  a", fmt.Sprintf("%.3f AU", p.Elements.SemiMajorAxis), p.Estimated.SemiMajorAxis))
		b.WriteString(statLine("  e", fmt.Sprintf("%.3f", p.Elements.Eccentricity), p.Estimated.Eccentricity))
		b.WriteString(statLine("  R", fmt.Sprintf("%.2f R⊕", p.DisplayRadiusEarth), p.Estimated.Radius))
		b.WriteString(viz.Label.Render("  r=") + fmt.Sprintf("%.3f AU", pos.R) +
			viz.Label.Render("  v=") + fmt.Sprintf("%.1f km/s", pos.Velocity) + "\n")
	}

	if len(m.systems) > 1 {
		b.WriteString(viz.Subtle.Render(fmt.Sprintf("\nsystem %d/%d", m.index+1, len(m.systems))))
	}

	return b.String()
}

func statLine(label, value string, estimated bool) string {
	s := viz.Label.Render(label+" ") + value
	if estimated {
		s += viz.EstimatedMark.Render("*")
	}
	return s + "\n"
}

func (m *model) renderFooter() string {
	return viz.KeyHint.Render(" space pause  +/- speed  r rewind  h zone  o orbits  l labels  n/b system  q quit")
}

// Run starts the live viewer over the given systems. The sonifier may be
// nil; when present it is started before and stopped after the program.
func Run(systems []*system.System, cfg *config.Config, son *audio.Sonifier) error {
	if len(systems) == 0 {
		return fmt.Errorf("no systems to display")
	}

	if son != nil {
		if err := son.Start(); err != nil {
			// Missing audio hardware should not block the viewer.
			son = nil
		} else {
			defer son.Stop()
		}
	}

	p := tea.NewProgram(newModel(systems, cfg, son), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
