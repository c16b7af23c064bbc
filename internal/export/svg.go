// Package export writes orbit maps as standalone SVG documents: habitable
// zone annulus, orbit ellipses, apsis markers, and planet positions at the
// chosen simulation time. The renderer consumes AU coordinates and owns
// the screen-space scaling and Y-axis flip.
package export

import (
	"fmt"
	"math"
	"strings"

	"github.com/san-kum/exosim/internal/orbit"
	"github.com/san-kum/exosim/internal/system"
)

const (
	background = "#0a0a0a"
	orbitColor = "#556677"
	hzColor    = "#113322"
	starColor  = "#ffcc44"
	apsisColor = "#445566"
)

// planetColors cycle by orbit order, innermost first.
var planetColors = []string{"#66ccff", "#ff8866", "#88ff88", "#ffcc66", "#cc88ff", "#ff6699", "#66ffd9", "#ffffff"}

// SystemSVG renders a system at simulation time t (days) into an SVG of
// the given pixel size.
func SystemSVG(sys *system.System, timeDays float64, size int) string {
	if size <= 0 {
		size = 800
	}

	outer := 1.0
	for _, p := range sys.Planets {
		_, apo := orbit.Apsides(p.Elements.SemiMajorAxis, p.Elements.Eccentricity)
		if apo > outer {
			outer = apo
		}
	}
	if sys.HabitableZone != nil && sys.HasHZPlanet && sys.HabitableZone.OuterAU > outer {
		outer = sys.HabitableZone.OuterAU
	}

	half := float64(size) / 2
	scale := half * 0.92 / outer
	// Orbital-plane +Y is up; SVG +y is down.
	px := func(xAU float64) float64 { return half + xAU*scale }
	py := func(yAU float64) float64 { return half - yAU*scale }

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
`, size, size, size, size, background)

	if hz := sys.HabitableZone; hz != nil && hz.OuterAU*scale > 1 {
		fmt.Fprintf(&sb,
			"<circle cx=\"%.1f\" cy=\"%.1f\" r=\"%.1f\" fill=\"none\" stroke=\"%s\" stroke-width=\"%.1f\" opacity=\"0.8\"/>\n",
			half, half, (hz.InnerAU+hz.OuterAU)/2*scale, hzColor, (hz.OuterAU-hz.InnerAU)*scale)
	}

	for i, p := range sys.Planets {
		color := planetColors[i%len(planetColors)]
		writeOrbitPath(&sb, p, px, py)
		writeApsides(&sb, p, px, py)

		pos := orbit.PlanetAt(p.Elements, timeDays, sys.Star.MassSolar)
		r := planetDotRadius(p.DisplayRadiusEarth)
		fmt.Fprintf(&sb, "<circle cx=\"%.1f\" cy=\"%.1f\" r=\"%.1f\" fill=\"%s\"/>\n",
			px(pos.X), py(pos.Y), r, color)
		fmt.Fprintf(&sb, "<text x=\"%.1f\" y=\"%.1f\" fill=\"%s\" font-size=\"11\" font-family=\"monospace\">%s</text>\n",
			px(pos.X)+r+3, py(pos.Y)+3, color, escapeText(p.Name))
	}

	// Star last so it sits above inner orbit strokes.
	fmt.Fprintf(&sb, "<circle cx=\"%.1f\" cy=\"%.1f\" r=\"5\" fill=\"%s\"/>\n", half, half, starColor)
	fmt.Fprintf(&sb, "<text x=\"12\" y=\"22\" fill=\"#ccccdd\" font-size=\"14\" font-family=\"monospace\">%s</text>\n",
		escapeText(sys.Star.Name))

	sb.WriteString("</svg>\n")
	return sb.String()
}

func writeOrbitPath(sb *strings.Builder, p system.Planet, px, py func(float64) float64) {
	pts := orbit.Path(p.Elements.SemiMajorAxis, p.Elements.Eccentricity, p.Elements.ArgPeriapsisDeg, orbit.DefaultPathPoints)
	sb.WriteString(`<path fill="none" stroke="` + orbitColor + `" stroke-width="1" d="M`)
	for i, pt := range pts {
		if i == 0 {
			fmt.Fprintf(sb, "%.1f,%.1f", px(pt.X), py(pt.Y))
		} else {
			fmt.Fprintf(sb, " L%.1f,%.1f", px(pt.X), py(pt.Y))
		}
	}
	sb.WriteString("\"/>\n")
}

// writeApsides marks periapsis and apoapsis as small ticks on the orbit's
// major axis. Skipped for near-circular orbits where they carry no
// information.
func writeApsides(sb *strings.Builder, p system.Planet, px, py func(float64) float64) {
	if p.Elements.Eccentricity < 0.05 {
		return
	}
	peri, apo := orbit.Apsides(p.Elements.SemiMajorAxis, p.Elements.Eccentricity)
	omega := p.Elements.ArgPeriapsisDeg * math.Pi / 180
	cos, sin := math.Cos(omega), math.Sin(omega)

	fmt.Fprintf(sb, "<circle cx=\"%.1f\" cy=\"%.1f\" r=\"1.5\" fill=\"%s\"/>\n",
		px(peri*cos), py(peri*sin), apsisColor)
	fmt.Fprintf(sb, "<circle cx=\"%.1f\" cy=\"%.1f\" r=\"1.5\" fill=\"%s\"/>\n",
		px(-apo*cos), py(-apo*sin), apsisColor)
}

func escapeText(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	return r.Replace(s)
}

func planetDotRadius(radiusEarth float64) float64 {
	switch {
	case radiusEarth >= 8:
		return 6
	case radiusEarth >= 3:
		return 4.5
	case radiusEarth >= 1.5:
		return 3
	default:
		return 2
	}
}
