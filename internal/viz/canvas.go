// Package viz renders orbital systems onto a Braille-dot terminal canvas.
// Each character cell packs 2x4 sub-pixels, giving enough resolution for
// orbit ellipses at typical terminal sizes. Screen-space scaling and the
// Y-axis flip from orbital-plane coordinates happen here; the orbit
// package stays in AU.
package viz

import (
	"math"
	"strings"

	"github.com/san-kum/exosim/internal/orbit"
)

// Braille patterns: 2x4 dots per rune, Unicode offset 0x2800.
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

type Canvas struct {
	Width, Height int // character cells
	Grid          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{Width: w, Height: h, Grid: make([][]rune, h)}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800
		}
	}
	return c
}

// Set lights the sub-pixel at (x, y); the sub-pixel space is
// (Width*2) x (Height*4).
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
}

// SetRune places a plain rune at a character cell, overwriting any dots.
// Used for star and planet glyphs that should read as solid markers.
func (c *Canvas) SetRune(col, row int, r rune) {
	if col < 0 || row < 0 || col >= c.Width || row >= c.Height {
		return
	}
	c.Grid[row][col] = r
}

func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800
		}
	}
}

// DrawLine draws a sub-pixel line with Bresenham's algorithm.
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	dx, dy := absInt(x1-x0), absInt(y1-y0)
	sx, sy := -1, -1
	if x0 < x1 {
		sx = 1
	}
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy
	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

func (c *Canvas) String() string {
	var sb strings.Builder
	for _, row := range c.Grid {
		sb.WriteString(string(row))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Projection maps orbital-plane AU coordinates onto canvas sub-pixels,
// centered on the star, with Y flipped (screen Y grows downward). The
// aspect factor compensates for Braille cells being taller than wide.
type Projection struct {
	scale   float64 // sub-pixels per AU
	centerX float64
	centerY float64
}

// NewProjection fits an orbital radius (AU) into the canvas with a small
// margin. radiusAU must cover the outermost apoapsis to keep every orbit
// on screen.
func NewProjection(c *Canvas, radiusAU float64) Projection {
	if radiusAU <= 0 {
		radiusAU = 1
	}
	subW := float64(c.Width * 2)
	subH := float64(c.Height * 4)
	// Terminal cells are roughly twice as tall as wide; with 2x4 Braille
	// sub-pixels the sub-pixel grid comes out near-square, so a single
	// uniform scale keeps circles circular.
	margin := 0.92
	scale := math.Min(subW, subH) * margin / (2 * radiusAU)
	return Projection{scale: scale, centerX: subW / 2, centerY: subH / 2}
}

// Point converts AU coordinates to sub-pixel coordinates.
func (p Projection) Point(xAU, yAU float64) (int, int) {
	x := p.centerX + xAU*p.scale
	y := p.centerY - yAU*p.scale // flip: +Y is up in the orbital plane
	return int(math.Round(x)), int(math.Round(y))
}

// Cell converts AU coordinates to character-cell coordinates.
func (p Projection) Cell(xAU, yAU float64) (int, int) {
	x, y := p.Point(xAU, yAU)
	return x / 2, y / 4
}

// DrawPath draws a polyline of orbital-plane points, such as an orbit
// ellipse from orbit.Path.
func (c *Canvas) DrawPath(proj Projection, pts []orbit.Point) {
	for i := 1; i < len(pts); i++ {
		x0, y0 := proj.Point(pts[i-1].X, pts[i-1].Y)
		x1, y1 := proj.Point(pts[i].X, pts[i].Y)
		c.DrawLine(x0, y0, x1, y1)
	}
}

// DrawRing draws a circle of the given radius (AU) around the star;
// two calls bracket a habitable-zone annulus.
func (c *Canvas) DrawRing(proj Projection, radiusAU float64) {
	steps := 180
	px, py := proj.Point(radiusAU, 0)
	for i := 1; i <= steps; i++ {
		theta := 2 * math.Pi * float64(i) / float64(steps)
		x, y := proj.Point(radiusAU*math.Cos(theta), radiusAU*math.Sin(theta))
		c.DrawLine(px, py, x, y)
		px, py = x, y
	}
}

// PlanetGlyph picks a marker rune by display radius in Earth radii.
func PlanetGlyph(radiusEarth float64) rune {
	switch {
	case radiusEarth >= 8:
		return '@'
	case radiusEarth >= 3:
		return 'O'
	case radiusEarth >= 1.5:
		return 'o'
	default:
		return '.'
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
