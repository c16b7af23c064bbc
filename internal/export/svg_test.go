package export

import (
	"strings"
	"testing"

	"github.com/san-kum/exosim/internal/catalog"
	"github.com/san-kum/exosim/internal/system"
)

func demoSystem(t *testing.T, host string) *system.System {
	t.Helper()
	groups := system.GroupByHost(catalog.Demo())
	sys, err := system.Build(host, groups[host])
	if err != nil {
		t.Fatal(err)
	}
	return sys
}

func TestSystemSVGStructure(t *testing.T) {
	sys := demoSystem(t, "TRAPPIST-1")
	svg := SystemSVG(sys, 0, 600)

	if !strings.HasPrefix(svg, `<?xml version="1.0"`) {
		t.Error("missing XML declaration")
	}
	if !strings.Contains(svg, "</svg>") {
		t.Error("unterminated SVG document")
	}
	if !strings.Contains(svg, "TRAPPIST-1") {
		t.Error("missing system title")
	}

	// One orbit path per planet.
	if got := strings.Count(svg, "<path"); got != len(sys.Planets) {
		t.Errorf("expected %d orbit paths, got %d", len(sys.Planets), got)
	}

	// Every planet is labeled.
	for _, p := range sys.Planets {
		if !strings.Contains(svg, p.Name) {
			t.Errorf("planet %s not labeled", p.Name)
		}
	}
}

func TestSystemSVGDefaultSize(t *testing.T) {
	sys := demoSystem(t, "51 Peg")
	svg := SystemSVG(sys, 10, 0)
	if !strings.Contains(svg, `width="800"`) {
		t.Error("zero size should fall back to 800")
	}
}

func TestEscapeText(t *testing.T) {
	if got := escapeText("a <b> & c"); got != "a &lt;b&gt; &amp; c" {
		t.Errorf("escapeText = %q", got)
	}
}
