package config

import "sort"

// Preset is a named bundle of view settings. Presets override the config
// file; explicit CLI flags still win over both.
type Preset struct {
	Speed      float64
	FPS        int
	ShowOrbits bool
	ShowHZ     bool
	ShowLabels bool
	Audio      bool
}

var Presets = map[string]*Preset{
	"calm": {
		Speed: 1.0, FPS: 30,
		ShowOrbits: true, ShowHZ: true, ShowLabels: true,
	},
	"tour": {
		Speed: 5.0, FPS: 30,
		ShowOrbits: true, ShowHZ: true, ShowLabels: true,
	},
	"minimal": {
		Speed: 1.0, FPS: 30,
		ShowOrbits: false, ShowHZ: false, ShowLabels: false,
	},
	"sonic": {
		Speed: 2.0, FPS: 30,
		ShowOrbits: true, ShowHZ: false, ShowLabels: false,
		Audio: true,
	},
	"survey": {
		Speed: 10.0, FPS: 60,
		ShowOrbits: true, ShowHZ: true, ShowLabels: false,
	},
}

func GetPreset(name string) *Preset {
	return Presets[name]
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Apply copies the preset's view settings onto cfg, leaving paths and
// export sizes untouched.
func (p *Preset) Apply(cfg *Config) {
	cfg.Speed = p.Speed
	cfg.FPS = p.FPS
	cfg.ShowOrbits = p.ShowOrbits
	cfg.ShowHZ = p.ShowHZ
	cfg.ShowLabels = p.ShowLabels
	cfg.Audio = p.Audio
	cfg.clamp()
}
