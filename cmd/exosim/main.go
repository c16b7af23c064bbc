package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/stat"

	"github.com/san-kum/exosim/internal/audio"
	"github.com/san-kum/exosim/internal/catalog"
	"github.com/san-kum/exosim/internal/config"
	"github.com/san-kum/exosim/internal/export"
	"github.com/san-kum/exosim/internal/orbit"
	"github.com/san-kum/exosim/internal/storage"
	"github.com/san-kum/exosim/internal/system"
	"github.com/san-kum/exosim/internal/tui"
)

var (
	catalogPath string
	configFile  string
	dataDir     string
	presetName  string
	speed       float64
	frameRate   int
	enableAudio bool
	noHZ        bool
	noOrbits    bool
	noLabels    bool

	exportTime float64
	exportSize int
	exportOut  string
	plotPoints int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "exosim",
		Short: "exoplanet system simulator",
		RunE:  runLive,
	}

	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "catalog file (csv or json); built-in demo if empty")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".exosim", "data directory")

	liveCmd := &cobra.Command{
		Use:   "live [host]",
		Short: "animated orbit viewer",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLive,
	}
	for _, cmd := range []*cobra.Command{rootCmd, liveCmd} {
		cmd.Flags().StringVar(&presetName, "preset", "", "view preset (see 'exosim presets')")
		cmd.Flags().Float64Var(&speed, "speed", config.DefaultSpeed, "simulated days per real second")
		cmd.Flags().IntVar(&frameRate, "fps", config.DefaultFPS, "frame rate")
		cmd.Flags().BoolVar(&enableAudio, "audio", false, "sonify orbits")
		cmd.Flags().BoolVar(&noHZ, "no-hz", false, "hide habitable zone")
		cmd.Flags().BoolVar(&noOrbits, "no-orbits", false, "hide orbit paths")
		cmd.Flags().BoolVar(&noLabels, "no-labels", false, "hide planet labels")
	}

	runCmd := &cobra.Command{
		Use:   "run [host]",
		Short: "build a system and save it",
		Args:  cobra.ExactArgs(1),
		RunE:  runBuild,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved systems",
		RunE:  listRuns,
	}

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "catalog statistics",
		RunE:  catalogStats,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [host]",
		Short: "plot orbital distance over one period",
		Args:  cobra.ExactArgs(1),
		RunE:  plotSystem,
	}
	plotCmd.Flags().IntVar(&plotPoints, "points", 120, "samples per period")

	exportCmd := &cobra.Command{
		Use:   "export [host]",
		Short: "export a system as SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSystem,
	}
	exportCmd.Flags().Float64Var(&exportTime, "time", 0, "simulation time (days)")
	exportCmd.Flags().IntVar(&exportSize, "size", config.DefaultSVGSize, "image size (pixels)")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "output file (stdout if empty)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list view presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Printf("  %-8s speed %.0fx", name, p.Speed)
				if p.Audio {
					fmt.Print(", audio")
				}
				if !p.ShowOrbits && !p.ShowHZ && !p.ShowLabels {
					fmt.Print(", bare canvas")
				}
				fmt.Println()
			}
			return nil
		},
	}

	infoCmd := &cobra.Command{
		Use:   "info [host]",
		Short: "print a built system as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  showInfo,
	}

	rootCmd.AddCommand(liveCmd, runCmd, listCmd, statsCmd, plotCmd, exportCmd, presetsCmd, infoCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if presetName != "" {
		p := config.GetPreset(presetName)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", presetName, config.ListPresets())
		}
		p.Apply(cfg)
	}

	// CLI flags override preset and file.
	if catalogPath != "" {
		cfg.Catalog = catalogPath
	}
	if cmd.Flags().Changed("speed") {
		cfg.Speed = speed
	}
	if cmd.Flags().Changed("fps") {
		cfg.FPS = frameRate
	}
	if cmd.Flags().Changed("audio") {
		cfg.Audio = enableAudio
	}
	if noHZ {
		cfg.ShowHZ = false
	}
	if noOrbits {
		cfg.ShowOrbits = false
	}
	if noLabels {
		cfg.ShowLabels = false
	}
	return cfg, nil
}

func loadPlanets(cfg *config.Config) ([]catalog.Planet, error) {
	if cfg.Catalog == "" {
		return catalog.Demo(), nil
	}
	return catalog.Load(cfg.Catalog)
}

// buildOne builds the system for one host, matching case-insensitively so
// "trappist-1" finds "TRAPPIST-1".
func buildOne(planets []catalog.Planet, host string) (*system.System, error) {
	groups := system.GroupByHost(planets)
	if group, ok := groups[host]; ok {
		return system.Build(host, group)
	}
	for name, group := range groups {
		if strings.EqualFold(name, host) {
			return system.Build(name, group)
		}
	}
	return nil, fmt.Errorf("host %q not in catalog (%d hosts)", host, len(groups))
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	planets, err := loadPlanets(cfg)
	if err != nil {
		return err
	}

	var systems []*system.System
	if len(args) == 1 {
		sys, err := buildOne(planets, args[0])
		if err != nil {
			return err
		}
		systems = []*system.System{sys}
	} else {
		systems, err = system.BuildAll(planets)
		if err != nil {
			return err
		}
	}

	var son *audio.Sonifier
	if cfg.Audio {
		son = audio.NewSonifier()
	}
	return tui.Run(systems, cfg, son)
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	planets, err := loadPlanets(cfg)
	if err != nil {
		return err
	}
	sys, err := buildOne(planets, args[0])
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(sys)
	if err != nil {
		return err
	}

	fmt.Printf("saved %s\n", runID)
	fmt.Printf("planets: %d\n", len(sys.Planets))
	if hz := sys.HabitableZone; hz != nil {
		fmt.Printf("habitable zone: %.3f – %.3f AU\n", hz.InnerAU, hz.OuterAU)
	}
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no saved systems")
		return nil
	}

	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tHOST\tSAVED\tPLANETS\tTRAITS")
	for _, run := range runs {
		var traits []string
		if run.MultiPlanet {
			traits = append(traits, "multi")
		}
		if run.Resonant {
			traits = append(traits, "resonant")
		}
		if run.HasHZPlanet {
			traits = append(traits, "hz")
		}
		if run.Binary {
			traits = append(traits, "binary")
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n",
			run.ID, run.Host,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.PlanetCount,
			strings.Join(traits, ","))
	}
	return w.Flush()
}

func catalogStats(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	planets, err := loadPlanets(cfg)
	if err != nil {
		return err
	}
	if len(planets) == 0 {
		return fmt.Errorf("empty catalog")
	}

	periods := make([]float64, 0, len(planets))
	radii := make([]float64, 0, len(planets))
	types := make(map[string]int)
	hosts := make(map[string]int)
	for _, p := range planets {
		periods = append(periods, p.PeriodDays)
		if p.RadiusEarth != nil {
			radii = append(radii, *p.RadiusEarth)
		}
		types[p.PlanetType]++
		hosts[p.HostStar]++
	}

	fmt.Printf("planets: %d across %d hosts\n\n", len(planets), len(hosts))

	sort.Float64s(periods)
	mean, std := stat.MeanStdDev(periods, nil)
	fmt.Printf("period (days)   mean %.1f  stddev %.1f  median %.1f\n",
		mean, std, stat.Quantile(0.5, stat.Empirical, periods, nil))

	if len(radii) > 1 {
		sort.Float64s(radii)
		mean, std = stat.MeanStdDev(radii, nil)
		fmt.Printf("radius (R⊕)     mean %.2f  stddev %.2f  median %.2f  (%d measured)\n",
			mean, std, stat.Quantile(0.5, stat.Empirical, radii, nil), len(radii))
	}

	fmt.Println("\nby type:")
	names := make([]string, 0, len(types))
	for name := range types {
		names = append(names, name)
	}
	sort.Strings(names)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, name := range names {
		if name == "" {
			name = catalog.TypeUnknown
		}
		fmt.Fprintf(w, "  %s\t%d\n", name, types[name])
	}
	return w.Flush()
}

func plotSystem(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	planets, err := loadPlanets(cfg)
	if err != nil {
		return err
	}
	sys, err := buildOne(planets, args[0])
	if err != nil {
		return err
	}

	if plotPoints < 2 {
		plotPoints = 120
	}

	fmt.Printf("%s: orbital distance over one period\n\n", sys.Star.Name)
	for _, p := range sys.Planets {
		data := make([]float64, plotPoints)
		for i := range data {
			t := p.PeriodDays * float64(i) / float64(plotPoints-1)
			pos := orbit.PlanetAt(p.Elements, t, sys.Star.MassSolar)
			data[i] = pos.R
		}

		caption := fmt.Sprintf("%s  r (AU), P=%.2f d, e=%.3f", p.Name, p.PeriodDays, p.Elements.Eccentricity)
		graph := asciigraph.Plot(data,
			asciigraph.Height(8),
			asciigraph.Width(72),
			asciigraph.Caption(caption),
		)
		fmt.Println(graph)
		fmt.Println()
	}
	return nil
}

func exportSystem(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	planets, err := loadPlanets(cfg)
	if err != nil {
		return err
	}
	sys, err := buildOne(planets, args[0])
	if err != nil {
		return err
	}

	svg := export.SystemSVG(sys, exportTime, exportSize)
	if exportOut == "" {
		fmt.Print(svg)
		return nil
	}
	if err := os.WriteFile(exportOut, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", exportOut)
	return nil
}

func showInfo(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	planets, err := loadPlanets(cfg)
	if err != nil {
		return err
	}
	sys, err := buildOne(planets, args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(sys)
}
