package catalog

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
)

// LoadJSON reads a catalog from a JSON array of records.
func LoadJSON(path string) ([]Planet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var planets []Planet
	if err := json.Unmarshal(data, &planets); err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return finalize(planets), nil
}

// LoadCSV reads the cleaned archive CSV (one header row, columns named as
// in the JSON tags). Rows without a period are skipped: they cannot be
// animated. Unknown columns are ignored so newer exports still load.
func LoadCSV(path string) ([]Planet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	if len(records) < 2 {
		return []Planet{}, nil
	}

	col := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		col[strings.TrimSpace(name)] = i
	}

	field := func(row []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	planets := make([]Planet, 0, len(records)-1)
	for _, row := range records[1:] {
		period, ok := parseFloat(field(row, "period"))
		if !ok || period <= 0 {
			continue
		}
		year := (*int)(nil)
		if y, ok := parseFloat(field(row, "discoveryYear")); ok {
			year = Int(int(y))
		}
		planets = append(planets, Planet{
			Name:             field(row, "name"),
			HostStar:         field(row, "hostStar"),
			PeriodDays:       period,
			DetectionMethod:  field(row, "detectionMethod"),
			PlanetType:       field(row, "planetType"),
			MassEarth:        optFloat(field(row, "mass")),
			RadiusEarth:      optFloat(field(row, "radius")),
			Eccentricity:     optFloat(field(row, "eccentricity")),
			SeparationAU:     optFloat(field(row, "separation")),
			DiscoveryYear:    year,
			StarSpectralType: field(row, "starSpectralType"),
			StarTemperature:  optFloat(field(row, "starTemperature")),
			StarRadius:       optFloat(field(row, "starRadius")),
			StarMass:         optFloat(field(row, "starMass")),
			DistanceParsecs:  optFloat(field(row, "distance")),
		})
	}
	return finalize(planets), nil
}

// Load picks a loader from the file extension; .csv and .json supported.
func Load(path string) ([]Planet, error) {
	switch {
	case strings.HasSuffix(path, ".csv"):
		return LoadCSV(path)
	case strings.HasSuffix(path, ".json"):
		return LoadJSON(path)
	default:
		return nil, fmt.Errorf("catalog %s: unsupported format", path)
	}
}

// finalize drops period-less rows and fills in missing type labels.
func finalize(planets []Planet) []Planet {
	out := planets[:0]
	for _, p := range planets {
		if p.PeriodDays <= 0 || math.IsNaN(p.PeriodDays) || math.IsInf(p.PeriodDays, 0) {
			continue
		}
		if p.PlanetType == "" {
			p.PlanetType = Classify(p.MassEarth, p.RadiusEarth, p.PeriodDays)
		}
		out = append(out, p)
	}
	return out
}

func parseFloat(s string) (float64, bool) {
	if s == "" || s == "nan" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

func optFloat(s string) *float64 {
	if v, ok := parseFloat(s); ok {
		return Float(v)
	}
	return nil
}
