// Package catalog defines the raw exoplanet records the simulator consumes
// and loaders for the cleaned NASA Exoplanet Archive export. Any numeric
// field except the orbital period may be missing; missing values are nil
// pointers and are filled later by the estimate package.
package catalog

// Planet type labels assigned by Classify.
const (
	TypeUnknown     = "unknown"
	TypeUltraShort  = "ultra-short-period"
	TypeHotJupiter  = "hot-jupiter"
	TypeColdJupiter = "cold-jupiter"
	TypeNeptuneLike = "neptune-like"
	TypeHotNeptune  = "hot-neptune"
	TypeSubNeptune  = "sub-neptune"
	TypeSuperEarth  = "super-earth"
	TypeRocky       = "rocky"
)

// Planet is one catalog record. Period is the only required numeric field;
// rows without it are dropped at load time since there is nothing to
// animate. Records are immutable inputs: the simulator never writes back.
type Planet struct {
	Name            string  `json:"name"`
	HostStar        string  `json:"hostStar"`
	PeriodDays      float64 `json:"period"`
	DetectionMethod string  `json:"detectionMethod,omitempty"`
	PlanetType      string  `json:"planetType,omitempty"`

	MassEarth     *float64 `json:"mass,omitempty"`   // Earth masses
	RadiusEarth   *float64 `json:"radius,omitempty"` // Earth radii
	Eccentricity  *float64 `json:"eccentricity,omitempty"`
	SeparationAU  *float64 `json:"separation,omitempty"` // semi-major axis, AU
	DiscoveryYear *int     `json:"discoveryYear,omitempty"`

	// Host-star context, duplicated onto each record by the archive export.
	StarSpectralType string   `json:"starSpectralType,omitempty"`
	StarTemperature  *float64 `json:"starTemperature,omitempty"` // K
	StarRadius       *float64 `json:"starRadius,omitempty"`      // solar radii
	StarMass         *float64 `json:"starMass,omitempty"`        // solar masses
	DistanceParsecs  *float64 `json:"distance,omitempty"`

	// SolarSystem marks entries from the fixed local dataset; they are
	// excluded from catalog grouping.
	SolarSystem bool `json:"isSolarSystem,omitempty"`
}

// Float returns a pointer to v, for building records with optional fields.
func Float(v float64) *float64 { return &v }

// Int returns a pointer to v.
func Int(v int) *int { return &v }
