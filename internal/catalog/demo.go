package catalog

// Demo returns a small built-in catalog so the viewer works with no data
// file: a compact resonant chain (TRAPPIST-1), a large multi-planet system
// (Kepler-90), the first hot Jupiter (51 Peg), and a transiting giant on a
// binary primary (HD 189733 A). Values are rounded archive numbers.
func Demo() []Planet {
	trappist := func(name string, period, radius, mass float64, year int) Planet {
		return Planet{
			Name: name, HostStar: "TRAPPIST-1", PeriodDays: period,
			RadiusEarth: Float(radius), MassEarth: Float(mass),
			DetectionMethod: "transit-other", DiscoveryYear: Int(year),
			StarSpectralType: "M8V",
			StarTemperature:  Float(2566), StarRadius: Float(0.119),
			StarMass: Float(0.0898), DistanceParsecs: Float(12.43),
		}
	}
	kepler90 := func(name string, period, radius float64, year int) Planet {
		return Planet{
			Name: name, HostStar: "Kepler-90", PeriodDays: period,
			RadiusEarth:     Float(radius),
			DetectionMethod: "transit-kepler", DiscoveryYear: Int(year),
			StarSpectralType: "G0V",
			StarTemperature:  Float(6080), StarRadius: Float(1.2),
			StarMass: Float(1.2), DistanceParsecs: Float(839),
		}
	}

	return []Planet{
		trappist("TRAPPIST-1 b", 1.5109, 1.116, 1.374, 2016),
		trappist("TRAPPIST-1 c", 2.4218, 1.097, 1.308, 2016),
		trappist("TRAPPIST-1 d", 4.0496, 0.788, 0.388, 2016),
		trappist("TRAPPIST-1 e", 6.0993, 0.920, 0.692, 2017),
		trappist("TRAPPIST-1 f", 9.2065, 1.045, 1.039, 2017),
		trappist("TRAPPIST-1 g", 12.3524, 1.129, 1.321, 2017),
		trappist("TRAPPIST-1 h", 18.7727, 0.755, 0.326, 2017),

		kepler90("Kepler-90 b", 7.0083, 1.31, 2013),
		kepler90("Kepler-90 c", 8.7194, 1.18, 2013),
		kepler90("Kepler-90 i", 14.4491, 1.32, 2017),
		kepler90("Kepler-90 d", 59.7368, 2.87, 2013),
		kepler90("Kepler-90 e", 91.9391, 2.66, 2013),
		kepler90("Kepler-90 f", 124.9144, 2.88, 2013),
		kepler90("Kepler-90 g", 210.6069, 8.13, 2013),
		kepler90("Kepler-90 h", 331.6006, 11.32, 2013),

		{
			Name: "51 Peg b", HostStar: "51 Peg", PeriodDays: 4.2308,
			MassEarth: Float(146.2), Eccentricity: Float(0.013),
			SeparationAU:    Float(0.0527),
			DetectionMethod: "radial-velocity", DiscoveryYear: Int(1995),
			StarSpectralType: "G2IV",
			StarTemperature:  Float(5793), StarRadius: Float(1.27),
			StarMass: Float(1.11), DistanceParsecs: Float(15.47),
		},
		{
			Name: "HD 189733 b", HostStar: "HD 189733 A", PeriodDays: 2.2186,
			MassEarth: Float(361.4), RadiusEarth: Float(12.7),
			Eccentricity: Float(0.027), SeparationAU: Float(0.0312),
			DetectionMethod: "transit-other", DiscoveryYear: Int(2005),
			StarSpectralType: "K2V",
			StarTemperature:  Float(4875), StarRadius: Float(0.75),
			StarMass: Float(0.85), DistanceParsecs: Float(19.76),
		},
	}
}
