package factors

// defaultWaterFactors maps water treatment types to emission factors in
// kg CO2-e per kL supplied or treated.
//
// Source: Australian water utility disclosure data. Data vintage: 2024.
var defaultWaterFactors = map[string]float64{
	"potable":              0.395,
	"recycled":             0.21,
	"wastewater_treatment": 0.73,
	"tanker_delivered":     1.2,
}

// defaultTemporaryWorks maps temporary-works systems to embodied factors
// in kg CO2-e per m² of installed system. The scope calculator amortizes
// these over the number of reuses.
var defaultTemporaryWorks = map[string]float64{
	"scaffolding":      7.2,
	"formwork_plywood": 11.8,
	"formwork_steel":   15.4,
	"hoarding":         9.4,
	"site_fencing":     3.1,
	"propping":         5.6,
}
