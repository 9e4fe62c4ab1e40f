package factors

// defaultTransportModes maps freight transport modes to emission factors
// in kg CO2-e per tonne-km.
//
// Source: NGA transport factors and NTM freight data. Data vintage: 2024.
var defaultTransportModes = map[string]float64{
	"road_rigid":       0.62,  // small rigid truck, part loads
	"road_articulated": 0.22,  // articulated truck, full loads
	"rail":             0.055, // bulk rail freight
	"sea":              0.016, // coastal shipping
	"air":              1.53,  // domestic air freight
}

// defaultCommutingModes maps workforce commute modes to emission factors
// in kg CO2-e per passenger-km. Active modes carry an explicit zero so a
// known mode never falls through to a missing-factor path.
var defaultCommutingModes = map[string]float64{
	"car_petrol": 0.185,
	"car_diesel": 0.168,
	"carpool":    0.093, // petrol car shared between two occupants
	"motorcycle": 0.094,
	"bus":        0.082,
	"train":      0.035,
	"bicycle":    0.0,
	"walking":    0.0,
}
