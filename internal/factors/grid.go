package factors

// defaultGridFactors maps Australian state and territory codes to grid
// electricity intensity. Values are in kg CO2-e per kWh (scope 2).
//
// Source: Australian National Greenhouse Accounts factors, state marginal
// grid intensities. Data vintage: 2024 (update annually).
//
// ACT carries an explicit zero: the territory's electricity supply is
// contracted 100% renewable, so a positive energy quantity there must
// compute to exactly zero emissions. This is a present, zero-valued
// record, not a missing lookup.
var defaultGridFactors = map[string]float64{
	"NSW": 0.68, // New South Wales (black coal dominated)
	"VIC": 1.02, // Victoria (brown coal, highest intensity)
	"QLD": 0.73, // Queensland
	"SA":  0.25, // South Australia (high wind/solar share)
	"WA":  0.51, // Western Australia (SWIS)
	"TAS": 0.12, // Tasmania (hydroelectric)
	"NT":  0.54, // Northern Territory
	"ACT": 0.0,  // Australian Capital Territory (100% renewable contract)
}

// DefaultGridFactor is the national average grid intensity in kg CO2-e per
// kWh. The registry never applies it silently: GridFactor reports unknown
// regions as not found, and whether to fall back to this constant is the
// caller's policy.
const DefaultGridFactor = 0.63

// GridFactor returns the grid intensity for a state or territory code in
// kg CO2-e per kWh. A zero factor for a known region is a valid result;
// an unknown region returns (0, false).
func (r *Registry) GridFactor(region string) (float64, bool) {
	factor, ok := r.grid[region]
	return factor, ok
}
