package factors

// Disposal methods accepted by WasteFactor.
const (
	DisposalLandfill  = "landfill"
	DisposalRecycling = "recycling"
)

// defaultWasteFactors maps waste material → disposal method → emission
// factor in kg CO2-e per tonne.
//
// For every material the landfill rate is higher than the recycling rate
// for the same material. Timber and mixed waste dominate because of
// landfill methane generation.
//
// Source: NGA waste chapter, C&D waste streams. Data vintage: 2024.
var defaultWasteFactors = map[string]map[string]float64{
	"concrete": {
		DisposalLandfill:  12,
		DisposalRecycling: 4,
	},
	"brick": {
		DisposalLandfill:  12,
		DisposalRecycling: 5,
	},
	"steel": {
		DisposalLandfill:  25,
		DisposalRecycling: 10,
	},
	"timber": {
		DisposalLandfill:  1430,
		DisposalRecycling: 42,
	},
	"plasterboard": {
		DisposalLandfill:  210,
		DisposalRecycling: 30,
	},
	"plastics": {
		DisposalLandfill:  60,
		DisposalRecycling: 21,
	},
	"glass": {
		DisposalLandfill:  9,
		DisposalRecycling: 6,
	},
	"mixed": {
		DisposalLandfill:  290,
		DisposalRecycling: 45,
	},
}
