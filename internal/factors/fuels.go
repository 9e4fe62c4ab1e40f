package factors

// Fuel tags the energy source of a consumption record.
type Fuel string

const (
	FuelDiesel      Fuel = "diesel"
	FuelPetrol      Fuel = "petrol"
	FuelLPG         Fuel = "lpg"
	FuelNaturalGas  Fuel = "natural_gas"
	FuelElectricity Fuel = "electricity"
)

// defaultFuelFactors maps fuels to combustion emission factors.
// Liquid fuels are kg CO2-e per litre; natural gas is kg CO2-e per MJ.
//
// Source: Australian National Greenhouse Accounts (NGA) factors,
// scope 1 fuel combustion. Data vintage: 2024.
var defaultFuelFactors = map[Fuel]float64{
	FuelDiesel:     2.68,   // kg CO2-e / L
	FuelPetrol:     2.31,   // kg CO2-e / L
	FuelLPG:        1.51,   // kg CO2-e / L
	FuelNaturalGas: 0.0515, // kg CO2-e / MJ
}
