package factors

// PlantRecord describes the fuel consumption of a piece of fuel-burning
// site plant: equipment, generators, or heating appliances.
type PlantRecord struct {
	// Fuel is the fuel the plant burns.
	Fuel Fuel `yaml:"fuel"`

	// RatePerHour is consumption per operating hour: litres for liquid
	// fuels, MJ for natural gas.
	RatePerHour float64 `yaml:"rate_per_hour"`
}

// VehicleRecord describes the fuel consumption of a site vehicle.
type VehicleRecord struct {
	// Fuel is the fuel the vehicle burns.
	Fuel Fuel `yaml:"fuel"`

	// LitresPer100Km is consumption per 100 km travelled.
	LitresPer100Km float64 `yaml:"litres_per_100km"`
}

// defaultEquipment maps plant category → model → consumption record.
// Rates are typical duty-cycle figures for construction plant, litres of
// diesel per operating hour unless tagged otherwise.
//
// Source: manufacturer duty-cycle data and industry plant guides.
// Data vintage: 2024.
var defaultEquipment = map[string]map[string]PlantRecord{
	"excavators": {
		"mini_3t":      {Fuel: FuelDiesel, RatePerHour: 5},
		"standard_13t": {Fuel: FuelDiesel, RatePerHour: 18},
		"large_30t":    {Fuel: FuelDiesel, RatePerHour: 28},
	},
	"cranes": {
		"tower_crane":      {Fuel: FuelDiesel, RatePerHour: 16},
		"mobile_crane_50t": {Fuel: FuelDiesel, RatePerHour: 22},
		"crawler_crane":    {Fuel: FuelDiesel, RatePerHour: 30},
	},
	"bulldozers": {
		"small_d4":  {Fuel: FuelDiesel, RatePerHour: 16},
		"medium_d6": {Fuel: FuelDiesel, RatePerHour: 24},
	},
	"loaders": {
		"skid_steer":   {Fuel: FuelDiesel, RatePerHour: 8},
		"wheel_loader": {Fuel: FuelDiesel, RatePerHour: 14},
	},
	"compactors": {
		"roller_12t": {Fuel: FuelDiesel, RatePerHour: 11},
	},
	"piling_rigs": {
		"cfa_rig": {Fuel: FuelDiesel, RatePerHour: 35},
	},
	"concrete_pumps": {
		"boom_pump": {Fuel: FuelDiesel, RatePerHour: 20},
	},
}

// defaultVehicles maps vehicle category → model → consumption record.
var defaultVehicles = map[string]map[string]VehicleRecord{
	"light": {
		"ute_diesel": {Fuel: FuelDiesel, LitresPer100Km: 11},
		"van_petrol": {Fuel: FuelPetrol, LitresPer100Km: 10.5},
		"car_petrol": {Fuel: FuelPetrol, LitresPer100Km: 8.5},
	},
	"trucks": {
		"light_truck_diesel": {Fuel: FuelDiesel, LitresPer100Km: 18},
		"rigid_truck_diesel": {Fuel: FuelDiesel, LitresPer100Km: 28},
		"heavy_truck_diesel": {Fuel: FuelDiesel, LitresPer100Km: 35},
	},
}

// defaultGenerators maps generator size classes to diesel consumption at
// typical site load.
var defaultGenerators = map[string]PlantRecord{
	"20kva":  {Fuel: FuelDiesel, RatePerHour: 4.5},
	"60kva":  {Fuel: FuelDiesel, RatePerHour: 11},
	"100kva": {Fuel: FuelDiesel, RatePerHour: 18},
	"200kva": {Fuel: FuelDiesel, RatePerHour: 32},
	"500kva": {Fuel: FuelDiesel, RatePerHour: 70},
}

// defaultHeating maps site heating appliances to consumption records.
// Gas heaters are rated in MJ per hour; the natural gas fuel factor is
// per MJ, so the arithmetic stays unit-consistent.
var defaultHeating = map[string]PlantRecord{
	"diesel_heater": {Fuel: FuelDiesel, RatePerHour: 6},
	"lpg_heater":    {Fuel: FuelLPG, RatePerHour: 5},
	"gas_heater":    {Fuel: FuelNaturalGas, RatePerHour: 120},
}
