package factors

// defaultElectricEquipment maps mains-powered site equipment to electrical
// draw in kW per operating hour. Emissions come from the regional grid
// factor, not a fuel factor.
var defaultElectricEquipment = map[string]float64{
	"tower_crane_electric":   45,
	"hoist":                  18,
	"concrete_pump_electric": 90,
	"welder":                 9,
	"compressor":             15,
	"lighting_tower_led":     2.4,
}

// defaultFacilities maps site facility types to daily electricity
// consumption in kWh per day.
var defaultFacilities = map[string]float64{
	"site_office": 68,
	"amenities":   40,
	"workshop":    55,
	"site_shed":   25,
	"first_aid":   18,
}
