// Package factors provides the emission-factor registry for construction
// site greenhouse-gas accounting: fuel combustion factors, regional grid
// intensities, plant and vehicle consumption rates, transport, waste, water
// and commuting factors, and material embodied-carbon coefficients.
//
// The registry is loaded once at startup and never mutated afterwards, so
// every accessor is safe to call concurrently from multiple calculators.
// Lookups return (value, false) for unknown keys rather than an error; the
// calling calculator owns the fallback policy.
package factors

// Domain identifies a top-level factor table in the registry.
type Domain string

const (
	DomainEquipment         Domain = "equipment"
	DomainVehicles          Domain = "vehicles"
	DomainGenerators        Domain = "generators"
	DomainHeating           Domain = "heating"
	DomainElectricEquipment Domain = "electric_equipment"
	DomainFacilities        Domain = "facilities"
	DomainGrid              Domain = "grid"
	DomainTransport         Domain = "transport"
	DomainWaste             Domain = "waste"
	DomainWater             Domain = "water"
	DomainCommuting         Domain = "commuting"
	DomainTemporaryWorks    Domain = "temporary_works"
	DomainMaterials         Domain = "materials"
	DomainFuels             Domain = "fuels"
)

// Record is the generic lookup result for the Lookup contract. Typed
// accessors (Equipment, GridFactor, Material, ...) are preferred inside the
// calculators; Record exists for boundary collaborators that address the
// registry by path.
type Record struct {
	// Domain is the table the record came from.
	Domain Domain

	// Path is the category path within the domain, e.g.
	// ["excavators", "standard_13t"].
	Path []string

	// Fuel is the fuel or energy tag, where the domain has one.
	Fuel Fuel

	// ConsumptionRate is the fuel/energy consumption rate: litres or MJ
	// per operating hour for plant, litres per 100 km for vehicles, kW
	// draw for electric equipment, kWh per day for facilities. Zero for
	// domains that carry only a direct emission rate.
	ConsumptionRate float64

	// EmissionRate is the direct emission rate in kg CO2-e per unit
	// quantity (per kWh, per tonne-km, per tonne, per kL, per
	// passenger-km, per m², or per declared material unit).
	EmissionRate float64

	// Unit is the declared unit for material records.
	Unit string
}

// Registry holds all emission-factor tables. Construct with NewRegistry and
// optionally merge caller-supplied overrides before first use; after that
// the registry must be treated as read-only.
type Registry struct {
	fuels             map[Fuel]float64
	grid              map[string]float64
	equipment         map[string]map[string]PlantRecord
	vehicles          map[string]map[string]VehicleRecord
	generators        map[string]PlantRecord
	heating           map[string]PlantRecord
	electricEquipment map[string]float64
	facilities        map[string]float64
	transport         map[string]float64
	waste             map[string]map[string]float64
	water             map[string]float64
	commuting         map[string]float64
	temporaryWorks    map[string]float64
	materials         map[string]map[string]MaterialRecord
}

// NewRegistry returns a registry populated with the default Australian
// factor set. The returned registry owns copies of the default tables, so
// applying overrides never mutates package-level data.
func NewRegistry() *Registry {
	return &Registry{
		fuels:             copyMap(defaultFuelFactors),
		grid:              copyMap(defaultGridFactors),
		equipment:         copyNested(defaultEquipment),
		vehicles:          copyNested(defaultVehicles),
		generators:        copyMap(defaultGenerators),
		heating:           copyMap(defaultHeating),
		electricEquipment: copyMap(defaultElectricEquipment),
		facilities:        copyMap(defaultFacilities),
		transport:         copyMap(defaultTransportModes),
		waste:             copyNested(defaultWasteFactors),
		water:             copyMap(defaultWaterFactors),
		commuting:         copyMap(defaultCommutingModes),
		temporaryWorks:    copyMap(defaultTemporaryWorks),
		materials:         copyNested(defaultMaterials),
	}
}

// Lookup resolves a factor record by domain and category path. It returns
// (record, true) when the path names a known factor and (zero, false)
// otherwise. Region-scoped domains (grid) take the region code as the
// single path element.
func (r *Registry) Lookup(domain Domain, path ...string) (Record, bool) {
	switch domain {
	case DomainFuels:
		if len(path) != 1 {
			return Record{}, false
		}
		rate, ok := r.FuelFactor(Fuel(path[0]))
		return Record{Domain: domain, Path: path, Fuel: Fuel(path[0]), EmissionRate: rate}, ok
	case DomainGrid:
		if len(path) != 1 {
			return Record{}, false
		}
		rate, ok := r.GridFactor(path[0])
		return Record{Domain: domain, Path: path, EmissionRate: rate}, ok
	case DomainEquipment:
		if len(path) != 2 {
			return Record{}, false
		}
		rec, ok := r.Equipment(path[0], path[1])
		return Record{Domain: domain, Path: path, Fuel: rec.Fuel, ConsumptionRate: rec.RatePerHour}, ok
	case DomainVehicles:
		if len(path) != 2 {
			return Record{}, false
		}
		rec, ok := r.Vehicle(path[0], path[1])
		return Record{Domain: domain, Path: path, Fuel: rec.Fuel, ConsumptionRate: rec.LitresPer100Km}, ok
	case DomainGenerators:
		if len(path) != 1 {
			return Record{}, false
		}
		rec, ok := r.Generator(path[0])
		return Record{Domain: domain, Path: path, Fuel: rec.Fuel, ConsumptionRate: rec.RatePerHour}, ok
	case DomainHeating:
		if len(path) != 1 {
			return Record{}, false
		}
		rec, ok := r.Heating(path[0])
		return Record{Domain: domain, Path: path, Fuel: rec.Fuel, ConsumptionRate: rec.RatePerHour}, ok
	case DomainElectricEquipment:
		if len(path) != 1 {
			return Record{}, false
		}
		kw, ok := r.ElectricEquipment(path[0])
		return Record{Domain: domain, Path: path, Fuel: FuelElectricity, ConsumptionRate: kw}, ok
	case DomainFacilities:
		if len(path) != 1 {
			return Record{}, false
		}
		kwh, ok := r.Facility(path[0])
		return Record{Domain: domain, Path: path, Fuel: FuelElectricity, ConsumptionRate: kwh}, ok
	case DomainTransport:
		if len(path) != 1 {
			return Record{}, false
		}
		rate, ok := r.TransportMode(path[0])
		return Record{Domain: domain, Path: path, EmissionRate: rate}, ok
	case DomainWaste:
		if len(path) != 2 {
			return Record{}, false
		}
		rate, ok := r.WasteFactor(path[0], path[1])
		return Record{Domain: domain, Path: path, EmissionRate: rate}, ok
	case DomainWater:
		if len(path) != 1 {
			return Record{}, false
		}
		rate, ok := r.WaterFactor(path[0])
		return Record{Domain: domain, Path: path, EmissionRate: rate}, ok
	case DomainCommuting:
		if len(path) != 1 {
			return Record{}, false
		}
		rate, ok := r.CommuteFactor(path[0])
		return Record{Domain: domain, Path: path, EmissionRate: rate}, ok
	case DomainTemporaryWorks:
		if len(path) != 1 {
			return Record{}, false
		}
		rate, ok := r.TemporaryWorksFactor(path[0])
		return Record{Domain: domain, Path: path, EmissionRate: rate}, ok
	case DomainMaterials:
		if len(path) != 2 {
			return Record{}, false
		}
		rec, ok := r.Material(path[0], path[1])
		return Record{Domain: domain, Path: path, EmissionRate: rec.A1A3, Unit: rec.Unit}, ok
	default:
		return Record{}, false
	}
}

// FuelFactor returns the combustion emission factor for a fuel in
// kg CO2-e per litre (liquid fuels) or per MJ (gaseous fuels).
func (r *Registry) FuelFactor(fuel Fuel) (float64, bool) {
	f, ok := r.fuels[fuel]
	return f, ok
}

// Equipment returns the consumption record for a plant category and model,
// e.g. ("excavators", "standard_13t").
func (r *Registry) Equipment(category, model string) (PlantRecord, bool) {
	models, ok := r.equipment[category]
	if !ok {
		return PlantRecord{}, false
	}
	rec, ok := models[model]
	return rec, ok
}

// Vehicle returns the consumption record for a vehicle category and model.
func (r *Registry) Vehicle(category, model string) (VehicleRecord, bool) {
	models, ok := r.vehicles[category]
	if !ok {
		return VehicleRecord{}, false
	}
	rec, ok := models[model]
	return rec, ok
}

// Generator returns the consumption record for a generator size class.
func (r *Registry) Generator(model string) (PlantRecord, bool) {
	rec, ok := r.generators[model]
	return rec, ok
}

// Heating returns the consumption record for a site heating appliance.
func (r *Registry) Heating(kind string) (PlantRecord, bool) {
	rec, ok := r.heating[kind]
	return rec, ok
}

// ElectricEquipment returns the electrical draw in kW for a piece of
// mains-powered site equipment.
func (r *Registry) ElectricEquipment(kind string) (float64, bool) {
	kw, ok := r.electricEquipment[kind]
	return kw, ok
}

// Facility returns the daily electricity consumption in kWh for a site
// facility type.
func (r *Registry) Facility(kind string) (float64, bool) {
	kwh, ok := r.facilities[kind]
	return kwh, ok
}

// TransportMode returns the freight emission factor in kg CO2-e per
// tonne-km for a transport mode.
func (r *Registry) TransportMode(mode string) (float64, bool) {
	rate, ok := r.transport[mode]
	return rate, ok
}

// WasteFactor returns the disposal emission factor in kg CO2-e per tonne
// for a waste material and disposal method.
func (r *Registry) WasteFactor(material, method string) (float64, bool) {
	methods, ok := r.waste[material]
	if !ok {
		return 0, false
	}
	rate, ok := methods[method]
	return rate, ok
}

// WaterFactor returns the treatment emission factor in kg CO2-e per kL.
func (r *Registry) WaterFactor(treatment string) (float64, bool) {
	rate, ok := r.water[treatment]
	return rate, ok
}

// CommuteFactor returns the commuting emission factor in kg CO2-e per
// passenger-km for a commute mode. Active modes carry an explicit zero.
func (r *Registry) CommuteFactor(mode string) (float64, bool) {
	rate, ok := r.commuting[mode]
	return rate, ok
}

// TemporaryWorksFactor returns the embodied factor in kg CO2-e per m² for
// a temporary-works system.
func (r *Registry) TemporaryWorksFactor(system string) (float64, bool) {
	rate, ok := r.temporaryWorks[system]
	return rate, ok
}

// Material returns the embodied-carbon coefficient record for a material
// category and type, e.g. ("concrete", "32mpa").
func (r *Registry) Material(category, typ string) (MaterialRecord, bool) {
	types, ok := r.materials[category]
	if !ok {
		return MaterialRecord{}, false
	}
	rec, ok := types[typ]
	return rec, ok
}

func copyMap[K comparable, V any](src map[K]V) map[K]V {
	dst := make(map[K]V, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

func copyNested[V any](src map[string]map[string]V) map[string]map[string]V {
	dst := make(map[string]map[string]V, len(src))
	for k, inner := range src {
		dst[k] = copyMap(inner)
	}
	return dst
}
