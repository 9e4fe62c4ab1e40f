package scope

// Scope identifies a GHG Protocol scope.
type Scope string

const (
	// Scope1 covers direct emissions from fuel burned on site.
	Scope1 Scope = "scope1"

	// Scope2 covers purchased electricity.
	Scope2 Scope = "scope2"

	// Scope3 covers value-chain emissions: transport, waste, water,
	// commuting, and temporary works.
	Scope3 Scope = "scope3"
)

// Category identifies an emission category within a scope.
type Category string

const (
	CategoryEquipment         Category = "equipment"
	CategoryVehicles          Category = "vehicles"
	CategoryGenerators        Category = "generators"
	CategoryHeating           Category = "heating"
	CategoryElectricity       Category = "electricity"
	CategoryFacilities        Category = "facilities"
	CategoryElectricEquipment Category = "electric_equipment"
	CategoryTransport         Category = "transport"
	CategoryWaste             Category = "waste"
	CategoryWater             Category = "water"
	CategoryCommuting         Category = "commuting"
	CategoryTemporaryWorks    Category = "temporary_works"
)

// scopeCategories fixes the canonical category order per scope, used for
// stable grouping in totals and exports.
var scopeCategories = map[Scope][]Category{
	Scope1: {CategoryEquipment, CategoryVehicles, CategoryGenerators, CategoryHeating},
	Scope2: {CategoryElectricity, CategoryFacilities, CategoryElectricEquipment},
	Scope3: {CategoryTransport, CategoryWaste, CategoryWater, CategoryCommuting, CategoryTemporaryWorks},
}

// EquipmentInput is one fuel-burning plant entry (scope 1).
type EquipmentInput struct {
	// Class is the plant category in the registry, e.g. "excavators".
	Class string `json:"class" yaml:"class"`

	// Model is the plant model within the class, e.g. "standard_13t".
	Model string `json:"model" yaml:"model"`

	// Hours is the operating hours. Zero hours is valid and yields zero
	// emissions.
	Hours float64 `json:"hours" yaml:"hours"`

	// FuelOverride, when set, is the actual fuel used in the plant's
	// fuel unit (litres, or MJ for gas) and replaces the derived
	// consumption entirely.
	FuelOverride *float64 `json:"fuel_override,omitempty" yaml:"fuel_override"`
}

// VehicleInput is one site vehicle entry (scope 1).
type VehicleInput struct {
	Class        string   `json:"class" yaml:"class"`
	Model        string   `json:"model" yaml:"model"`
	DistanceKm   float64  `json:"distance_km" yaml:"distance_km"`
	FuelOverride *float64 `json:"fuel_override,omitempty" yaml:"fuel_override"`
}

// GeneratorInput is one generator entry (scope 1).
type GeneratorInput struct {
	Model        string   `json:"model" yaml:"model"`
	Hours        float64  `json:"hours" yaml:"hours"`
	FuelOverride *float64 `json:"fuel_override,omitempty" yaml:"fuel_override"`
}

// HeatingInput is one site heating entry (scope 1).
type HeatingInput struct {
	Kind         string   `json:"kind" yaml:"kind"`
	Hours        float64  `json:"hours" yaml:"hours"`
	FuelOverride *float64 `json:"fuel_override,omitempty" yaml:"fuel_override"`
}

// ElectricityInput is one metered electricity entry (scope 2).
type ElectricityInput struct {
	// KWh is the metered consumption.
	KWh float64 `json:"kwh" yaml:"kwh"`

	// Region is the state or territory code. Empty falls back to the
	// calculator's default region.
	Region string `json:"region,omitempty" yaml:"region"`
}

// FacilityInput is one site facility entry (scope 2). Energy is derived as
// the facility's daily rate times Days.
type FacilityInput struct {
	Kind   string  `json:"kind" yaml:"kind"`
	Days   float64 `json:"days" yaml:"days"`
	Region string  `json:"region,omitempty" yaml:"region"`
}

// ElectricEquipmentInput is one mains-powered equipment entry (scope 2).
// Energy is derived as the equipment's kW draw times Hours.
type ElectricEquipmentInput struct {
	Kind   string  `json:"kind" yaml:"kind"`
	Hours  float64 `json:"hours" yaml:"hours"`
	Region string  `json:"region,omitempty" yaml:"region"`
}

// TransportInput is one freight movement entry (scope 3).
type TransportInput struct {
	Mode         string  `json:"mode" yaml:"mode"`
	WeightTonnes float64 `json:"weight_tonnes" yaml:"weight_tonnes"`
	DistanceKm   float64 `json:"distance_km" yaml:"distance_km"`
}

// WasteInput is one waste disposal entry (scope 3).
type WasteInput struct {
	Material     string  `json:"material" yaml:"material"`
	Method       string  `json:"method" yaml:"method"`
	WeightTonnes float64 `json:"weight_tonnes" yaml:"weight_tonnes"`
}

// WaterInput is one water use entry (scope 3).
type WaterInput struct {
	Treatment string  `json:"treatment" yaml:"treatment"`
	VolumeKL  float64 `json:"volume_kl" yaml:"volume_kl"`
}

// CommutingInput is one workforce commuting entry (scope 3). Total
// distance is employees × average one-way distance × days × 2.
type CommutingInput struct {
	Mode          string  `json:"mode" yaml:"mode"`
	Employees     int     `json:"employees" yaml:"employees"`
	AvgDistanceKm float64 `json:"avg_distance_km" yaml:"avg_distance_km"`
	Days          int     `json:"days" yaml:"days"`
}

// TemporaryWorksInput is one temporary-works entry (scope 3). Embodied
// emissions are amortized over the number of reuses; a reuse count of
// zero or missing means no amortization, never a division by zero.
type TemporaryWorksInput struct {
	System string  `json:"system" yaml:"system"`
	AreaM2 float64 `json:"area_m2" yaml:"area_m2"`
	Reuses int     `json:"reuses,omitempty" yaml:"reuses"`
}

// LineItem is one tracked entry. Items are immutable once added; edits are
// modelled as remove + add so totals stay trivially auditable.
type LineItem struct {
	ID       string   `json:"id"`
	Scope    Scope    `json:"scope"`
	Category Category `json:"category"`

	// Region is the resolved region for electricity items, empty
	// elsewhere.
	Region string `json:"region,omitempty"`

	// FactorMissing marks an item recorded under PolicyFlagZero whose
	// factor lookup failed; it computes to zero emissions.
	FactorMissing bool `json:"factor_missing,omitempty"`

	// Inputs holds the category-specific input record.
	Inputs any `json:"inputs"`
}

// Result is the computed emissions for one line item, with the
// intermediate quantities the arithmetic passed through.
type Result struct {
	ItemID          string   `json:"item_id"`
	Scope           Scope    `json:"scope"`
	Category        Category `json:"category"`
	EmissionsKg     float64  `json:"emissions_kg"`
	EmissionsTonnes float64  `json:"emissions_tonnes"`

	// FuelQuantity is the fuel consumed, in FuelUnit ("L" or "MJ").
	FuelQuantity float64 `json:"fuel_quantity,omitempty"`
	FuelUnit     string  `json:"fuel_unit,omitempty"`

	// EnergyKWh is the electricity consumed.
	EnergyKWh float64 `json:"energy_kwh,omitempty"`

	// TonneKm is the freight task for transport items.
	TonneKm float64 `json:"tonne_km,omitempty"`

	// DistanceKm is the total round-trip distance for commuting items.
	DistanceKm float64 `json:"distance_km,omitempty"`

	FactorMissing bool `json:"factor_missing,omitempty"`
}

// CategoryTotal is the derived aggregate for one category within a scope.
type CategoryTotal struct {
	Category        Category `json:"category"`
	ItemCount       int      `json:"item_count"`
	EmissionsKg     float64  `json:"emissions_kg"`
	EmissionsTonnes float64  `json:"emissions_tonnes"`
}

// ScopeTotal is the derived aggregate for one scope.
type ScopeTotal struct {
	Scope           Scope           `json:"scope"`
	EmissionsKg     float64         `json:"emissions_kg"`
	EmissionsTonnes float64         `json:"emissions_tonnes"`
	Categories      []CategoryTotal `json:"categories"`
}

// Percentages holds each scope's share of the operational total. Computed
// fresh on every request, never cached.
type Percentages struct {
	Scope1 float64 `json:"scope1"`
	Scope2 float64 `json:"scope2"`
	Scope3 float64 `json:"scope3"`
}

// Summary is the full operational accounting across all three scopes.
type Summary struct {
	Scope1      ScopeTotal  `json:"scope1"`
	Scope2      ScopeTotal  `json:"scope2"`
	Scope3      ScopeTotal  `json:"scope3"`
	TotalKg     float64     `json:"total_kg"`
	TotalTonnes float64     `json:"total_tonnes"`
	Percentages Percentages `json:"percentages"`
}
