package factors

// MaterialRecord carries the LCA-stage coefficients for one material type,
// per EN 15804 stage boundaries. All emission coefficients are kg CO2-e
// per declared unit.
type MaterialRecord struct {
	// Unit is the declared unit the coefficients are expressed against
	// (m3, m2, t). Quantities supplied in any other unit are rejected.
	Unit string `yaml:"unit"`

	// A1A3 is the product-stage coefficient: raw material supply,
	// transport to factory, and manufacturing.
	A1A3 float64 `yaml:"a1_a3"`

	// A4 is transport to site.
	A4 float64 `yaml:"a4"`

	// A5 is installation and construction-process waste.
	A5 float64 `yaml:"a5"`

	// C1C4 is the combined end-of-life coefficient: deconstruction,
	// transport, processing, and disposal.
	C1C4 float64 `yaml:"c1_c4"`

	// RecyclingShare is the fraction of the material recovered at end of
	// life (0..1), used for the module-D credit.
	RecyclingShare float64 `yaml:"recycling_share"`

	// CreditRate is the module-D benefit in kg CO2-e per declared unit
	// of recovered material. Stored positive; the calculator applies the
	// negative sign.
	CreditRate float64 `yaml:"credit_rate"`

	// ServiceLifeYears is the expected service life before replacement.
	// Zero means the material lasts the project design life and
	// contributes nothing to the use stage.
	ServiceLifeYears float64 `yaml:"service_life_years"`
}

// defaultMaterials maps material category → type → LCA coefficients.
//
// Coefficients are industry-average embodied-carbon values for the
// Australian supply chain, EN 15804 stage boundaries.
// Data vintage: 2024 EPD averages.
var defaultMaterials = map[string]map[string]MaterialRecord{
	"concrete": {
		"25mpa": {Unit: "m3", A1A3: 290, A4: 15, A5: 12, C1C4: 9, RecyclingShare: 0.85, CreditRate: 5},
		"32mpa": {Unit: "m3", A1A3: 345, A4: 15, A5: 12, C1C4: 9, RecyclingShare: 0.85, CreditRate: 5},
		"40mpa": {Unit: "m3", A1A3: 405, A4: 15, A5: 13, C1C4: 9, RecyclingShare: 0.85, CreditRate: 5},
		"50mpa": {Unit: "m3", A1A3: 470, A4: 15, A5: 13, C1C4: 9, RecyclingShare: 0.85, CreditRate: 5},
	},
	"steel": {
		"structural":  {Unit: "t", A1A3: 2550, A4: 90, A5: 45, C1C4: 60, RecyclingShare: 0.9, CreditRate: 950},
		"rebar":       {Unit: "t", A1A3: 1990, A4: 90, A5: 40, C1C4: 60, RecyclingShare: 0.9, CreditRate: 950},
		"cold_formed": {Unit: "t", A1A3: 2890, A4: 90, A5: 50, C1C4: 60, RecyclingShare: 0.9, CreditRate: 950},
	},
	"timber": {
		"softwood_framing": {Unit: "m3", A1A3: 263, A4: 28, A5: 18, C1C4: 55, RecyclingShare: 0.5, CreditRate: 120},
		"glulam":           {Unit: "m3", A1A3: 512, A4: 28, A5: 20, C1C4: 55, RecyclingShare: 0.5, CreditRate: 120},
		"clt":              {Unit: "m3", A1A3: 437, A4: 28, A5: 20, C1C4: 55, RecyclingShare: 0.5, CreditRate: 120},
	},
	"aluminium": {
		"extrusion": {Unit: "t", A1A3: 12500, A4: 110, A5: 80, C1C4: 95, RecyclingShare: 0.95, CreditRate: 8000},
	},
	"glass": {
		"single_glazed": {Unit: "m2", A1A3: 28, A4: 1.6, A5: 2.1, C1C4: 1.1, RecyclingShare: 0.4, CreditRate: 6, ServiceLifeYears: 30},
		"double_glazed": {Unit: "m2", A1A3: 55, A4: 2.4, A5: 3.2, C1C4: 1.8, RecyclingShare: 0.4, CreditRate: 6, ServiceLifeYears: 25},
	},
	"masonry": {
		"clay_brick_veneer": {Unit: "m2", A1A3: 98, A4: 5.5, A5: 4.8, C1C4: 3.2, RecyclingShare: 0.6, CreditRate: 4},
	},
	"plasterboard": {
		"13mm": {Unit: "m2", A1A3: 7.3, A4: 0.5, A5: 0.9, C1C4: 1.4, RecyclingShare: 0.3, CreditRate: 1.2, ServiceLifeYears: 30},
	},
	"insulation": {
		"glasswool_batts": {Unit: "m2", A1A3: 4.9, A4: 0.4, A5: 0.5, C1C4: 0.6, RecyclingShare: 0.2, CreditRate: 0.8},
	},
	"finishes": {
		"carpet_tile": {Unit: "m2", A1A3: 21, A4: 0.8, A5: 1.1, C1C4: 2.6, RecyclingShare: 0.25, CreditRate: 3, ServiceLifeYears: 10},
		"paint":       {Unit: "m2", A1A3: 2.4, A4: 0.1, A5: 0.2, C1C4: 0.3, RecyclingShare: 0, CreditRate: 0, ServiceLifeYears: 8},
	},
}
