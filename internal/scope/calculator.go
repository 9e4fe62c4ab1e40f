// Package scope implements GHG Protocol Scope 1, 2, and 3 operational
// accounting for a construction site: fuel-burning plant and vehicles
// (scope 1), purchased electricity (scope 2), and transport, waste, water,
// commuting, and temporary works (scope 3).
//
// A Calculator instance owns the line items of one project/session and
// provides no locking; an embedding host serializes access. All internal
// arithmetic is in kg CO2-e; tonnes appear only on reporting fields.
package scope

import (
	"math"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/rshade/sitecarbon/internal/emissions"
	"github.com/rshade/sitecarbon/internal/factors"
)

// Options configures a Calculator.
type Options struct {
	// Region is the default state/territory code for electricity items
	// that do not carry their own.
	Region string

	// Policy controls handling of missing factors. The default
	// (PolicyReject) refuses the add.
	Policy emissions.Policy

	// Logger receives structured diagnostics. Pass zerolog.Nop() to
	// silence.
	Logger zerolog.Logger
}

// Calculator tracks operational line items across the three scopes and
// derives category, scope, and project totals on demand.
type Calculator struct {
	registry *factors.Registry
	region   string
	policy   emissions.Policy
	logger   zerolog.Logger
	items    map[Scope][]LineItem
}

// New creates a Calculator bound to an emission-factor registry.
func New(registry *factors.Registry, opts Options) *Calculator {
	return &Calculator{
		registry: registry,
		region:   opts.Region,
		policy:   opts.Policy,
		logger:   opts.Logger,
		items:    make(map[Scope][]LineItem),
	}
}

// Remove deletes exactly one item by id from the given scope. Removal
// changes no other item's computed emissions.
func (c *Calculator) Remove(scope Scope, id string) error {
	items := c.items[scope]
	for i, item := range items {
		if item.ID == id {
			c.items[scope] = append(items[:i], items[i+1:]...)
			c.logger.Debug().Str("item_id", id).Str("scope", string(scope)).Msg("item removed")
			return nil
		}
	}
	return emissions.ErrItemNotFound
}

// Reset atomically clears all tracked items across every scope. No partial
// reset state is observable: the whole collection is replaced in one
// assignment.
func (c *Calculator) Reset() {
	c.items = make(map[Scope][]LineItem)
}

// Items returns a copy of the tracked items for one scope, in insertion
// order.
func (c *Calculator) Items(scope Scope) []LineItem {
	src := c.items[scope]
	out := make([]LineItem, len(src))
	copy(out, src)
	return out
}

// Results computes and returns the per-item results for one scope.
func (c *Calculator) Results(scope Scope) []Result {
	src := c.items[scope]
	out := make([]Result, 0, len(src))
	for _, item := range src {
		out = append(out, c.compute(item))
	}
	return out
}

// ScopeTotal derives the total and per-category breakdown for one scope.
func (c *Calculator) ScopeTotal(scope Scope) ScopeTotal {
	byCategory := make(map[Category]*CategoryTotal)
	for _, cat := range scopeCategories[scope] {
		byCategory[cat] = &CategoryTotal{Category: cat}
	}

	total := ScopeTotal{Scope: scope}
	for _, item := range c.items[scope] {
		r := c.compute(item)
		ct, ok := byCategory[item.Category]
		if !ok {
			ct = &CategoryTotal{Category: item.Category}
			byCategory[item.Category] = ct
		}
		ct.ItemCount++
		ct.EmissionsKg += r.EmissionsKg
		total.EmissionsKg += r.EmissionsKg
	}

	for _, cat := range scopeCategories[scope] {
		ct := byCategory[cat]
		ct.EmissionsTonnes = emissions.Tonnes(ct.EmissionsKg)
		total.Categories = append(total.Categories, *ct)
	}
	total.EmissionsTonnes = emissions.Tonnes(total.EmissionsKg)
	return total
}

// AllScopes derives the full operational summary. Percentages divide each
// scope by the project total and are recomputed on every call; a zero
// total yields zero shares, not NaN.
func (c *Calculator) AllScopes() Summary {
	s := Summary{
		Scope1: c.ScopeTotal(Scope1),
		Scope2: c.ScopeTotal(Scope2),
		Scope3: c.ScopeTotal(Scope3),
	}
	s.TotalKg = s.Scope1.EmissionsKg + s.Scope2.EmissionsKg + s.Scope3.EmissionsKg
	s.TotalTonnes = emissions.Tonnes(s.TotalKg)
	if s.TotalKg > 0 {
		s.Percentages = Percentages{
			Scope1: s.Scope1.EmissionsKg / s.TotalKg * 100,
			Scope2: s.Scope2.EmissionsKg / s.TotalKg * 100,
			Scope3: s.Scope3.EmissionsKg / s.TotalKg * 100,
		}
	}
	return s
}

// WasteDiversionPct returns the share of waste weight diverted from
// landfill, as a percentage of all tracked waste weight. Returns 0 when no
// waste is tracked.
func (c *Calculator) WasteDiversionPct() float64 {
	var total, diverted float64
	for _, item := range c.items[Scope3] {
		w, ok := item.Inputs.(WasteInput)
		if !ok {
			continue
		}
		total += w.WeightTonnes
		if w.Method != factors.DisposalLandfill {
			diverted += w.WeightTonnes
		}
	}
	if total == 0 {
		return 0
	}
	return diverted / total * 100
}

// add validates nothing itself; callers have already validated and
// resolved the factor policy. It assigns the id, stores the item, and
// returns its computed result.
func (c *Calculator) add(scope Scope, category Category, region string, inputs any, factorMissing bool) Result {
	item := LineItem{
		ID:            uuid.NewString(),
		Scope:         scope,
		Category:      category,
		Region:        region,
		FactorMissing: factorMissing,
		Inputs:        inputs,
	}
	c.items[scope] = append(c.items[scope], item)

	r := c.compute(item)
	c.logger.Debug().
		Str("item_id", item.ID).
		Str("scope", string(scope)).
		Str("category", string(category)).
		Float64("emissions_kg", r.EmissionsKg).
		Msg("item added")
	return r
}

// resolveRegion picks the item's region when set, the calculator default
// otherwise.
func (c *Calculator) resolveRegion(itemRegion string) string {
	if itemRegion != "" {
		return itemRegion
	}
	return c.region
}

// missingFactor applies the calculator's policy to a failed lookup. It
// returns (true, nil) when the item should be recorded flagged, or
// (false, ErrFactorNotFound) when the add must be rejected.
func (c *Calculator) missingFactor(category Category, key string) (bool, error) {
	if c.policy == emissions.PolicyReject {
		return false, emissions.ErrFactorNotFound
	}
	c.logger.Warn().
		Str("category", string(category)).
		Str("key", key).
		Msg("emission factor not found, recording with zero emissions")
	return true, nil
}

// validQuantities reports whether every value is finite and non-negative.
// Zero is valid: zero hours, distance, or mass computes to zero emissions.
func validQuantities(values ...float64) bool {
	for _, v := range values {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// validOverride reports whether an optional caller-supplied consumption
// override is absent or a valid quantity.
func validOverride(v *float64) bool {
	return v == nil || validQuantities(*v)
}

// compute derives the emissions for one stored item. Flagged items compute
// to zero. Stored items always re-derive from their inputs, so totals can
// never serve a stale result.
func (c *Calculator) compute(item LineItem) Result {
	r := Result{
		ItemID:        item.ID,
		Scope:         item.Scope,
		Category:      item.Category,
		FactorMissing: item.FactorMissing,
	}
	if item.FactorMissing {
		return r
	}

	switch inputs := item.Inputs.(type) {
	case EquipmentInput:
		rec, ok := c.registry.Equipment(inputs.Class, inputs.Model)
		if ok {
			c.computeFuel(&r, rec, inputs.Hours*rec.RatePerHour, inputs.FuelOverride)
		}
	case VehicleInput:
		rec, ok := c.registry.Vehicle(inputs.Class, inputs.Model)
		if ok {
			derived := inputs.DistanceKm / 100 * rec.LitresPer100Km
			c.computeFuel(&r, factors.PlantRecord{Fuel: rec.Fuel}, derived, inputs.FuelOverride)
		}
	case GeneratorInput:
		rec, ok := c.registry.Generator(inputs.Model)
		if ok {
			c.computeFuel(&r, rec, inputs.Hours*rec.RatePerHour, inputs.FuelOverride)
		}
	case HeatingInput:
		rec, ok := c.registry.Heating(inputs.Kind)
		if ok {
			c.computeFuel(&r, rec, inputs.Hours*rec.RatePerHour, inputs.FuelOverride)
		}
	case ElectricityInput:
		c.computeElectric(&r, item.Region, inputs.KWh)
	case FacilityInput:
		rate, ok := c.registry.Facility(inputs.Kind)
		if ok {
			c.computeElectric(&r, item.Region, rate*inputs.Days)
		}
	case ElectricEquipmentInput:
		kw, ok := c.registry.ElectricEquipment(inputs.Kind)
		if ok {
			c.computeElectric(&r, item.Region, kw*inputs.Hours)
		}
	case TransportInput:
		rate, ok := c.registry.TransportMode(inputs.Mode)
		if ok {
			r.TonneKm = inputs.WeightTonnes * inputs.DistanceKm
			r.EmissionsKg = r.TonneKm * rate
		}
	case WasteInput:
		rate, ok := c.registry.WasteFactor(inputs.Material, inputs.Method)
		if ok {
			r.EmissionsKg = inputs.WeightTonnes * rate
		}
	case WaterInput:
		rate, ok := c.registry.WaterFactor(inputs.Treatment)
		if ok {
			r.EmissionsKg = inputs.VolumeKL * rate
		}
	case CommutingInput:
		rate, ok := c.registry.CommuteFactor(inputs.Mode)
		if ok {
			r.DistanceKm = float64(inputs.Employees) * inputs.AvgDistanceKm * float64(inputs.Days) * 2
			r.EmissionsKg = r.DistanceKm * rate
		}
	case TemporaryWorksInput:
		rate, ok := c.registry.TemporaryWorksFactor(inputs.System)
		if ok {
			reuses := inputs.Reuses
			if reuses < 1 {
				reuses = 1
			}
			r.EmissionsKg = inputs.AreaM2 * rate / float64(reuses)
		}
	}

	r.EmissionsTonnes = emissions.Tonnes(r.EmissionsKg)
	return r
}

// computeFuel fills a result from a derived fuel quantity or a caller
// override. The fuel unit follows the fuel: MJ for gas, litres otherwise.
func (c *Calculator) computeFuel(r *Result, rec factors.PlantRecord, derived float64, override *float64) {
	quantity := derived
	if override != nil {
		quantity = *override
	}
	factor, ok := c.registry.FuelFactor(rec.Fuel)
	if !ok {
		return
	}
	r.FuelQuantity = quantity
	if rec.Fuel == factors.FuelNaturalGas {
		r.FuelUnit = "MJ"
	} else {
		r.FuelUnit = "L"
	}
	r.EmissionsKg = quantity * factor
}

// computeElectric fills a result from an energy quantity and the regional
// grid factor. A zero factor for a known region is a correct, intentional
// zero-emission outcome.
func (c *Calculator) computeElectric(r *Result, region string, kwh float64) {
	factor, ok := c.registry.GridFactor(region)
	if !ok {
		return
	}
	r.EnergyKWh = kwh
	r.EmissionsKg = kwh * factor
}
