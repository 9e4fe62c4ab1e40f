// Package lca implements the embodied-carbon calculator for building
// materials across EN 15804 life-cycle stages A1-A3 (product), A4
// (transport to site), A5 (installation), B1-B7 (use-stage replacement
// cycles), C1-C4 (end of life), and D (benefits beyond the system
// boundary, a signed-negative credit).
//
// A calculator instance is scoped to one project and assumes single-owner
// access: all internal arithmetic is in kg CO2-e, items are immutable once
// added, and totals are recomputed from the item collection on every
// request.
package lca

import (
	"math"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/rshade/sitecarbon/internal/emissions"
	"github.com/rshade/sitecarbon/internal/factors"
)

// DefaultDesignLifeYears is the project design life assumed for use-stage
// replacement cycles when the caller does not supply one.
const DefaultDesignLifeYears = 50.0

// Stage identifies an EN 15804 life-cycle stage group.
type Stage string

const (
	StageA1A3 Stage = "A1-A3"
	StageA4   Stage = "A4"
	StageA5   Stage = "A5"
	StageB1B7 Stage = "B1-B7"
	StageC1C4 Stage = "C1-C4"
	StageD    Stage = "D"
)

// MaterialInput is one user-entered material quantity.
type MaterialInput struct {
	// Category is the material category in the registry, e.g. "concrete".
	Category string `json:"category" yaml:"category"`

	// Type is the material type within the category, e.g. "32mpa".
	Type string `json:"type" yaml:"type"`

	// Quantity is the amount in the material's declared unit. Zero is
	// valid and yields zero emissions.
	Quantity float64 `json:"quantity" yaml:"quantity"`

	// Unit is the quantity unit. It must match the registry record's
	// declared unit.
	Unit string `json:"unit" yaml:"unit"`
}

// Item is a tracked material line item. Items are immutable once added;
// an edit is modelled as remove + add.
type Item struct {
	ID            string        `json:"id"`
	Input         MaterialInput `json:"input"`
	FactorMissing bool          `json:"factor_missing,omitempty"`
}

// StageBreakdown holds per-stage emissions in kg CO2-e. D is always
// negative or zero.
type StageBreakdown struct {
	A1A3 float64 `json:"a1_a3"`
	A4   float64 `json:"a4"`
	A5   float64 `json:"a5"`
	B1B7 float64 `json:"b1_b7"`
	C1C4 float64 `json:"c1_c4"`
	D    float64 `json:"d"`
}

func (b *StageBreakdown) add(o StageBreakdown) {
	b.A1A3 += o.A1A3
	b.A4 += o.A4
	b.A5 += o.A5
	b.B1B7 += o.B1B7
	b.C1C4 += o.C1C4
	b.D += o.D
}

// Stage returns the emissions for a single stage.
func (b StageBreakdown) Stage(s Stage) float64 {
	switch s {
	case StageA1A3:
		return b.A1A3
	case StageA4:
		return b.A4
	case StageA5:
		return b.A5
	case StageB1B7:
		return b.B1B7
	case StageC1C4:
		return b.C1C4
	case StageD:
		return b.D
	default:
		return 0
	}
}

// Result is the computed embodied carbon for one material item. GrossKg is
// the sum of stages A through C; the module-D credit is kept separate and
// only netted in NetKg.
type Result struct {
	ItemID        string         `json:"item_id"`
	Stages        StageBreakdown `json:"stages"`
	GrossKg       float64        `json:"gross_kg"`
	CreditKg      float64        `json:"credit_kg"`
	NetKg         float64        `json:"net_kg"`
	Replacements  int            `json:"replacements"`
	FactorMissing bool           `json:"factor_missing,omitempty"`
}

// Summary is the aggregate embodied carbon across all tracked materials.
type Summary struct {
	Stages    StageBreakdown `json:"stages"`
	GrossKg   float64        `json:"gross_kg"`
	CreditKg  float64        `json:"credit_kg"`
	NetKg     float64        `json:"net_kg"`
	NetTonnes float64        `json:"net_tonnes"`
	ItemCount int            `json:"item_count"`
	Results   []Result       `json:"results"`
}

// Options configures a Calculator.
type Options struct {
	// DesignLifeYears is the project design life used for use-stage
	// replacement counts. Values <= 0 fall back to
	// DefaultDesignLifeYears.
	DesignLifeYears float64

	// Policy controls handling of unknown material types. The default
	// (PolicyReject) refuses the add.
	Policy emissions.Policy

	// Logger receives structured diagnostics. Pass zerolog.Nop() to
	// silence.
	Logger zerolog.Logger
}

// Calculator tracks material line items and derives embodied-carbon
// totals. One instance per project; the caller serializes access.
type Calculator struct {
	registry   *factors.Registry
	designLife float64
	policy     emissions.Policy
	logger     zerolog.Logger
	items      []Item
}

// New creates a Calculator bound to an emission-factor registry.
func New(registry *factors.Registry, opts Options) *Calculator {
	designLife := opts.DesignLifeYears
	if designLife <= 0 {
		designLife = DefaultDesignLifeYears
	}
	return &Calculator{
		registry:   registry,
		designLife: designLife,
		policy:     opts.Policy,
		logger:     opts.Logger,
	}
}

// AddMaterial validates and records a material line item, returning its
// computed result. A rejected add records nothing and counts toward no
// total.
func (c *Calculator) AddMaterial(input MaterialInput) (Result, error) {
	if input.Category == "" || input.Type == "" || input.Unit == "" {
		return Result{}, emissions.ErrInvalidInput
	}
	if input.Quantity < 0 || math.IsNaN(input.Quantity) || math.IsInf(input.Quantity, 0) {
		return Result{}, emissions.ErrInvalidInput
	}

	rec, ok := c.registry.Material(input.Category, input.Type)
	factorMissing := false
	if !ok {
		if c.policy == emissions.PolicyReject {
			return Result{}, emissions.ErrFactorNotFound
		}
		factorMissing = true
		c.logger.Warn().
			Str("category", input.Category).
			Str("type", input.Type).
			Msg("material factor not found, recording with zero emissions")
	} else if input.Unit != rec.Unit {
		return Result{}, emissions.ErrInvalidInput
	}

	item := Item{
		ID:            uuid.NewString(),
		Input:         input,
		FactorMissing: factorMissing,
	}
	c.items = append(c.items, item)

	result := c.compute(item)
	c.logger.Debug().
		Str("item_id", item.ID).
		Str("material", input.Category+"/"+input.Type).
		Float64("net_kg", result.NetKg).
		Msg("material added")
	return result, nil
}

// Remove deletes exactly one item by id. Every other item's computed
// result is unaffected.
func (c *Calculator) Remove(id string) error {
	for i, item := range c.items {
		if item.ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return nil
		}
	}
	return emissions.ErrItemNotFound
}

// Reset clears all tracked materials.
func (c *Calculator) Reset() {
	c.items = nil
}

// DesignLifeYears returns the project design life the calculator uses for
// use-stage replacement counts.
func (c *Calculator) DesignLifeYears() float64 {
	return c.designLife
}

// Items returns a copy of the tracked material items.
func (c *Calculator) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// StageTotal returns the aggregate emissions for one stage in kg CO2-e.
func (c *Calculator) StageTotal(stage Stage) float64 {
	var total float64
	for _, item := range c.items {
		total += c.compute(item).Stages.Stage(stage)
	}
	return total
}

// Totals recomputes the full embodied-carbon summary from the current item
// collection. Nothing is cached, so the summary is always consistent with
// the items.
func (c *Calculator) Totals() Summary {
	s := Summary{Results: make([]Result, 0, len(c.items))}
	for _, item := range c.items {
		r := c.compute(item)
		s.Stages.add(r.Stages)
		s.GrossKg += r.GrossKg
		s.CreditKg += r.CreditKg
		s.NetKg += r.NetKg
		s.Results = append(s.Results, r)
	}
	s.ItemCount = len(c.items)
	s.NetTonnes = emissions.Tonnes(s.NetKg)
	return s
}

// compute derives the per-stage emissions for one item. Items flagged
// FactorMissing compute to zero across every stage.
func (c *Calculator) compute(item Item) Result {
	result := Result{ItemID: item.ID, FactorMissing: item.FactorMissing}
	if item.FactorMissing {
		return result
	}

	rec, ok := c.registry.Material(item.Input.Category, item.Input.Type)
	if !ok {
		// Registry is immutable after load, so a stored item's factor
		// cannot disappear; treat it as flagged if it somehow does.
		result.FactorMissing = true
		return result
	}

	qty := item.Input.Quantity

	// Product and construction stages are additive per declared unit.
	result.Stages.A1A3 = qty * rec.A1A3
	result.Stages.A4 = qty * rec.A4
	result.Stages.A5 = qty * rec.A5

	// Use stage: each replacement cycle re-incurs the product and
	// construction stages for the replaced quantity. A zero service life
	// means the material lasts the design life.
	if rec.ServiceLifeYears > 0 {
		replacements := int(math.Floor(c.designLife / rec.ServiceLifeYears))
		result.Replacements = replacements
		result.Stages.B1B7 = float64(replacements) * qty * (rec.A1A3 + rec.A4 + rec.A5)
	}

	result.Stages.C1C4 = qty * rec.C1C4

	// Module D is a credit: signed negative or zero, never netted into
	// the gross figure.
	result.Stages.D = -1 * qty * rec.RecyclingShare * rec.CreditRate

	result.GrossKg = result.Stages.A1A3 + result.Stages.A4 + result.Stages.A5 +
		result.Stages.B1B7 + result.Stages.C1C4
	result.CreditKg = result.Stages.D
	result.NetKg = result.GrossKg + result.CreditKg
	return result
}
