package lca

import (
	"math"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/sitecarbon/internal/emissions"
	"github.com/rshade/sitecarbon/internal/factors"
)

func newTestCalculator(t *testing.T, opts Options) *Calculator {
	t.Helper()
	opts.Logger = zerolog.Nop()
	return New(factors.NewRegistry(), opts)
}

func TestAddMaterial_ProductStage(t *testing.T) {
	c := newTestCalculator(t, Options{})

	// concrete 32mpa: A1A3 345, A4 15, A5 12, C1C4 9 kg CO2-e per m3,
	// recycling share 0.85, credit 5, no service life.
	r, err := c.AddMaterial(MaterialInput{Category: "concrete", Type: "32mpa", Quantity: 10, Unit: "m3"})
	require.NoError(t, err)

	assert.InDelta(t, 3450.0, r.Stages.A1A3, 1e-9)
	assert.InDelta(t, 150.0, r.Stages.A4, 1e-9)
	assert.InDelta(t, 120.0, r.Stages.A5, 1e-9)
	assert.Zero(t, r.Stages.B1B7, "no service life means no replacement cycles")
	assert.InDelta(t, 90.0, r.Stages.C1C4, 1e-9)
	assert.InDelta(t, -42.5, r.Stages.D, 1e-9)

	assert.InDelta(t, 3810.0, r.GrossKg, 1e-9, "gross must exclude the module-D credit")
	assert.InDelta(t, -42.5, r.CreditKg, 1e-9)
	assert.InDelta(t, 3767.5, r.NetKg, 1e-9)
}

func TestAddMaterial_ReplacementCycles(t *testing.T) {
	// carpet_tile: 10-year service life, so a 50-year design life incurs
	// floor(50/10) = 5 replacement cycles, each re-incurring A1-A5.
	c := newTestCalculator(t, Options{DesignLifeYears: 50})

	r, err := c.AddMaterial(MaterialInput{Category: "finishes", Type: "carpet_tile", Quantity: 100, Unit: "m2"})
	require.NoError(t, err)

	assert.Equal(t, 5, r.Replacements)
	perCycle := 100 * (21.0 + 0.8 + 1.1)
	assert.InDelta(t, 5*perCycle, r.Stages.B1B7, 1e-9)
}

func TestAddMaterial_ReplacementCountFloors(t *testing.T) {
	c := newTestCalculator(t, Options{DesignLifeYears: 45})

	r, err := c.AddMaterial(MaterialInput{Category: "finishes", Type: "carpet_tile", Quantity: 1, Unit: "m2"})
	require.NoError(t, err)
	assert.Equal(t, 4, r.Replacements, "floor(45/10) = 4")
}

func TestAddMaterial_DCreditIsNeverPositive(t *testing.T) {
	c := newTestCalculator(t, Options{})

	inputs := []MaterialInput{
		{Category: "steel", Type: "structural", Quantity: 3, Unit: "t"},
		{Category: "finishes", Type: "paint", Quantity: 200, Unit: "m2"},
		{Category: "aluminium", Type: "extrusion", Quantity: 0.5, Unit: "t"},
	}
	for _, in := range inputs {
		r, err := c.AddMaterial(in)
		require.NoError(t, err)
		assert.LessOrEqual(t, r.Stages.D, 0.0, "%s/%s", in.Category, in.Type)
	}
}

func TestAddMaterial_ZeroQuantity(t *testing.T) {
	c := newTestCalculator(t, Options{})

	r, err := c.AddMaterial(MaterialInput{Category: "concrete", Type: "32mpa", Quantity: 0, Unit: "m3"})
	require.NoError(t, err, "zero quantity is valid, not an error")
	assert.Zero(t, r.NetKg)
	assert.Equal(t, 1, c.Totals().ItemCount)
}

func TestAddMaterial_InvalidInput(t *testing.T) {
	c := newTestCalculator(t, Options{})

	tests := []struct {
		name  string
		input MaterialInput
	}{
		{"negative quantity", MaterialInput{Category: "concrete", Type: "32mpa", Quantity: -1, Unit: "m3"}},
		{"NaN quantity", MaterialInput{Category: "concrete", Type: "32mpa", Quantity: math.NaN(), Unit: "m3"}},
		{"infinite quantity", MaterialInput{Category: "concrete", Type: "32mpa", Quantity: math.Inf(1), Unit: "m3"}},
		{"unit mismatch", MaterialInput{Category: "concrete", Type: "32mpa", Quantity: 1, Unit: "t"}},
		{"missing category", MaterialInput{Type: "32mpa", Quantity: 1, Unit: "m3"}},
		{"missing unit", MaterialInput{Category: "concrete", Type: "32mpa", Quantity: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.AddMaterial(tt.input)
			assert.ErrorIs(t, err, emissions.ErrInvalidInput)
		})
	}

	assert.Zero(t, c.Totals().ItemCount, "rejected adds must record nothing")
}

func TestAddMaterial_UnknownMaterialPolicies(t *testing.T) {
	t.Run("reject policy refuses the add", func(t *testing.T) {
		c := newTestCalculator(t, Options{Policy: emissions.PolicyReject})

		_, err := c.AddMaterial(MaterialInput{Category: "adamantium", Type: "ingot", Quantity: 1, Unit: "t"})
		assert.ErrorIs(t, err, emissions.ErrFactorNotFound)
		assert.Zero(t, c.Totals().ItemCount)
	})

	t.Run("flag-zero policy records a flagged zero item", func(t *testing.T) {
		c := newTestCalculator(t, Options{Policy: emissions.PolicyFlagZero})

		r, err := c.AddMaterial(MaterialInput{Category: "adamantium", Type: "ingot", Quantity: 1, Unit: "t"})
		require.NoError(t, err)
		assert.True(t, r.FactorMissing)
		assert.Zero(t, r.NetKg)

		totals := c.Totals()
		assert.Equal(t, 1, totals.ItemCount)
		assert.Zero(t, totals.NetKg)
	})
}

func TestStageTotal_MatchesBreakdown(t *testing.T) {
	c := newTestCalculator(t, Options{})

	_, err := c.AddMaterial(MaterialInput{Category: "concrete", Type: "32mpa", Quantity: 10, Unit: "m3"})
	require.NoError(t, err)
	_, err = c.AddMaterial(MaterialInput{Category: "steel", Type: "rebar", Quantity: 2, Unit: "t"})
	require.NoError(t, err)

	totals := c.Totals()
	for _, stage := range []Stage{StageA1A3, StageA4, StageA5, StageB1B7, StageC1C4, StageD} {
		assert.InDelta(t, totals.Stages.Stage(stage), c.StageTotal(stage), 1e-9, string(stage))
	}
}

func TestTotals_AdditiveAndIdempotent(t *testing.T) {
	c := newTestCalculator(t, Options{})

	_, err := c.AddMaterial(MaterialInput{Category: "concrete", Type: "40mpa", Quantity: 25, Unit: "m3"})
	require.NoError(t, err)
	_, err = c.AddMaterial(MaterialInput{Category: "timber", Type: "glulam", Quantity: 8, Unit: "m3"})
	require.NoError(t, err)
	_, err = c.AddMaterial(MaterialInput{Category: "glass", Type: "double_glazed", Quantity: 120, Unit: "m2"})
	require.NoError(t, err)

	first := c.Totals()
	second := c.Totals()
	assert.Equal(t, first, second, "totals without mutation must be identical")

	var sum float64
	for _, r := range first.Results {
		sum += r.NetKg
	}
	assert.InDelta(t, first.NetKg, sum, 1e-9)
	assert.InDelta(t, first.GrossKg+first.CreditKg, first.NetKg, 1e-9)
	assert.InDelta(t, emissions.Tonnes(first.NetKg), first.NetTonnes, 1e-12)
}

func TestRemove_Independence(t *testing.T) {
	c := newTestCalculator(t, Options{})

	_, err := c.AddMaterial(MaterialInput{Category: "concrete", Type: "32mpa", Quantity: 10, Unit: "m3"})
	require.NoError(t, err)
	victim, err := c.AddMaterial(MaterialInput{Category: "steel", Type: "structural", Quantity: 5, Unit: "t"})
	require.NoError(t, err)
	_, err = c.AddMaterial(MaterialInput{Category: "masonry", Type: "clay_brick_veneer", Quantity: 40, Unit: "m2"})
	require.NoError(t, err)

	before := c.Totals()
	require.NoError(t, c.Remove(victim.ItemID))
	after := c.Totals()

	assert.Equal(t, before.ItemCount-1, after.ItemCount)
	assert.InDelta(t, before.NetKg-victim.NetKg, after.NetKg, 1e-9,
		"removal must change the total by exactly the removed item's emissions")

	// Every surviving item's result is unchanged.
	survivors := make(map[string]Result)
	for _, r := range after.Results {
		survivors[r.ItemID] = r
	}
	for _, r := range before.Results {
		if r.ItemID == victim.ItemID {
			continue
		}
		assert.Equal(t, r, survivors[r.ItemID])
	}

	assert.ErrorIs(t, c.Remove(victim.ItemID), emissions.ErrItemNotFound,
		"a removed id must not be removable twice")
}

func TestReset(t *testing.T) {
	c := newTestCalculator(t, Options{})

	_, err := c.AddMaterial(MaterialInput{Category: "concrete", Type: "25mpa", Quantity: 5, Unit: "m3"})
	require.NoError(t, err)

	c.Reset()
	totals := c.Totals()
	assert.Zero(t, totals.ItemCount)
	assert.Zero(t, totals.NetKg)
	assert.Empty(t, c.Items())
}

func TestDesignLifeDefault(t *testing.T) {
	c := newTestCalculator(t, Options{})
	assert.Equal(t, DefaultDesignLifeYears, c.DesignLifeYears())

	c = newTestCalculator(t, Options{DesignLifeYears: -3})
	assert.Equal(t, DefaultDesignLifeYears, c.DesignLifeYears(),
		"non-positive design life falls back to the default")
}
