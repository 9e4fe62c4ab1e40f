//go:build integration

// Package integration provides integration tests for the full project
// reporting flow: factor registry, both calculators, and the combined
// snapshot.
//
// Run with: go test -tags=integration ./test/integration/... -v
package integration

import (
	"bytes"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/sitecarbon/internal/factors"
	"github.com/rshade/sitecarbon/internal/lca"
	"github.com/rshade/sitecarbon/internal/report"
	"github.com/rshade/sitecarbon/internal/scope"
)

// TestProjectReport_EndToEnd runs a representative mid-rise project
// through both calculators and checks the combined snapshot against
// plausibility ranges rather than exact figures, so factor-table updates
// don't invalidate the flow test.
func TestProjectReport_EndToEnd(t *testing.T) {
	registry := factors.NewRegistry()
	logger := zerolog.Nop()

	embodied := lca.New(registry, lca.Options{DesignLifeYears: 50, Logger: logger})
	operational := scope.New(registry, scope.Options{Region: "VIC", Logger: logger})

	materials := []lca.MaterialInput{
		{Category: "concrete", Type: "32mpa", Quantity: 850, Unit: "m3"},
		{Category: "steel", Type: "rebar", Quantity: 95, Unit: "t"},
		{Category: "steel", Type: "structural", Quantity: 60, Unit: "t"},
		{Category: "glass", Type: "double_glazed", Quantity: 900, Unit: "m2"},
		{Category: "plasterboard", Type: "13mm", Quantity: 6000, Unit: "m2"},
	}
	for _, m := range materials {
		_, err := embodied.AddMaterial(m)
		require.NoError(t, err)
	}

	_, err := operational.AddEquipment(scope.EquipmentInput{Class: "cranes", Model: "tower_crane", Hours: 1200})
	require.NoError(t, err)
	_, err = operational.AddEquipment(scope.EquipmentInput{Class: "excavators", Model: "large_30t", Hours: 400})
	require.NoError(t, err)
	_, err = operational.AddGenerator(scope.GeneratorInput{Model: "200kva", Hours: 800})
	require.NoError(t, err)
	_, err = operational.AddElectricity(scope.ElectricityInput{KWh: 85000})
	require.NoError(t, err)
	_, err = operational.AddFacility(scope.FacilityInput{Kind: "site_office", Days: 360})
	require.NoError(t, err)
	_, err = operational.AddTransport(scope.TransportInput{Mode: "road_articulated", WeightTonnes: 2200, DistanceKm: 120})
	require.NoError(t, err)
	_, err = operational.AddWaste(scope.WasteInput{Material: "mixed", Method: factors.DisposalLandfill, WeightTonnes: 45})
	require.NoError(t, err)
	_, err = operational.AddWaste(scope.WasteInput{Material: "concrete", Method: factors.DisposalRecycling, WeightTonnes: 180})
	require.NoError(t, err)
	_, err = operational.AddCommuting(scope.CommutingInput{Mode: "car_petrol", Employees: 40, AvgDistanceKm: 18, Days: 220})
	require.NoError(t, err)
	_, err = operational.AddTemporaryWorks(scope.TemporaryWorksInput{System: "scaffolding", AreaM2: 3200, Reuses: 6})
	require.NoError(t, err)

	snapshot := report.BuildSnapshot(embodied, operational, report.Options{GrossFloorAreaM2: 12000})

	// Embodied carbon dominates a structure-heavy project: several hundred
	// tonnes, but well under ten thousand.
	assert.Greater(t, snapshot.Embodied.Summary.NetKg, 300_000.0)
	assert.Less(t, snapshot.Embodied.Summary.NetKg, 10_000_000.0)

	// Operational sits in the tens-to-hundreds-of-tonnes range.
	assert.Greater(t, snapshot.Operational.Summary.TotalKg, 50_000.0)
	assert.Less(t, snapshot.Operational.Summary.TotalKg, 1_000_000.0)

	// Shares sum to 100 and the intensity figure is populated.
	shares := snapshot.Project.Shares
	assert.InDelta(t, 100.0, shares.EmbodiedPct+shares.OperationalPct, 1e-9)
	assert.InDelta(t, shares.OperationalPct, shares.Scope1Pct+shares.Scope2Pct+shares.Scope3Pct, 1e-9)
	assert.Greater(t, snapshot.Project.IntensityKgPerM2, 0.0)

	// Most waste weight was diverted from landfill.
	assert.Greater(t, snapshot.Operational.WasteDiversionPct, 50.0)

	// The snapshot survives an encode/decode round trip.
	var buf bytes.Buffer
	require.NoError(t, snapshot.Encode(&buf, false))
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Contains(t, decoded, "project")
}

// TestSharedRegistry_ConcurrentCalculators verifies that a single registry
// can back many independent calculators running in parallel. Calculators
// themselves are single-owner; the registry is read-only after overrides
// are applied.
func TestSharedRegistry_ConcurrentCalculators(t *testing.T) {
	registry := factors.NewRegistry()
	logger := zerolog.Nop()

	const workers = 16
	done := make(chan float64, workers)

	for i := 0; i < workers; i++ {
		go func() {
			c := scope.New(registry, scope.Options{Region: "NSW", Logger: logger})
			for j := 0; j < 100; j++ {
				if _, err := c.AddEquipment(scope.EquipmentInput{Class: "cranes", Model: "tower_crane", Hours: 1}); err != nil {
					done <- -1
					return
				}
			}
			done <- c.AllScopes().TotalKg
		}()
	}

	want := 100 * 16 * 2.68
	for i := 0; i < workers; i++ {
		got := <-done
		assert.InDelta(t, want, got, 1e-6)
	}
}

// TestFactorOverrides_FlowThroughToReport verifies that an override applied
// to the registry changes the computed report without touching defaults in
// other registries.
func TestFactorOverrides_FlowThroughToReport(t *testing.T) {
	logger := zerolog.Nop()

	overrides, err := factors.ParseOverrides([]byte("grid:\n  NSW: 0.30\n"))
	require.NoError(t, err)

	overridden := factors.NewRegistry()
	overridden.ApplyOverrides(overrides, logger)
	stock := factors.NewRegistry()

	run := func(reg *factors.Registry) float64 {
		c := scope.New(reg, scope.Options{Region: "NSW", Logger: logger})
		_, err := c.AddElectricity(scope.ElectricityInput{KWh: 1000})
		require.NoError(t, err)
		return c.AllScopes().TotalKg
	}

	assert.InDelta(t, 300.0, run(overridden), 1e-9)
	assert.InDelta(t, 680.0, run(stock), 1e-9)
}
