// Package report combines embodied-carbon and operational results into a
// unified project total with percentage shares, and produces export-ready
// snapshots for downstream collaborators (storage, rendering, compliance
// rating) to consume.
package report

import (
	"io"
	"time"

	json "github.com/goccy/go-json"

	"github.com/rshade/sitecarbon/internal/emissions"
	"github.com/rshade/sitecarbon/internal/lca"
	"github.com/rshade/sitecarbon/internal/scope"
)

// Options configures the combined report.
type Options struct {
	// GrossFloorAreaM2, when positive, enables the carbon-intensity
	// figure (kg CO2-e per m² of gross floor area).
	GrossFloorAreaM2 float64
}

// SourceShares breaks the combined total into percentage shares. Values
// divide by the combined total; a zero total yields zero shares.
type SourceShares struct {
	// EmbodiedPct is the embodied (net LCA) share of the combined total.
	EmbodiedPct float64 `json:"embodied_pct"`

	// OperationalPct is the scope 1+2+3 share of the combined total.
	OperationalPct float64 `json:"operational_pct"`

	// Scope1Pct, Scope2Pct, and Scope3Pct are each scope's share of the
	// combined total.
	Scope1Pct float64 `json:"scope1_pct"`
	Scope2Pct float64 `json:"scope2_pct"`
	Scope3Pct float64 `json:"scope3_pct"`
}

// ProjectSummary is the unified project total across both accounting
// frameworks.
type ProjectSummary struct {
	// EmbodiedNetKg is the LCA net figure: gross stages A-C plus the
	// signed-negative module-D credit.
	EmbodiedNetKg float64 `json:"embodied_net_kg"`

	// OperationalKg is the scope 1+2+3 total.
	OperationalKg float64 `json:"operational_kg"`

	TotalKg     float64 `json:"total_kg"`
	TotalTonnes float64 `json:"total_tonnes"`

	Shares SourceShares `json:"shares"`

	// IntensityKgPerM2 is the combined total per m² of gross floor
	// area; zero when no floor area was supplied.
	IntensityKgPerM2 float64 `json:"intensity_kg_per_m2,omitempty"`
}

// Combine merges an embodied summary and an operational summary into one
// project total. Percentage shares are computed fresh from the inputs and
// never rounded here; rounding belongs to the display boundary.
func Combine(embodied lca.Summary, operational scope.Summary, opts Options) ProjectSummary {
	s := ProjectSummary{
		EmbodiedNetKg: embodied.NetKg,
		OperationalKg: operational.TotalKg,
	}
	s.TotalKg = s.EmbodiedNetKg + s.OperationalKg
	s.TotalTonnes = emissions.Tonnes(s.TotalKg)

	if s.TotalKg != 0 {
		s.Shares = SourceShares{
			EmbodiedPct:    s.EmbodiedNetKg / s.TotalKg * 100,
			OperationalPct: s.OperationalKg / s.TotalKg * 100,
			Scope1Pct:      operational.Scope1.EmissionsKg / s.TotalKg * 100,
			Scope2Pct:      operational.Scope2.EmissionsKg / s.TotalKg * 100,
			Scope3Pct:      operational.Scope3.EmissionsKg / s.TotalKg * 100,
		}
	}
	if opts.GrossFloorAreaM2 > 0 {
		s.IntensityKgPerM2 = s.TotalKg / opts.GrossFloorAreaM2
	}
	return s
}

// Snapshot is the full export record: input items, computed breakdowns,
// the combined summary, and a generation timestamp. A collaborator can
// persist or transmit it and reconstruct the report without re-running
// calculations.
type Snapshot struct {
	GeneratedAt time.Time        `json:"generated_at"`
	Project     ProjectSummary   `json:"project"`
	Embodied    EmbodiedExport   `json:"embodied"`
	Operational scope.ExportData `json:"operational"`
}

// EmbodiedExport carries the LCA items alongside their summary.
type EmbodiedExport struct {
	DesignLifeYears float64     `json:"design_life_years,omitempty"`
	Items           []lca.Item  `json:"items"`
	Summary         lca.Summary `json:"summary"`
}

// BuildSnapshot assembles a snapshot from live calculators.
func BuildSnapshot(embodied *lca.Calculator, operational *scope.Calculator, opts Options) Snapshot {
	lcaSummary := embodied.Totals()
	opExport := operational.Export()
	return Snapshot{
		GeneratedAt: time.Now().UTC(),
		Project:     Combine(lcaSummary, opExport.Summary, opts),
		Embodied: EmbodiedExport{
			DesignLifeYears: embodied.DesignLifeYears(),
			Items:           embodied.Items(),
			Summary:         lcaSummary,
		},
		Operational: opExport,
	}
}

// Encode writes the snapshot as JSON.
func (s Snapshot) Encode(w io.Writer, pretty bool) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(s)
}
