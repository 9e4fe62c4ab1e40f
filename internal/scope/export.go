package scope

import "time"

// ExportData is a stable snapshot of the operational accounting: every
// tracked item, its computed result, the full summary, and a generation
// timestamp. It is sufficient to reconstruct the report without re-running
// any calculation.
type ExportData struct {
	GeneratedAt       time.Time            `json:"generated_at"`
	Items             map[Scope][]LineItem `json:"items"`
	Results           map[Scope][]Result   `json:"results"`
	Summary           Summary              `json:"summary"`
	WasteDiversionPct float64              `json:"waste_diversion_pct"`
}

// Export builds a snapshot of the current state. The snapshot is a copy;
// later adds and removals do not affect it.
func (c *Calculator) Export() ExportData {
	items := make(map[Scope][]LineItem, 3)
	results := make(map[Scope][]Result, 3)
	for _, s := range []Scope{Scope1, Scope2, Scope3} {
		items[s] = c.Items(s)
		results[s] = c.Results(s)
	}
	return ExportData{
		GeneratedAt:       time.Now().UTC(),
		Items:             items,
		Results:           results,
		Summary:           c.AllScopes(),
		WasteDiversionPct: c.WasteDiversionPct(),
	}
}
