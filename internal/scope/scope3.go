package scope

import (
	"github.com/rshade/sitecarbon/internal/emissions"
)

// AddTransport records a freight movement under scope 3. Emissions are
// weight × distance × the mode factor per tonne-km.
func (c *Calculator) AddTransport(input TransportInput) (Result, error) {
	if input.Mode == "" || !validQuantities(input.WeightTonnes, input.DistanceKm) {
		return Result{}, emissions.ErrInvalidInput
	}

	flagged := false
	if _, ok := c.registry.TransportMode(input.Mode); !ok {
		var err error
		if flagged, err = c.missingFactor(CategoryTransport, input.Mode); err != nil {
			return Result{}, err
		}
	}
	return c.add(Scope3, CategoryTransport, "", input, flagged), nil
}

// AddWaste records a waste disposal entry under scope 3. Emissions are
// weight × the factor for the material/method pair.
func (c *Calculator) AddWaste(input WasteInput) (Result, error) {
	if input.Material == "" || input.Method == "" || !validQuantities(input.WeightTonnes) {
		return Result{}, emissions.ErrInvalidInput
	}

	flagged := false
	if _, ok := c.registry.WasteFactor(input.Material, input.Method); !ok {
		var err error
		if flagged, err = c.missingFactor(CategoryWaste, input.Material+"/"+input.Method); err != nil {
			return Result{}, err
		}
	}
	return c.add(Scope3, CategoryWaste, "", input, flagged), nil
}

// AddWater records a water use entry under scope 3. Emissions are volume
// × the treatment factor per kL.
func (c *Calculator) AddWater(input WaterInput) (Result, error) {
	if input.Treatment == "" || !validQuantities(input.VolumeKL) {
		return Result{}, emissions.ErrInvalidInput
	}

	flagged := false
	if _, ok := c.registry.WaterFactor(input.Treatment); !ok {
		var err error
		if flagged, err = c.missingFactor(CategoryWater, input.Treatment); err != nil {
			return Result{}, err
		}
	}
	return c.add(Scope3, CategoryWater, "", input, flagged), nil
}

// AddCommuting records a workforce commuting entry under scope 3. Total
// distance is employees × average one-way distance × days × 2 (round
// trip); emissions are that distance × the mode factor.
func (c *Calculator) AddCommuting(input CommutingInput) (Result, error) {
	if input.Mode == "" || input.Employees < 0 || input.Days < 0 {
		return Result{}, emissions.ErrInvalidInput
	}
	if !validQuantities(input.AvgDistanceKm) {
		return Result{}, emissions.ErrInvalidInput
	}

	flagged := false
	if _, ok := c.registry.CommuteFactor(input.Mode); !ok {
		var err error
		if flagged, err = c.missingFactor(CategoryCommuting, input.Mode); err != nil {
			return Result{}, err
		}
	}
	return c.add(Scope3, CategoryCommuting, "", input, flagged), nil
}

// AddTemporaryWorks records a temporary-works entry under scope 3. The
// embodied emissions (area × factor) are amortized over the reuse count;
// zero or missing reuses means one use, never a division by zero. A
// negative reuse count is invalid input.
func (c *Calculator) AddTemporaryWorks(input TemporaryWorksInput) (Result, error) {
	if input.System == "" || input.Reuses < 0 || !validQuantities(input.AreaM2) {
		return Result{}, emissions.ErrInvalidInput
	}

	flagged := false
	if _, ok := c.registry.TemporaryWorksFactor(input.System); !ok {
		var err error
		if flagged, err = c.missingFactor(CategoryTemporaryWorks, input.System); err != nil {
			return Result{}, err
		}
	}
	return c.add(Scope3, CategoryTemporaryWorks, "", input, flagged), nil
}
