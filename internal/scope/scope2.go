package scope

import (
	"github.com/rshade/sitecarbon/internal/emissions"
)

// AddElectricity records a metered electricity entry under scope 2.
// Emissions are kWh × the regional grid factor; a region with a zero
// factor yields exactly zero emissions, which is a correct outcome, not
// missing data.
func (c *Calculator) AddElectricity(input ElectricityInput) (Result, error) {
	if !validQuantities(input.KWh) {
		return Result{}, emissions.ErrInvalidInput
	}

	region := c.resolveRegion(input.Region)
	flagged, err := c.checkGrid(CategoryElectricity, region)
	if err != nil {
		return Result{}, err
	}
	return c.add(Scope2, CategoryElectricity, region, input, flagged), nil
}

// AddFacility records a site facility entry under scope 2. Energy is the
// facility's registry daily rate × days.
func (c *Calculator) AddFacility(input FacilityInput) (Result, error) {
	if input.Kind == "" || !validQuantities(input.Days) {
		return Result{}, emissions.ErrInvalidInput
	}

	region := c.resolveRegion(input.Region)
	flagged := false
	if _, ok := c.registry.Facility(input.Kind); !ok {
		var err error
		if flagged, err = c.missingFactor(CategoryFacilities, input.Kind); err != nil {
			return Result{}, err
		}
	}
	if !flagged {
		var err error
		if flagged, err = c.checkGrid(CategoryFacilities, region); err != nil {
			return Result{}, err
		}
	}
	return c.add(Scope2, CategoryFacilities, region, input, flagged), nil
}

// AddElectricEquipment records a mains-powered equipment entry under
// scope 2. Energy is the equipment's kW draw × operating hours.
func (c *Calculator) AddElectricEquipment(input ElectricEquipmentInput) (Result, error) {
	if input.Kind == "" || !validQuantities(input.Hours) {
		return Result{}, emissions.ErrInvalidInput
	}

	region := c.resolveRegion(input.Region)
	flagged := false
	if _, ok := c.registry.ElectricEquipment(input.Kind); !ok {
		var err error
		if flagged, err = c.missingFactor(CategoryElectricEquipment, input.Kind); err != nil {
			return Result{}, err
		}
	}
	if !flagged {
		var err error
		if flagged, err = c.checkGrid(CategoryElectricEquipment, region); err != nil {
			return Result{}, err
		}
	}
	return c.add(Scope2, CategoryElectricEquipment, region, input, flagged), nil
}

// checkGrid applies the missing-factor policy to a grid lookup. A known
// region with a zero factor passes; only an absent region is a miss.
func (c *Calculator) checkGrid(category Category, region string) (bool, error) {
	if _, ok := c.registry.GridFactor(region); ok {
		return false, nil
	}
	return c.missingFactor(category, "grid/"+region)
}
