package scope

import (
	"github.com/rshade/sitecarbon/internal/emissions"
)

// AddEquipment records a fuel-burning plant entry under scope 1. Fuel
// consumed is hours × the model's hourly rate unless the caller supplies
// an explicit override, which replaces the derived figure entirely.
func (c *Calculator) AddEquipment(input EquipmentInput) (Result, error) {
	if input.Class == "" || input.Model == "" {
		return Result{}, emissions.ErrInvalidInput
	}
	if !validQuantities(input.Hours) || !validOverride(input.FuelOverride) {
		return Result{}, emissions.ErrInvalidInput
	}

	flagged := false
	rec, ok := c.registry.Equipment(input.Class, input.Model)
	if ok {
		_, ok = c.registry.FuelFactor(rec.Fuel)
	}
	if !ok {
		var err error
		if flagged, err = c.missingFactor(CategoryEquipment, input.Class+"/"+input.Model); err != nil {
			return Result{}, err
		}
	}
	return c.add(Scope1, CategoryEquipment, "", input, flagged), nil
}

// AddVehicle records a site vehicle entry under scope 1. Fuel consumed is
// distance / 100 × the model's litres-per-100km rate unless overridden.
func (c *Calculator) AddVehicle(input VehicleInput) (Result, error) {
	if input.Class == "" || input.Model == "" {
		return Result{}, emissions.ErrInvalidInput
	}
	if !validQuantities(input.DistanceKm) || !validOverride(input.FuelOverride) {
		return Result{}, emissions.ErrInvalidInput
	}

	flagged := false
	rec, ok := c.registry.Vehicle(input.Class, input.Model)
	if ok {
		_, ok = c.registry.FuelFactor(rec.Fuel)
	}
	if !ok {
		var err error
		if flagged, err = c.missingFactor(CategoryVehicles, input.Class+"/"+input.Model); err != nil {
			return Result{}, err
		}
	}
	return c.add(Scope1, CategoryVehicles, "", input, flagged), nil
}

// AddGenerator records a generator entry under scope 1.
func (c *Calculator) AddGenerator(input GeneratorInput) (Result, error) {
	if input.Model == "" {
		return Result{}, emissions.ErrInvalidInput
	}
	if !validQuantities(input.Hours) || !validOverride(input.FuelOverride) {
		return Result{}, emissions.ErrInvalidInput
	}

	flagged := false
	rec, ok := c.registry.Generator(input.Model)
	if ok {
		_, ok = c.registry.FuelFactor(rec.Fuel)
	}
	if !ok {
		var err error
		if flagged, err = c.missingFactor(CategoryGenerators, input.Model); err != nil {
			return Result{}, err
		}
	}
	return c.add(Scope1, CategoryGenerators, "", input, flagged), nil
}

// AddHeating records a site heating entry under scope 1. Gas appliances
// are rated in MJ per hour; liquid-fuel appliances in litres per hour. A
// fuel override is expressed in the appliance's fuel unit.
func (c *Calculator) AddHeating(input HeatingInput) (Result, error) {
	if input.Kind == "" {
		return Result{}, emissions.ErrInvalidInput
	}
	if !validQuantities(input.Hours) || !validOverride(input.FuelOverride) {
		return Result{}, emissions.ErrInvalidInput
	}

	flagged := false
	rec, ok := c.registry.Heating(input.Kind)
	if ok {
		_, ok = c.registry.FuelFactor(rec.Fuel)
	}
	if !ok {
		var err error
		if flagged, err = c.missingFactor(CategoryHeating, input.Kind); err != nil {
			return Result{}, err
		}
	}
	return c.add(Scope1, CategoryHeating, "", input, flagged), nil
}
