package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/rshade/sitecarbon/internal/emissions"
	"github.com/rshade/sitecarbon/internal/factors"
	"github.com/rshade/sitecarbon/internal/lca"
	"github.com/rshade/sitecarbon/internal/scope"
)

// ProjectFile is the YAML input describing one project: its settings plus
// every material and operational line item.
type ProjectFile struct {
	Project struct {
		Name             string  `yaml:"name"`
		Region           string  `yaml:"region"`
		DesignLifeYears  float64 `yaml:"design_life_years"`
		GrossFloorAreaM2 float64 `yaml:"gross_floor_area_m2"`
	} `yaml:"project"`

	Materials []lca.MaterialInput `yaml:"materials"`

	Scope1 struct {
		Equipment  []scope.EquipmentInput `yaml:"equipment"`
		Vehicles   []scope.VehicleInput   `yaml:"vehicles"`
		Generators []scope.GeneratorInput `yaml:"generators"`
		Heating    []scope.HeatingInput   `yaml:"heating"`
	} `yaml:"scope1"`

	Scope2 struct {
		Electricity       []scope.ElectricityInput       `yaml:"electricity"`
		Facilities        []scope.FacilityInput          `yaml:"facilities"`
		ElectricEquipment []scope.ElectricEquipmentInput `yaml:"electric_equipment"`
	} `yaml:"scope2"`

	Scope3 struct {
		Transport      []scope.TransportInput      `yaml:"transport"`
		Waste          []scope.WasteInput          `yaml:"waste"`
		Water          []scope.WaterInput          `yaml:"water"`
		Commuting      []scope.CommutingInput      `yaml:"commuting"`
		TemporaryWorks []scope.TemporaryWorksInput `yaml:"temporary_works"`
	} `yaml:"scope3"`
}

// loadProject reads and parses a project YAML file.
func loadProject(path string) (ProjectFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ProjectFile{}, fmt.Errorf("failed to read project file: %w", err)
	}
	var p ProjectFile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return ProjectFile{}, fmt.Errorf("failed to parse project file: %w", err)
	}
	return p, nil
}

// loadRegistry builds the factor registry, merging an optional overrides
// file over the defaults.
func loadRegistry(overridesPath string, logger zerolog.Logger) (*factors.Registry, error) {
	if overridesPath == "" {
		return factors.NewRegistry(), nil
	}
	data, err := os.ReadFile(overridesPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read factor overrides: %w", err)
	}
	return factors.NewRegistryFromYAML(data, logger)
}

// populate feeds every line item from the project file into the
// calculators. Rejected items are logged and counted but never abort the
// batch; the remaining items still compute.
func populate(p ProjectFile, embodied *lca.Calculator, operational *scope.Calculator, logger zerolog.Logger) int {
	rejected := 0
	fail := func(kind string, err error) {
		rejected++
		logger.Error().Err(err).Str("item", kind).Msg("line item rejected")
	}

	for _, m := range p.Materials {
		if _, err := embodied.AddMaterial(m); err != nil {
			fail(fmt.Sprintf("material %s/%s", m.Category, m.Type), err)
		}
	}
	for _, it := range p.Scope1.Equipment {
		if _, err := operational.AddEquipment(it); err != nil {
			fail(fmt.Sprintf("equipment %s/%s", it.Class, it.Model), err)
		}
	}
	for _, it := range p.Scope1.Vehicles {
		if _, err := operational.AddVehicle(it); err != nil {
			fail(fmt.Sprintf("vehicle %s/%s", it.Class, it.Model), err)
		}
	}
	for _, it := range p.Scope1.Generators {
		if _, err := operational.AddGenerator(it); err != nil {
			fail("generator "+it.Model, err)
		}
	}
	for _, it := range p.Scope1.Heating {
		if _, err := operational.AddHeating(it); err != nil {
			fail("heating "+it.Kind, err)
		}
	}
	for _, it := range p.Scope2.Electricity {
		if _, err := operational.AddElectricity(it); err != nil {
			fail("electricity", err)
		}
	}
	for _, it := range p.Scope2.Facilities {
		if _, err := operational.AddFacility(it); err != nil {
			fail("facility "+it.Kind, err)
		}
	}
	for _, it := range p.Scope2.ElectricEquipment {
		if _, err := operational.AddElectricEquipment(it); err != nil {
			fail("electric equipment "+it.Kind, err)
		}
	}
	for _, it := range p.Scope3.Transport {
		if _, err := operational.AddTransport(it); err != nil {
			fail("transport "+it.Mode, err)
		}
	}
	for _, it := range p.Scope3.Waste {
		if _, err := operational.AddWaste(it); err != nil {
			fail(fmt.Sprintf("waste %s/%s", it.Material, it.Method), err)
		}
	}
	for _, it := range p.Scope3.Water {
		if _, err := operational.AddWater(it); err != nil {
			fail("water "+it.Treatment, err)
		}
	}
	for _, it := range p.Scope3.Commuting {
		if _, err := operational.AddCommuting(it); err != nil {
			fail("commuting "+it.Mode, err)
		}
	}
	for _, it := range p.Scope3.TemporaryWorks {
		if _, err := operational.AddTemporaryWorks(it); err != nil {
			fail("temporary works "+it.System, err)
		}
	}
	return rejected
}

// newCalculators builds the two calculators from project settings.
func newCalculators(p ProjectFile, registry *factors.Registry, policy emissions.Policy, logger zerolog.Logger) (*lca.Calculator, *scope.Calculator) {
	embodied := lca.New(registry, lca.Options{
		DesignLifeYears: p.Project.DesignLifeYears,
		Policy:          policy,
		Logger:          logger,
	})
	operational := scope.New(registry, scope.Options{
		Region: p.Project.Region,
		Policy: policy,
		Logger: logger,
	})
	return embodied, operational
}
