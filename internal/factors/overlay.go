package factors

import (
	"fmt"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Overrides is the YAML-loadable overlay a collaborator can supply to
// replace or extend individual factor records without rebuilding. Every
// section is optional; present entries are merged key-by-key over the
// defaults, so a one-line overlay replaces exactly one record.
type Overrides struct {
	Fuels             map[string]float64                   `yaml:"fuels"`
	Grid              map[string]float64                   `yaml:"grid"`
	Equipment         map[string]map[string]PlantRecord    `yaml:"equipment"`
	Vehicles          map[string]map[string]VehicleRecord  `yaml:"vehicles"`
	Generators        map[string]PlantRecord               `yaml:"generators"`
	Heating           map[string]PlantRecord               `yaml:"heating"`
	ElectricEquipment map[string]float64                   `yaml:"electric_equipment"`
	Facilities        map[string]float64                   `yaml:"facilities"`
	Transport         map[string]float64                   `yaml:"transport"`
	Waste             map[string]map[string]float64        `yaml:"waste"`
	Water             map[string]float64                   `yaml:"water"`
	Commuting         map[string]float64                   `yaml:"commuting"`
	TemporaryWorks    map[string]float64                   `yaml:"temporary_works"`
	Materials         map[string]map[string]MaterialRecord `yaml:"materials"`
}

// ParseOverrides decodes a YAML overrides document. Negative rates are a
// data error and rejected outright rather than merged.
func ParseOverrides(data []byte) (Overrides, error) {
	var o Overrides
	if err := yaml.Unmarshal(data, &o); err != nil {
		return Overrides{}, fmt.Errorf("failed to parse factor overrides: %w", err)
	}
	if err := o.validate(); err != nil {
		return Overrides{}, err
	}
	return o, nil
}

func (o Overrides) validate() error {
	check := func(section, key string, v float64) error {
		if v < 0 {
			return fmt.Errorf("factor override %s/%s: rate must not be negative (got %v)", section, key, v)
		}
		return nil
	}
	for k, v := range o.Fuels {
		if err := check("fuels", k, v); err != nil {
			return err
		}
	}
	for k, v := range o.Grid {
		if err := check("grid", k, v); err != nil {
			return err
		}
	}
	for k, v := range o.Transport {
		if err := check("transport", k, v); err != nil {
			return err
		}
	}
	for k, v := range o.Water {
		if err := check("water", k, v); err != nil {
			return err
		}
	}
	for k, v := range o.Commuting {
		if err := check("commuting", k, v); err != nil {
			return err
		}
	}
	for k, v := range o.TemporaryWorks {
		if err := check("temporary_works", k, v); err != nil {
			return err
		}
	}
	for k, v := range o.ElectricEquipment {
		if err := check("electric_equipment", k, v); err != nil {
			return err
		}
	}
	for k, v := range o.Facilities {
		if err := check("facilities", k, v); err != nil {
			return err
		}
	}
	for mat, methods := range o.Waste {
		for method, v := range methods {
			if err := check("waste", mat+"/"+method, v); err != nil {
				return err
			}
		}
	}
	return nil
}

// NewRegistryFromYAML builds a registry from the defaults with a YAML
// overrides document merged in.
func NewRegistryFromYAML(data []byte, logger zerolog.Logger) (*Registry, error) {
	o, err := ParseOverrides(data)
	if err != nil {
		return nil, err
	}
	r := NewRegistry()
	r.ApplyOverrides(o, logger)
	return r, nil
}

// ApplyOverrides merges an overlay into the registry. It must be called
// before the registry is shared with any calculator; after that the
// registry is read-only. Unknown keys extend the tables, existing keys are
// replaced, and each replacement is logged at debug level.
func (r *Registry) ApplyOverrides(o Overrides, logger zerolog.Logger) {
	applied := 0
	for k, v := range o.Fuels {
		r.fuels[Fuel(k)] = v
		applied++
	}
	for k, v := range o.Grid {
		r.grid[k] = v
		applied++
	}
	for cat, models := range o.Equipment {
		if r.equipment[cat] == nil {
			r.equipment[cat] = make(map[string]PlantRecord, len(models))
		}
		for model, rec := range models {
			r.equipment[cat][model] = rec
			applied++
		}
	}
	for cat, models := range o.Vehicles {
		if r.vehicles[cat] == nil {
			r.vehicles[cat] = make(map[string]VehicleRecord, len(models))
		}
		for model, rec := range models {
			r.vehicles[cat][model] = rec
			applied++
		}
	}
	for k, v := range o.Generators {
		r.generators[k] = v
		applied++
	}
	for k, v := range o.Heating {
		r.heating[k] = v
		applied++
	}
	for k, v := range o.ElectricEquipment {
		r.electricEquipment[k] = v
		applied++
	}
	for k, v := range o.Facilities {
		r.facilities[k] = v
		applied++
	}
	for k, v := range o.Transport {
		r.transport[k] = v
		applied++
	}
	for mat, methods := range o.Waste {
		if r.waste[mat] == nil {
			r.waste[mat] = make(map[string]float64, len(methods))
		}
		for method, v := range methods {
			r.waste[mat][method] = v
			applied++
		}
	}
	for k, v := range o.Water {
		r.water[k] = v
		applied++
	}
	for k, v := range o.Commuting {
		r.commuting[k] = v
		applied++
	}
	for k, v := range o.TemporaryWorks {
		r.temporaryWorks[k] = v
		applied++
	}
	for cat, types := range o.Materials {
		if r.materials[cat] == nil {
			r.materials[cat] = make(map[string]MaterialRecord, len(types))
		}
		for typ, rec := range types {
			r.materials[cat][typ] = rec
			applied++
		}
	}
	if applied > 0 {
		logger.Debug().Int("records", applied).Msg("applied factor overrides")
	}
}
