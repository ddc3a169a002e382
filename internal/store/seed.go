package store

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/heizwerk/heizlast/internal/model"
)

// Catalog seed files let a new building start from a curated assembly
// and temperature catalog instead of an empty one.

type catalogSeed struct {
	Constructions []constructionSeed `yaml:"constructions"`
	Temperatures  []temperatureSeed  `yaml:"temperatures"`
}

type constructionSeed struct {
	Name        string   `yaml:"name"`
	ElementType string   `yaml:"element_type"`
	UValue      float64  `yaml:"u_value_w_m2k"`
	Thickness   *float64 `yaml:"thickness_m"`
}

type temperatureSeed struct {
	Name         string  `yaml:"name"`
	ValueCelsius float64 `yaml:"value_celsius"`
}

// LoadCatalogSeed parses a YAML seed file into validated catalog
// entries.
func LoadCatalogSeed(path string) ([]model.Construction, []model.Temperature, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read catalog seed: %w", err)
	}

	var seed catalogSeed
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, nil, fmt.Errorf("parse catalog seed %s: %w", path, err)
	}

	constructions := make([]model.Construction, 0, len(seed.Constructions))
	for _, c := range seed.Constructions {
		elementType, err := model.ParseConstructionType(c.ElementType)
		if err != nil {
			return nil, nil, fmt.Errorf("catalog seed %s: construction %q: %w", path, c.Name, err)
		}
		con := model.Construction{
			Name:        c.Name,
			ElementType: elementType,
			UValue:      c.UValue,
			Thickness:   c.Thickness,
		}
		if err := con.Validate(); err != nil {
			return nil, nil, fmt.Errorf("catalog seed %s: %w", path, err)
		}
		constructions = append(constructions, con)
	}

	temperatures := make([]model.Temperature, 0, len(seed.Temperatures))
	for _, t := range seed.Temperatures {
		temp := model.Temperature{Name: t.Name, ValueCelsius: t.ValueCelsius}
		if err := temp.Validate(); err != nil {
			return nil, nil, fmt.Errorf("catalog seed %s: %w", path, err)
		}
		temperatures = append(temperatures, temp)
	}

	return constructions, temperatures, nil
}
