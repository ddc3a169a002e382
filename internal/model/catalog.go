package model

import "fmt"

// Catalog indexes a building's constructions and temperatures by name.
// It is built once per calculation pass; lookups fail loudly on a miss
// because a dangling catalog reference means the data model is corrupt,
// and silently substituting a default would produce plausible-looking
// but wrong heat loads.
type Catalog struct {
	constructions map[string]Construction
	temperatures  map[string]Temperature
}

// NewCatalog builds the name index over the building's catalogs. Names
// are unique by convention; on a duplicate the last entry wins, matching
// how the editor overwrites entries in place.
func NewCatalog(b *Building) *Catalog {
	c := &Catalog{
		constructions: make(map[string]Construction, len(b.ConstructionCatalog)),
		temperatures:  make(map[string]Temperature, len(b.TemperatureCatalog)),
	}
	for _, con := range b.ConstructionCatalog {
		c.constructions[con.Name] = con
	}
	for _, temp := range b.TemperatureCatalog {
		c.temperatures[temp.Name] = temp
	}
	return c
}

func (c *Catalog) Construction(name string) (Construction, error) {
	if name == "" {
		return Construction{}, fmt.Errorf("empty name: %w", ErrConstructionNotFound)
	}
	con, ok := c.constructions[name]
	if !ok {
		return Construction{}, fmt.Errorf("construction %q: %w", name, ErrConstructionNotFound)
	}
	return con, nil
}

func (c *Catalog) Temperature(name string) (Temperature, error) {
	if name == "" {
		return Temperature{}, fmt.Errorf("empty name: %w", ErrTemperatureNotFound)
	}
	temp, ok := c.temperatures[name]
	if !ok {
		return Temperature{}, fmt.Errorf("temperature %q: %w", name, ErrTemperatureNotFound)
	}
	return temp, nil
}
