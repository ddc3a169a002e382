package model

// Clone returns a deep copy of the building. The editing layer hands
// clones to the calculation core and to callers so a snapshot stays
// stable while the aggregate keeps being edited.
func (b Building) Clone() Building {
	out := b
	out.TemperatureCatalog = append([]Temperature(nil), b.TemperatureCatalog...)
	out.ConstructionCatalog = make([]Construction, len(b.ConstructionCatalog))
	for i, c := range b.ConstructionCatalog {
		out.ConstructionCatalog[i] = c.clone()
	}
	out.Rooms = make([]Room, len(b.Rooms))
	for i, r := range b.Rooms {
		out.Rooms[i] = r.clone()
	}
	return out
}

func (c Construction) clone() Construction {
	out := c
	out.Thickness = cloneF64(c.Thickness)
	return out
}

func (e Element) clone() Element {
	out := e
	out.Width = cloneF64(e.Width)
	out.Height = cloneF64(e.Height)
	return out
}

func (w Wall) clone() Wall {
	out := w
	out.Windows = cloneElements(w.Windows)
	out.Doors = cloneElements(w.Doors)
	return out
}

func (r Room) clone() Room {
	out := r
	out.Areas = append([]Area(nil), r.Areas...)
	out.Walls = make([]Wall, len(r.Walls))
	for i, w := range r.Walls {
		out.Walls[i] = w.clone()
	}
	if r.Floor != nil {
		floor := r.Floor.clone()
		out.Floor = &floor
	}
	if r.Ceiling != nil {
		ceiling := r.Ceiling.clone()
		out.Ceiling = &ceiling
	}
	return out
}

func cloneElements(elements []Element) []Element {
	if elements == nil {
		return nil
	}
	out := make([]Element, len(elements))
	for i, e := range elements {
		out[i] = e.clone()
	}
	return out
}

func cloneF64(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
