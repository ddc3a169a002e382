package model

import "fmt"

// ConstructionType is an integer enum over the closed set of catalog
// assembly types.
type ConstructionType int

const (
	ConstructionUnknown ConstructionType = iota
	ExternalWall
	InternalWall
	Ceiling
	Floor
	Window
	Door
)

func (c ConstructionType) Valid() bool {
	switch c {
	case ExternalWall, InternalWall, Ceiling, Floor, Window, Door:
		return true
	default:
		return false
	}
}

// RequiresThickness reports whether assemblies of this type carry a
// thickness. Windows and doors are net openings and have none.
func (c ConstructionType) RequiresThickness() bool {
	switch c {
	case ExternalWall, InternalWall, Ceiling, Floor:
		return true
	case Window, Door:
		return false
	default:
		return false
	}
}

// WallType reports whether the type is usable as a wall assembly.
func (c ConstructionType) WallType() bool {
	return c == ExternalWall || c == InternalWall
}

func (c ConstructionType) String() string {
	switch c {
	case ExternalWall:
		return "external_wall"
	case InternalWall:
		return "internal_wall"
	case Ceiling:
		return "ceiling"
	case Floor:
		return "floor"
	case Window:
		return "window"
	case Door:
		return "door"
	default:
		return "unknown"
	}
}

// ParseConstructionType is used by the JSON codec and the editor surface.
func ParseConstructionType(s string) (ConstructionType, error) {
	switch s {
	case "external_wall":
		return ExternalWall, nil
	case "internal_wall":
		return InternalWall, nil
	case "ceiling":
		return Ceiling, nil
	case "floor":
		return Floor, nil
	case "window":
		return Window, nil
	case "door":
		return Door, nil
	default:
		return ConstructionUnknown, fmt.Errorf("invalid construction type: %q", s)
	}
}

// MarshalJSON writes the type as its string tag so the persisted
// document stays language-neutral.
func (c ConstructionType) MarshalJSON() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("cannot marshal construction type %d", int(c))
	}
	return []byte(`"` + c.String() + `"`), nil
}

func (c *ConstructionType) UnmarshalJSON(data []byte) error {
	s, err := unquote(data)
	if err != nil {
		return err
	}
	parsed, err := ParseConstructionType(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ElementType is an integer enum over concrete envelope element kinds.
type ElementType int

const (
	ElementUnknown ElementType = iota
	ElementWindow
	ElementDoor
	ElementCeiling
	ElementFloor
)

func (e ElementType) Valid() bool {
	switch e {
	case ElementWindow, ElementDoor, ElementCeiling, ElementFloor:
		return true
	default:
		return false
	}
}

// RequiresDimensions reports whether elements of this type need an
// explicit width and height. Floors and ceilings take their area from
// the room footprint instead.
func (e ElementType) RequiresDimensions() bool {
	return e == ElementWindow || e == ElementDoor
}

func (e ElementType) String() string {
	switch e {
	case ElementWindow:
		return "window"
	case ElementDoor:
		return "door"
	case ElementCeiling:
		return "ceiling"
	case ElementFloor:
		return "floor"
	default:
		return "unknown"
	}
}

func ParseElementType(s string) (ElementType, error) {
	switch s {
	case "window":
		return ElementWindow, nil
	case "door":
		return ElementDoor, nil
	case "ceiling":
		return ElementCeiling, nil
	case "floor":
		return ElementFloor, nil
	default:
		return ElementUnknown, fmt.Errorf("invalid element type: %q", s)
	}
}

func (e ElementType) MarshalJSON() ([]byte, error) {
	if !e.Valid() {
		return nil, fmt.Errorf("cannot marshal element type %d", int(e))
	}
	return []byte(`"` + e.String() + `"`), nil
}

func (e *ElementType) UnmarshalJSON(data []byte) error {
	s, err := unquote(data)
	if err != nil {
		return err
	}
	parsed, err := ParseElementType(s)
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}

func unquote(data []byte) (string, error) {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return "", fmt.Errorf("expected JSON string, got %s", data)
	}
	return string(data[1 : len(data)-1]), nil
}
