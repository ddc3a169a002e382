package heatload

import "errors"

var (
	ErrNoAdjacentThickness        = errors.New("construction type has no adjacency thickness")
	ErrNotWallConstruction        = errors.New("wall references a non-wall construction")
	ErrOpeningsExceedWall         = errors.New("opening areas exceed the wall's gross area")
	ErrMissingRoomTemperature     = errors.New("room has no room temperature assigned")
	ErrMissingAdjacentTemperature = errors.New("internal wall has no adjacent room temperature assigned")
	ErrMissingOutsideTemperature  = errors.New("building has no outside temperature assigned")
)
