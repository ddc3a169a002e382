package model

import "errors"

var (
	ErrConstructionNotFound    = errors.New("construction not found in catalog")
	ErrTemperatureNotFound     = errors.New("temperature not found in catalog")
	ErrMissingName             = errors.New("name is required")
	ErrInvalidConstructionType = errors.New("invalid construction type")
	ErrInvalidElementType      = errors.New("invalid element type")
	ErrInvalidUValue           = errors.New("u-value must be greater than zero")
	ErrMissingThickness        = errors.New("thickness is required for wall, floor and ceiling constructions")
	ErrUnexpectedThickness     = errors.New("windows and doors carry no thickness")
	ErrNegativeThickness       = errors.New("thickness must not be negative")
	ErrMissingDimensions       = errors.New("windows and doors require width and height")
	ErrInvalidDimensions       = errors.New("width and height must be greater than zero")
	ErrNegativeArea            = errors.New("area dimensions must not be negative")
	ErrInvalidWallLength       = errors.New("wall net length must be greater than zero")
	ErrInvalidRoomHeight       = errors.New("room net height must be greater than zero")
	ErrNegativeAirChange       = errors.New("air change rate must not be negative")
	ErrNegativeSurcharge       = errors.New("thermal bridge surcharge must not be negative")
)
