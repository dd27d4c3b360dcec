package district

import "errors"

var (
	ErrInvalidName = errors.New("invalid district name")

	ErrDistrictNotFound = errors.New("district not found")
	ErrConflict         = errors.New("district already exists")
)
