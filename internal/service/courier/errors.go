package courier

import "errors"

var (
	ErrInvalidName     = errors.New("invalid name")
	ErrEmptyDistricts  = errors.New("districts list is empty")
	ErrInvalidCourierID = errors.New("invalid courier id")

	ErrCourierNotFound     = errors.New("courier not found")
	ErrActiveOrderNotFound = errors.New("active order not found")
	ErrConflict            = errors.New("resource already exists")
)
