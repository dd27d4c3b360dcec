package dispatch

import "errors"

var (
	ErrInvalidOrderName    = errors.New("invalid order name")
	ErrInvalidDistrictName = errors.New("invalid district name")

	// ErrNoSuitableCourier возвращается и для неизвестного района, и
	// для района без свободных курьеров: для вызывающего это одно и то
	// же состояние "некому доставить".
	ErrNoSuitableCourier = errors.New("no suitable courier found")

	// ErrCourierAlreadyAssigned - гонка двух конкурентных назначений,
	// пойманная частичным уникальным индексом по in_progress заказам.
	ErrCourierAlreadyAssigned = errors.New("courier already has an order in progress")
)
