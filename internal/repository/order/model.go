package order

import (
	"time"

	"github.com/google/uuid"
)

type OrderDB struct {
	ID              uuid.UUID
	Name            string
	DistrictID      uuid.UUID
	CourierID       uuid.UUID
	Status          string
	DatePublication time.Time
	DateCompletion  *time.Time
}
