package district

import "github.com/google/uuid"

type DistrictDB struct {
	ID   uuid.UUID
	Name string
}
