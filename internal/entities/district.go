package entities

import "github.com/google/uuid"

type District struct {
	ID   uuid.UUID
	Name string
}
