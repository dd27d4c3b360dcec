package entities

import (
	"time"

	"github.com/google/uuid"
)

type Order struct {
	ID              uuid.UUID
	Name            string
	DistrictID      uuid.UUID
	CourierID       uuid.UUID
	Status          OrderStatusType
	DatePublication time.Time
	DateCompletion  *time.Time
}

type OrderStatusType string

const (
	OrderInProgress OrderStatusType = "in_progress"
	OrderCompleted  OrderStatusType = "completed"
)

func (s OrderStatusType) String() string {
	return string(s)
}

// Code возвращает числовой код статуса внешнего контракта:
// 1 — in_progress, 2 — completed.
func (s OrderStatusType) Code() int {
	if s == OrderCompleted {
		return 2
	}
	return 1
}

// OrderAssignment результат назначения заказа диспетчером.
type OrderAssignment struct {
	OrderID   uuid.UUID
	CourierID uuid.UUID
}
