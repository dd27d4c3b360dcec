package entities

import (
	"time"

	"github.com/google/uuid"
)

type Courier struct {
	ID   uuid.UUID
	Name string

	// Статистика появляется только после первого завершённого заказа,
	// до этого nil.
	AvgCompletionSeconds *float64
	AvgDailyOrders       *int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CourierStatistics пересчитывается целиком по истории завершённых
// заказов курьера при каждом завершении.
type CourierStatistics struct {
	AvgCompletionSeconds float64
	AvgDailyOrders       int64
}

type CourierDetail struct {
	Courier
	ActiveOrder *ActiveOrder
}

type ActiveOrder struct {
	ID   uuid.UUID
	Name string
}
