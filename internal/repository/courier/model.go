package courier

import (
	"time"

	"github.com/google/uuid"
)

type CourierDB struct {
	ID                   uuid.UUID
	Name                 string
	AvgCompletionSeconds *float64
	AvgDailyOrders       *int64
	CreatedAt            time.Time
	UpdatedAt            time.Time
}
