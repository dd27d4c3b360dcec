//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"
	"time"

	"github.com/google/uuid"
	"dispatch/internal/entities"
)

type Repository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Order, error)
	MarkCompleted(ctx context.Context, id uuid.UUID, completedAt time.Time) (*entities.Order, error)
	GetCompletedByCourier(ctx context.Context, courierID uuid.UUID) ([]entities.Order, error)
}

type CourierService interface {
	UpdateStatistics(ctx context.Context, id uuid.UUID, stats entities.CourierStatistics) (*entities.Courier, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
