//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=courier_test
package courier

import (
	"context"

	"github.com/google/uuid"
	"dispatch/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, courierEntity entities.Courier) (*entities.Courier, error)
	AddDistricts(ctx context.Context, courierID uuid.UUID, districtIDs []uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Courier, error)
	GetAll(ctx context.Context) ([]entities.Courier, error)
	UpdateStatistics(ctx context.Context, id uuid.UUID, stats entities.CourierStatistics) (*entities.Courier, error)
}

type OrderRepository interface {
	GetActiveByCourier(ctx context.Context, courierID uuid.UUID) (*entities.Order, error)
}

type DistrictRegistry interface {
	ResolveOrCreate(ctx context.Context, name string) (*entities.District, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
