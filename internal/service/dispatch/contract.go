//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=dispatch_test
package dispatch

import (
	"context"

	"github.com/google/uuid"
	"dispatch/internal/entities"
)

type CourierRepository interface {
	GetEligibleByDistrict(ctx context.Context, districtID uuid.UUID) ([]entities.Courier, error)
}

type OrderRepository interface {
	Create(ctx context.Context, orderEntity entities.Order) (*entities.Order, error)
}

type DistrictRegistry interface {
	Lookup(ctx context.Context, name string) (*entities.District, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
