//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=district_test
package district

import (
	"context"

	"dispatch/internal/entities"
)

type Repository interface {
	GetByName(ctx context.Context, name string) (*entities.District, error)
	Create(ctx context.Context, districtEntity entities.District) (*entities.District, error)
}
