package courier

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"dispatch/internal/entities"
)

type Courier struct {
	repository       Repository
	orderRepository  OrderRepository
	districtRegistry DistrictRegistry
	txManager        TxManager
}

func New(
	repository Repository,
	orderRepository OrderRepository,
	districtRegistry DistrictRegistry,
	txManager TxManager,
) *Courier {
	return &Courier{
		repository:       repository,
		orderRepository:  orderRepository,
		districtRegistry: districtRegistry,
		txManager:        txManager,
	}
}

// RegisterCourier создаёт курьера и привязывает его к районам.
// Курьер и membership-строки пишутся в одной транзакции: курьер без
// районов не должен быть виден диспетчеру.
func (s *Courier) RegisterCourier(ctx context.Context, name string, districtNames []string) (*entities.Courier, error) {
	if !isValidName(name) {
		return nil, ErrInvalidName
	}
	if len(districtNames) == 0 {
		return nil, ErrEmptyDistricts
	}

	deduped := dedupeDistrictNames(districtNames)
	if len(deduped) == 0 {
		return nil, ErrEmptyDistricts
	}

	var created *entities.Courier
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		districtIDs := make([]uuid.UUID, 0, len(deduped))
		for _, districtName := range deduped {
			districtEntity, err := s.districtRegistry.ResolveOrCreate(ctx, districtName)
			if err != nil {
				return fmt.Errorf("resolve district %q: %w", districtName, err)
			}
			districtIDs = append(districtIDs, districtEntity.ID)
		}

		courierEntity, err := s.repository.Create(ctx, entities.Courier{
			ID:   uuid.New(),
			Name: name,
		})
		if err != nil {
			return fmt.Errorf("create courier: %w", err)
		}

		err = s.repository.AddDistricts(ctx, courierEntity.ID, districtIDs)
		if err != nil {
			return fmt.Errorf("bind courier districts: %w", err)
		}

		created = courierEntity
		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (s *Courier) GetCourier(ctx context.Context, id uuid.UUID) (*entities.CourierDetail, error) {
	courierEntity, err := s.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrCourierNotFound) {
			return nil, ErrCourierNotFound
		}
		return nil, fmt.Errorf("get courier: %w", err)
	}

	detail := entities.CourierDetail{
		Courier: *courierEntity,
	}

	activeOrder, err := s.orderRepository.GetActiveByCourier(ctx, id)
	if err != nil {
		if !errors.Is(err, ErrActiveOrderNotFound) {
			return nil, fmt.Errorf("get active order: %w", err)
		}
		// нет активного заказа - поле остаётся пустым
		return &detail, nil
	}

	detail.ActiveOrder = &entities.ActiveOrder{
		ID:   activeOrder.ID,
		Name: activeOrder.Name,
	}
	return &detail, nil
}

func (s *Courier) GetCouriers(ctx context.Context) ([]entities.Courier, error) {
	couriers, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get couriers: %w", err)
	}

	return couriers, nil
}

// UpdateStatistics перезаписывает derived-поля курьера. Вызывается
// только движком завершения заказов после полного пересчёта.
func (s *Courier) UpdateStatistics(ctx context.Context, id uuid.UUID, stats entities.CourierStatistics) (*entities.Courier, error) {
	courierEntity, err := s.repository.UpdateStatistics(ctx, id, stats)
	if err != nil {
		return nil, fmt.Errorf("update courier statistics: %w", err)
	}

	return courierEntity, nil
}
