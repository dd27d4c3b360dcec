package dispatch

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"dispatch/internal/entities"
	"dispatch/internal/service/district"
)

// Dispatch назначает новый заказ на подходящего свободного курьера
// района и создаёт заказ в статусе in_progress.
type Dispatch struct {
	courierRepository CourierRepository
	orderRepository   OrderRepository
	districtRegistry  DistrictRegistry
	txManager         TxManager
}

func New(
	courierRepository CourierRepository,
	orderRepository OrderRepository,
	districtRegistry DistrictRegistry,
	txManager TxManager,
) *Dispatch {
	return &Dispatch{
		courierRepository: courierRepository,
		orderRepository:   orderRepository,
		districtRegistry:  districtRegistry,
		txManager:         txManager,
	}
}

// AssignOrder выполняет подбор курьера и вставку заказа в одной
// транзакции, иначе два конкурентных назначения могут выбрать одного
// и того же свободного курьера. Район на пути заказа не создаётся:
// неизвестный район означает отсутствие подходящего курьера.
func (s *Dispatch) AssignOrder(ctx context.Context, orderName, districtName string) (*entities.OrderAssignment, error) {
	if !isValidOrderName(orderName) {
		return nil, ErrInvalidOrderName
	}
	if !isValidDistrictName(districtName) {
		return nil, ErrInvalidDistrictName
	}

	assignment := entities.OrderAssignment{}
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		districtEntity, err := s.districtRegistry.Lookup(ctx, districtName)
		if err != nil {
			if errors.Is(err, district.ErrDistrictNotFound) {
				return ErrNoSuitableCourier
			}
			return fmt.Errorf("lookup district: %w", err)
		}

		eligible, err := s.courierRepository.GetEligibleByDistrict(ctx, districtEntity.ID)
		if err != nil {
			return fmt.Errorf("find eligible couriers: %w", err)
		}

		selected := selectCourier(eligible)
		if selected == nil {
			return ErrNoSuitableCourier
		}

		orderEntity, err := s.orderRepository.Create(ctx, entities.Order{
			ID:              uuid.New(),
			Name:            orderName,
			DistrictID:      districtEntity.ID,
			CourierID:       selected.ID,
			Status:          entities.OrderInProgress,
			DatePublication: time.Now().UTC(),
		})
		if err != nil {
			return fmt.Errorf("create order: %w", err)
		}

		assignment = entities.OrderAssignment{
			OrderID:   orderEntity.ID,
			CourierID: selected.ID,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &assignment, nil
}

// selectCourier выбирает курьера с наименьшим средним временем
// завершения. Курьер без истории считается самым быстрым, пока не
// доказано обратное. Равные кандидаты упорядочиваются по id, чтобы
// выбор был детерминированным.
func selectCourier(couriers []entities.Courier) *entities.Courier {
	var best *entities.Courier
	for i := range couriers {
		candidate := &couriers[i]
		if best == nil || fasterThan(candidate, best) {
			best = candidate
		}
	}
	return best
}

func fasterThan(candidate, best *entities.Courier) bool {
	switch {
	case candidate.AvgCompletionSeconds == nil && best.AvgCompletionSeconds == nil:
		return lowerID(candidate, best)
	case candidate.AvgCompletionSeconds == nil:
		return true
	case best.AvgCompletionSeconds == nil:
		return false
	case *candidate.AvgCompletionSeconds != *best.AvgCompletionSeconds:
		return *candidate.AvgCompletionSeconds < *best.AvgCompletionSeconds
	default:
		return lowerID(candidate, best)
	}
}

func lowerID(a, b *entities.Courier) bool {
	return strings.Compare(a.ID.String(), b.ID.String()) < 0
}
