package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"dispatch/internal/entities"
)

type Service struct {
	repository     Repository
	courierService CourierService
	txManager      TxManager
}

func New(repository Repository, courierService CourierService, txManager TxManager) *Service {
	return &Service{
		repository:     repository,
		courierService: courierService,
		txManager:      txManager,
	}
}

func (s *Service) GetOrder(ctx context.Context, id uuid.UUID) (*entities.Order, error) {
	orderEntity, err := s.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrOrderNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("get order: %w", err)
	}

	return orderEntity, nil
}

// CompleteOrder переводит заказ in_progress -> completed (терминальное
// состояние) и пересчитывает статистику курьера-владельца по всей его
// истории завершённых заказов, включая только что завершённый.
// Переход и пересчёт выполняются в одной транзакции.
func (s *Service) CompleteOrder(ctx context.Context, id uuid.UUID) error {
	return s.txManager.Do(ctx, func(ctx context.Context) error {
		orderEntity, err := s.repository.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, ErrOrderNotFound) {
				return ErrOrderNotFound
			}
			return fmt.Errorf("get order: %w", err)
		}

		if orderEntity.Status == entities.OrderCompleted {
			return ErrOrderAlreadyCompleted
		}

		completed, err := s.repository.MarkCompleted(ctx, id, time.Now().UTC())
		if err != nil {
			return fmt.Errorf("mark order completed: %w", err)
		}

		completedOrders, err := s.repository.GetCompletedByCourier(ctx, completed.CourierID)
		if err != nil {
			return fmt.Errorf("load completed orders: %w", err)
		}

		stats, err := computeStatistics(completedOrders)
		if err != nil {
			return fmt.Errorf("recompute statistics: %w", err)
		}

		_, err = s.courierService.UpdateStatistics(ctx, completed.CourierID, stats)
		if err != nil {
			return fmt.Errorf("persist statistics: %w", err)
		}

		return nil
	})
}
