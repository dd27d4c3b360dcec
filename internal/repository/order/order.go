package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"dispatch/internal/entities"
	"dispatch/internal/repository"
	"dispatch/internal/service/courier"
	"dispatch/internal/service/dispatch"
	orderservice "dispatch/internal/service/order"
)

const orderColumns = `id, name, district_id, courier_id, status, date_publication, date_completion`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, orderEntity entities.Order) (*entities.Order, error) {
	query := `INSERT INTO orders (id, name, district_id, courier_id, status, date_publication)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + orderColumns

	var orderModel OrderDB
	err := r.querier.QueryRow(
		ctx,
		query,
		orderEntity.ID,
		orderEntity.Name,
		orderEntity.DistrictID,
		orderEntity.CourierID,
		orderEntity.Status.String(),
		orderEntity.DatePublication,
	).Scan(
		&orderModel.ID,
		&orderModel.Name,
		&orderModel.DistrictID,
		&orderModel.CourierID,
		&orderModel.Status,
		&orderModel.DatePublication,
		&orderModel.DateCompletion,
	)
	if err != nil {
		// частичный уникальный индекс: один in_progress заказ на курьера
		if repository.IsUniqueViolation(err) {
			return nil, dispatch.ErrCourierAlreadyAssigned
		}
		return nil, fmt.Errorf("unexpected order repository create error: %w", err)
	}

	return ToDomain(&orderModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Order, error) {
	query := `SELECT ` + orderColumns + `
		FROM orders
		WHERE id = $1`

	var orderModel OrderDB
	err := r.querier.QueryRow(ctx, query, id).
		Scan(
			&orderModel.ID,
			&orderModel.Name,
			&orderModel.DistrictID,
			&orderModel.CourierID,
			&orderModel.Status,
			&orderModel.DatePublication,
			&orderModel.DateCompletion,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, orderservice.ErrOrderNotFound
		}

		return nil, fmt.Errorf("unexpected order repository getbyid error: %w", err)
	}

	return ToDomain(&orderModel), nil
}

func (r *Repository) GetActiveByCourier(ctx context.Context, courierID uuid.UUID) (*entities.Order, error) {
	query := `SELECT ` + orderColumns + `
		FROM orders
		WHERE courier_id = $1
		  AND status = 'in_progress'`

	var orderModel OrderDB
	err := r.querier.QueryRow(ctx, query, courierID).
		Scan(
			&orderModel.ID,
			&orderModel.Name,
			&orderModel.DistrictID,
			&orderModel.CourierID,
			&orderModel.Status,
			&orderModel.DatePublication,
			&orderModel.DateCompletion,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, courier.ErrActiveOrderNotFound
		}

		return nil, fmt.Errorf("unexpected order repository getactive error: %w", err)
	}

	return ToDomain(&orderModel), nil
}

func (r *Repository) MarkCompleted(ctx context.Context, id uuid.UUID, completedAt time.Time) (*entities.Order, error) {
	query := `UPDATE orders
		SET status = 'completed',
		    date_completion = $2
		WHERE id = $1
		  AND status = 'in_progress'
		RETURNING ` + orderColumns

	var orderModel OrderDB
	err := r.querier.QueryRow(ctx, query, id, completedAt).
		Scan(
			&orderModel.ID,
			&orderModel.Name,
			&orderModel.DistrictID,
			&orderModel.CourierID,
			&orderModel.Status,
			&orderModel.DatePublication,
			&orderModel.DateCompletion,
		)
	if err != nil {
		// либо заказа нет, либо он уже completed - различать нечего
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, orderservice.ErrOrderNotFound
		}

		return nil, fmt.Errorf("unexpected order repository markcompleted error: %w", err)
	}

	return ToDomain(&orderModel), nil
}

func (r *Repository) GetCompletedByCourier(ctx context.Context, courierID uuid.UUID) ([]entities.Order, error) {
	query := `SELECT ` + orderColumns + `
		FROM orders
		WHERE courier_id = $1
		  AND status = 'completed'
		ORDER BY date_publication`

	rows, err := r.querier.Query(ctx, query, courierID)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository getcompleted error: %w", err)
	}
	defer rows.Close()

	orderModels := make([]OrderDB, 0, 8)
	for rows.Next() {
		var orderModel OrderDB
		err := rows.Scan(
			&orderModel.ID,
			&orderModel.Name,
			&orderModel.DistrictID,
			&orderModel.CourierID,
			&orderModel.Status,
			&orderModel.DatePublication,
			&orderModel.DateCompletion,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository getcompleted error: %w", err)
		}
		orderModels = append(orderModels, orderModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository getcompleted error: %w", err)
	}

	return ToDomainList(orderModels), nil
}
