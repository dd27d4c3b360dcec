package courier

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"dispatch/internal/entities"
	"dispatch/internal/repository"
	"dispatch/internal/service/courier"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const courierColumns = `id, name, avg_completion_seconds, avg_daily_orders, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, courierEntity entities.Courier) (*entities.Courier, error) {
	query := `INSERT INTO couriers (id, name)
		VALUES ($1, $2)
		RETURNING ` + courierColumns

	var courierModel CourierDB
	err := r.querier.QueryRow(
		ctx,
		query,
		courierEntity.ID,
		courierEntity.Name,
	).Scan(
		&courierModel.ID,
		&courierModel.Name,
		&courierModel.AvgCompletionSeconds,
		&courierModel.AvgDailyOrders,
		&courierModel.CreatedAt,
		&courierModel.UpdatedAt,
	)
	if err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, courier.ErrConflict
		}
		return nil, fmt.Errorf("unexpected courier repository create error: %w", err)
	}

	return ToDomain(&courierModel), nil
}

func (r *Repository) AddDistricts(ctx context.Context, courierID uuid.UUID, districtIDs []uuid.UUID) error {
	if len(districtIDs) == 0 {
		return nil
	}

	builder := qb.
		Insert("courier_districts").
		Columns("courier_id", "district_id")

	for _, districtID := range districtIDs {
		builder = builder.Values(courierID, districtID)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("unexpected courier repository adddistricts error: %w", err)
	}

	_, err = r.querier.Exec(ctx, query, args...)
	if err != nil {
		if repository.IsUniqueViolation(err) {
			return courier.ErrConflict
		}
		return fmt.Errorf("unexpected courier repository adddistricts error: %w", err)
	}

	return nil
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Courier, error) {
	query := `SELECT ` + courierColumns + `
		FROM couriers
		WHERE id = $1`

	var courierModel CourierDB
	err := r.querier.QueryRow(ctx, query, id).
		Scan(
			&courierModel.ID,
			&courierModel.Name,
			&courierModel.AvgCompletionSeconds,
			&courierModel.AvgDailyOrders,
			&courierModel.CreatedAt,
			&courierModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, courier.ErrCourierNotFound
		}

		return nil, fmt.Errorf("unexpected courier repository getbyid error: %w", err)
	}

	return ToDomain(&courierModel), nil
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.Courier, error) {
	query := `
	SELECT ` + courierColumns + `
	FROM couriers
	ORDER BY created_at, id`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected courier repository getall error: %w", err)
	}
	defer rows.Close()

	courierModels := make([]CourierDB, 0, 8)
	for rows.Next() {
		var courierModel CourierDB
		err := rows.Scan(
			&courierModel.ID,
			&courierModel.Name,
			&courierModel.AvgCompletionSeconds,
			&courierModel.AvgDailyOrders,
			&courierModel.CreatedAt,
			&courierModel.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected courier repository getall error: %w", err)
		}
		courierModels = append(courierModels, courierModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected courier repository getall error: %w", err)
	}

	return ToDomainList(courierModels), nil
}

// GetEligibleByDistrict возвращает курьеров района, у которых нет ни
// одного заказа в статусе in_progress. Выбор из кандидатов делает
// сервис диспетчеризации, репозиторий только находит множество.
func (r *Repository) GetEligibleByDistrict(ctx context.Context, districtID uuid.UUID) ([]entities.Courier, error) {
	query := `
	SELECT c.id, c.name, c.avg_completion_seconds, c.avg_daily_orders, c.created_at, c.updated_at
	FROM couriers c
	JOIN courier_districts cd ON cd.courier_id = c.id
	WHERE cd.district_id = $1
	  AND NOT EXISTS (
	      SELECT 1
	      FROM orders o
	      WHERE o.courier_id = c.id
	        AND o.status = 'in_progress'
	  )
	ORDER BY c.id`

	rows, err := r.querier.Query(ctx, query, districtID)
	if err != nil {
		return nil, fmt.Errorf("unexpected courier repository geteligible error: %w", err)
	}
	defer rows.Close()

	courierModels := make([]CourierDB, 0, 8)
	for rows.Next() {
		var courierModel CourierDB
		err := rows.Scan(
			&courierModel.ID,
			&courierModel.Name,
			&courierModel.AvgCompletionSeconds,
			&courierModel.AvgDailyOrders,
			&courierModel.CreatedAt,
			&courierModel.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected courier repository geteligible error: %w", err)
		}
		courierModels = append(courierModels, courierModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected courier repository geteligible error: %w", err)
	}

	return ToDomainList(courierModels), nil
}

func (r *Repository) UpdateStatistics(ctx context.Context, id uuid.UUID, stats entities.CourierStatistics) (*entities.Courier, error) {
	builder := qb.
		Update("couriers").
		Set("avg_completion_seconds", stats.AvgCompletionSeconds).
		Set("avg_daily_orders", stats.AvgDailyOrders).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + courierColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected courier repository updatestatistics error: %w", err)
	}

	var courierModel CourierDB
	err = r.querier.QueryRow(ctx, query, args...).
		Scan(
			&courierModel.ID,
			&courierModel.Name,
			&courierModel.AvgCompletionSeconds,
			&courierModel.AvgDailyOrders,
			&courierModel.CreatedAt,
			&courierModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, courier.ErrCourierNotFound
		}

		return nil, fmt.Errorf("unexpected courier repository updatestatistics error: %w", err)
	}

	return ToDomain(&courierModel), nil
}
