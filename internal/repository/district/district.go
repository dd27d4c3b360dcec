package district

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"dispatch/internal/entities"
	"dispatch/internal/repository"
	"dispatch/internal/service/district"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetByName(ctx context.Context, name string) (*entities.District, error) {
	query := `SELECT id, name
		FROM districts
		WHERE name = $1`

	var districtModel DistrictDB
	err := r.querier.QueryRow(ctx, query, name).
		Scan(
			&districtModel.ID,
			&districtModel.Name,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, district.ErrDistrictNotFound
		}

		return nil, fmt.Errorf("unexpected district repository getbyname error: %w", err)
	}

	return ToDomain(&districtModel), nil
}

func (r *Repository) Create(ctx context.Context, districtEntity entities.District) (*entities.District, error) {
	query := `INSERT INTO districts (id, name)
		VALUES ($1, $2)
		RETURNING id, name`

	var districtModel DistrictDB
	err := r.querier.QueryRow(
		ctx,
		query,
		districtEntity.ID,
		districtEntity.Name,
	).Scan(
		&districtModel.ID,
		&districtModel.Name,
	)
	if err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, district.ErrConflict
		}
		return nil, fmt.Errorf("unexpected district repository create error: %w", err)
	}

	return ToDomain(&districtModel), nil
}
