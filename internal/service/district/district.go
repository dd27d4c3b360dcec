package district

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"dispatch/internal/entities"
)

// Registry разрешает имена районов в сущности. Имя нормализуется к
// нижнему регистру, район создаётся лениво при первом упоминании.
type Registry struct {
	repository Repository
}

func New(repository Repository) *Registry {
	return &Registry{
		repository: repository,
	}
}

func (s *Registry) ResolveOrCreate(ctx context.Context, name string) (*entities.District, error) {
	if !isValidName(name) {
		return nil, ErrInvalidName
	}
	normalized := normalizeName(name)

	districtEntity, err := s.repository.GetByName(ctx, normalized)
	if err == nil {
		return districtEntity, nil
	}
	if !errors.Is(err, ErrDistrictNotFound) {
		return nil, fmt.Errorf("get district by name: %w", err)
	}

	created, err := s.repository.Create(ctx, entities.District{
		ID:   uuid.New(),
		Name: normalized,
	})
	if err != nil {
		// параллельная регистрация могла успеть первой
		if errors.Is(err, ErrConflict) {
			return s.repository.GetByName(ctx, normalized)
		}
		return nil, fmt.Errorf("create district: %w", err)
	}

	return created, nil
}

func (s *Registry) Lookup(ctx context.Context, name string) (*entities.District, error) {
	if !isValidName(name) {
		return nil, ErrInvalidName
	}

	districtEntity, err := s.repository.GetByName(ctx, normalizeName(name))
	if err != nil {
		if errors.Is(err, ErrDistrictNotFound) {
			return nil, ErrDistrictNotFound
		}
		return nil, fmt.Errorf("get district by name: %w", err)
	}

	return districtEntity, nil
}
