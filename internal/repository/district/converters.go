package district

import "dispatch/internal/entities"

func ToDomain(d *DistrictDB) *entities.District {
	if d == nil {
		return nil
	}

	return &entities.District{
		ID:   d.ID,
		Name: d.Name,
	}
}
