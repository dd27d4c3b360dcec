package order

import "dispatch/internal/entities"

func ToDomain(o *OrderDB) *entities.Order {
	if o == nil {
		return nil
	}

	return &entities.Order{
		ID:              o.ID,
		Name:            o.Name,
		DistrictID:      o.DistrictID,
		CourierID:       o.CourierID,
		Status:          entities.OrderStatusType(o.Status),
		DatePublication: o.DatePublication,
		DateCompletion:  o.DateCompletion,
	}
}

func ToDomainList(ordersDB []OrderDB) []entities.Order {
	if len(ordersDB) == 0 {
		return []entities.Order{}
	}

	result := make([]entities.Order, len(ordersDB))
	for i, orderDB := range ordersDB {
		result[i] = *ToDomain(&orderDB)
	}
	return result
}
