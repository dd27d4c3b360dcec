package order

import "errors"

var (
	ErrInvalidOrderID = errors.New("invalid order id")

	ErrOrderNotFound = errors.New("order not found")
	// ErrOrderAlreadyCompleted на границе API сворачивается в not found:
	// вызывающий не должен различать эти два случая.
	ErrOrderAlreadyCompleted = errors.New("order already completed")

	ErrNoCompletedOrders        = errors.New("courier has no completed orders")
	ErrIncompleteOrderInHistory = errors.New("incomplete order in completed history")
)
