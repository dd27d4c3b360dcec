package order

import (
	"time"

	"dispatch/internal/entities"
)

const dateLayout = "2006-01-02"

// computeStatistics пересчитывает статистику курьера с нуля по всем его
// завершённым заказам. Полный пересчёт вместо инкрементального выбран
// намеренно: результат — чистая функция истории заказов.
//
// AvgCompletionSeconds — среднее арифметическое длительностей
// (завершение - публикация), где каждая длительность сначала
// усекается до целых секунд.
//
// AvgDailyOrders — floor(число завершённых заказов / число различных
// календарных дат публикации в UTC).
func computeStatistics(completedOrders []entities.Order) (entities.CourierStatistics, error) {
	if len(completedOrders) == 0 {
		return entities.CourierStatistics{}, ErrNoCompletedOrders
	}

	var totalSeconds int64
	dates := make(map[string]struct{}, len(completedOrders))

	for _, orderEntity := range completedOrders {
		if orderEntity.DateCompletion == nil {
			return entities.CourierStatistics{}, ErrIncompleteOrderInHistory
		}

		// усечение до целых секунд на каждом заказе, до усреднения
		totalSeconds += int64(orderEntity.DateCompletion.Sub(orderEntity.DatePublication) / time.Second)
		dates[orderEntity.DatePublication.UTC().Format(dateLayout)] = struct{}{}
	}

	count := int64(len(completedOrders))
	return entities.CourierStatistics{
		AvgCompletionSeconds: float64(totalSeconds) / float64(count),
		AvgDailyOrders:       count / int64(len(dates)),
	}, nil
}
