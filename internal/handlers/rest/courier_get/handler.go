package courier_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"dispatch/internal/generated/dto"
	"dispatch/internal/service/courier"
	"dispatch/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		service: service,
		log:     handlerLog,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	id, err := uuid.Parse(idStr)
	if err != nil {
		// кривой uuid - ошибка валидации запроса, не not found
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	courierDetail, err := h.service.GetCourier(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, courier.ErrCourierNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, courier.ErrInvalidCourierID):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	courierDTO := dto.Courier{
		ID:   courierDetail.ID.String(),
		Name: courierDetail.Name,
	}

	if courierDetail.AvgCompletionSeconds != nil {
		avgDuration := time.Duration(*courierDetail.AvgCompletionSeconds * float64(time.Second))
		formatted := avgDuration.String()
		courierDTO.AvgOrderCompleteTime = &formatted
	}
	if courierDetail.AvgDailyOrders != nil {
		courierDTO.AvgDayOrders = courierDetail.AvgDailyOrders
	}
	if courierDetail.ActiveOrder != nil {
		courierDTO.ActiveOrder = &dto.ActiveOrder{
			OrderID:   courierDetail.ActiveOrder.ID.String(),
			OrderName: courierDetail.ActiveOrder.Name,
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(courierDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
