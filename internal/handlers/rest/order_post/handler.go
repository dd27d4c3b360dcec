package order_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"dispatch/internal/generated/dto"
	"dispatch/internal/service/dispatch"
	"dispatch/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var orderCreateDTO dto.OrderCreate
	err := json.NewDecoder(r.Body).Decode(&orderCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	assignment, err := h.service.AssignOrder(r.Context(), orderCreateDTO.Name, orderCreateDTO.District)
	if err != nil {
		switch {
		case errors.Is(err, dispatch.ErrInvalidOrderName),
			errors.Is(err, dispatch.ErrInvalidDistrictName):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, dispatch.ErrNoSuitableCourier):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, dispatch.ErrCourierAlreadyAssigned):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.OrderCreated{
		OrderID:   assignment.OrderID.String(),
		CourierID: assignment.CourierID.String(),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
