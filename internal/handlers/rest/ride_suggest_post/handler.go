package ride_suggest_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"dispatch/internal/generated/dto"
	"dispatch/internal/service/ride"
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
	rideID := mux.Vars(r)["id"]

	assignmentEntity, err := h.service.AssignSuggested(r.Context(), rideID)
	if err != nil {
		switch {
		case errors.Is(err, ride.ErrInvalidRideID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, ride.ErrRideNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, ride.ErrRideNotPending),
			errors.Is(err, ride.ErrRideAlreadyFinished),
			errors.Is(err, ride.ErrRideConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	// Без кандидатов заявка остаётся в pending.
	var response dto.RideSuggestResponse
	if assignmentEntity != nil {
		response.DriverID = &assignmentEntity.DriverID
		response.AssignedAt = &assignmentEntity.AssignedAt
		response.Suggested = assignmentEntity.Suggested
		if assignmentEntity.Reasoning != "" {
			response.Reasoning = &assignmentEntity.Reasoning
		}
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
