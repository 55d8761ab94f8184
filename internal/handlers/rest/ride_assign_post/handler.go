package ride_assign_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"dispatch/internal/generated/dto"
	"dispatch/internal/service/driver"
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

	var rideAssignDTO dto.RideAssign
	err := json.NewDecoder(r.Body).Decode(&rideAssignDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	assignmentEntity, err := h.service.AssignManual(r.Context(), rideID, rideAssignDTO.DriverID)
	if err != nil {
		switch {
		case errors.Is(err, ride.ErrInvalidRideID),
			errors.Is(err, ride.ErrInvalidDriverID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, ride.ErrRideNotFound),
			errors.Is(err, driver.ErrDriverNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, ride.ErrRideNotPending),
			errors.Is(err, ride.ErrRideAlreadyFinished),
			errors.Is(err, ride.ErrRideConflict),
			errors.Is(err, driver.ErrDriverNotAvailable):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.RideAssignment{
		RideID:     assignmentEntity.RideID,
		DriverID:   assignmentEntity.DriverID,
		AssignedAt: assignmentEntity.AssignedAt,
		Suggested:  assignmentEntity.Suggested,
	}
	if assignmentEntity.Reasoning != "" {
		response.Reasoning = &assignmentEntity.Reasoning
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
