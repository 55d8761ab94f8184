package ride_cancel_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"dispatch/internal/entities"
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

	rideEntity, err := h.service.Cancel(r.Context(), rideID)
	if err != nil {
		switch {
		case errors.Is(err, ride.ErrInvalidRideID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, ride.ErrRideNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, ride.ErrRideAlreadyFinished),
			errors.Is(err, ride.ErrRideConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(toRideDTO(rideEntity))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func toRideDTO(rideEntity *entities.Ride) dto.Ride {
	return dto.Ride{
		ID:           rideEntity.ID,
		CustomerName: rideEntity.CustomerName,
		CustomerID:   rideEntity.CustomerID,
		StoreID:      rideEntity.StoreID,
		Pickup: dto.Location{
			Lat:     rideEntity.Pickup.Lat,
			Lng:     rideEntity.Pickup.Lng,
			Address: rideEntity.Pickup.Address,
		},
		Dropoff: dto.Location{
			Lat:     rideEntity.Dropoff.Lat,
			Lng:     rideEntity.Dropoff.Lng,
			Address: rideEntity.Dropoff.Address,
		},
		Status:      rideEntity.Status.String(),
		DriverID:    rideEntity.DriverID,
		Price:       rideEntity.Price,
		Priority:    rideEntity.Priority.String(),
		Notes:       rideEntity.Notes,
		RequestedAt: rideEntity.RequestedAt,
		AssignedAt:  rideEntity.AssignedAt,
		CompletedAt: rideEntity.CompletedAt,
		CancelledAt: rideEntity.CancelledAt,
	}
}
