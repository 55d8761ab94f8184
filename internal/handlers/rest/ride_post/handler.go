package ride_post

import (
	"encoding/json"
	"errors"
	"net/http"

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
	var rideCreateDTO dto.RideCreate
	err := json.NewDecoder(r.Body).Decode(&rideCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	pickup := entities.Location{
		Lat:     rideCreateDTO.Pickup.Lat,
		Lng:     rideCreateDTO.Pickup.Lng,
		Address: rideCreateDTO.Pickup.Address,
	}
	dropoff := entities.Location{
		Lat:     rideCreateDTO.Dropoff.Lat,
		Lng:     rideCreateDTO.Dropoff.Lng,
		Address: rideCreateDTO.Dropoff.Address,
	}
	rideModifyEntity := entities.RideModify{
		CustomerName: &rideCreateDTO.CustomerName,
		CustomerID:   rideCreateDTO.CustomerID,
		StoreID:      rideCreateDTO.StoreID,
		Pickup:       &pickup,
		Dropoff:      &dropoff,
		Price:        rideCreateDTO.Price,
		Notes:        rideCreateDTO.Notes,
	}
	if rideCreateDTO.Priority != nil {
		priority := entities.RidePriorityType(*rideCreateDTO.Priority)
		rideModifyEntity.Priority = &priority
	}

	rideEntity, err := h.service.CreateRide(r.Context(), rideModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, ride.ErrMissingRequiredFields),
			errors.Is(err, ride.ErrInvalidCustomerName),
			errors.Is(err, ride.ErrInvalidLocation),
			errors.Is(err, ride.ErrInvalidPriority):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, ride.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
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
