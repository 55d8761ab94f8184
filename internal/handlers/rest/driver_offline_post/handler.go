package driver_offline_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"dispatch/internal/entities"
	"dispatch/internal/generated/dto"
	"dispatch/internal/service/driver"
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
	driverID := mux.Vars(r)["id"]

	driverEntity, err := h.service.ToggleOffline(r.Context(), driverID)
	if err != nil {
		switch {
		case errors.Is(err, driver.ErrInvalidDriverID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, driver.ErrDriverNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, driver.ErrDriverBusy):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(toDriverDTO(driverEntity))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func toDriverDTO(driverEntity *entities.Driver) dto.Driver {
	return dto.Driver{
		ID:          driverEntity.ID,
		Name:        driverEntity.Name,
		Phone:       driverEntity.Phone,
		VehicleType: driverEntity.VehicleType,
		Rating:      driverEntity.Rating,
		Location: dto.Location{
			Lat:     driverEntity.Location.Lat,
			Lng:     driverEntity.Location.Lng,
			Address: driverEntity.Location.Address,
		},
		Status:        driverEntity.Status.String(),
		CurrentRideID: driverEntity.CurrentRideID,
		CreatedAt:     driverEntity.CreatedAt,
		UpdatedAt:     driverEntity.UpdatedAt,
	}
}
