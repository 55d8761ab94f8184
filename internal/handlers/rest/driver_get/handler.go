package driver_get

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
		service: service,
		log:     handlerLog,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	driverEntity, err := h.service.GetDriver(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, driver.ErrDriverNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, driver.ErrInvalidDriverID):
			w.WriteHeader(http.StatusBadRequest)
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
