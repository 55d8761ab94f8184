package driver_post

import (
	"encoding/json"
	"errors"
	"net/http"

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
	var driverCreateDTO dto.DriverCreate
	err := json.NewDecoder(r.Body).Decode(&driverCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	driverModifyEntity := entities.DriverModify{
		Name:        &driverCreateDTO.Name,
		Phone:       &driverCreateDTO.Phone,
		VehicleType: &driverCreateDTO.VehicleType,
		Rating:      &driverCreateDTO.Rating,
	}
	if driverCreateDTO.Location != nil {
		driverModifyEntity.Location = &entities.Location{
			Lat:     driverCreateDTO.Location.Lat,
			Lng:     driverCreateDTO.Location.Lng,
			Address: driverCreateDTO.Location.Address,
		}
	}

	driverEntity, err := h.service.CreateDriver(r.Context(), driverModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, driver.ErrMissingRequiredFields),
			errors.Is(err, driver.ErrInvalidName),
			errors.Is(err, driver.ErrInvalidPhone),
			errors.Is(err, driver.ErrInvalidVehicleType),
			errors.Is(err, driver.ErrInvalidRating):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, driver.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
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
