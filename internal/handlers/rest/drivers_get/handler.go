package drivers_get

import (
	"encoding/json"
	"net/http"

	"dispatch/internal/entities"
	"dispatch/internal/generated/dto"
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
	var (
		driverEntities []entities.Driver
		err            error
	)

	switch r.URL.Query().Get("status") {
	case "":
		driverEntities, err = h.service.GetDrivers(r.Context())
	case entities.DriverAvailable.String():
		driverEntities, err = h.service.GetAvailableDrivers(r.Context())
	default:
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	driverDTOs := make([]dto.Driver, len(driverEntities))
	for i, driverEntity := range driverEntities {
		driverDTOs[i] = toDriverDTO(&driverEntity)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(driverDTOs)
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
