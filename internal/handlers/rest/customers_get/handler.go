package customers_get

import (
	"encoding/json"
	"net/http"

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
	customerEntities, err := h.service.GetCustomers(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	customerDTOs := make([]dto.Customer, len(customerEntities))
	for i, customerEntity := range customerEntities {
		customerDTOs[i].ID = customerEntity.ID
		customerDTOs[i].Name = customerEntity.Name
		customerDTOs[i].Phone = customerEntity.Phone
		customerDTOs[i].Address = customerEntity.Address
		customerDTOs[i].CreatedAt = customerEntity.CreatedAt
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(customerDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
