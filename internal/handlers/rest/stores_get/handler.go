package stores_get

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
	storeEntities, err := h.service.GetStores(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	storeDTOs := make([]dto.Store, len(storeEntities))
	for i, storeEntity := range storeEntities {
		storeDTOs[i].ID = storeEntity.ID
		storeDTOs[i].Name = storeEntity.Name
		storeDTOs[i].Owner = storeEntity.Owner
		storeDTOs[i].Phone = storeEntity.Phone
		storeDTOs[i].Address = storeEntity.Address
		storeDTOs[i].CreatedAt = storeEntity.CreatedAt
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(storeDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
