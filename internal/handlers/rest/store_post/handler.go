package store_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"dispatch/internal/entities"
	"dispatch/internal/generated/dto"
	"dispatch/internal/service/store"
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
	var storeCreateDTO dto.StoreCreate
	err := json.NewDecoder(r.Body).Decode(&storeCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	storeModifyEntity := entities.StoreModify{
		Name:    &storeCreateDTO.Name,
		Owner:   storeCreateDTO.Owner,
		Phone:   &storeCreateDTO.Phone,
		Address: storeCreateDTO.Address,
	}

	storeEntity, err := h.service.CreateStore(r.Context(), storeModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrMissingRequiredFields),
			errors.Is(err, store.ErrInvalidName),
			errors.Is(err, store.ErrInvalidPhone):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, store.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.Store{
		ID:        storeEntity.ID,
		Name:      storeEntity.Name,
		Owner:     storeEntity.Owner,
		Phone:     storeEntity.Phone,
		Address:   storeEntity.Address,
		CreatedAt: storeEntity.CreatedAt,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
