package session_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"dispatch/internal/entities"
	"dispatch/internal/generated/dto"
	"dispatch/internal/service/session"
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
	var sessionCreateDTO dto.SessionCreate
	err := json.NewDecoder(r.Body).Decode(&sessionCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	role := entities.SessionRoleType(sessionCreateDTO.Role)

	sessionEntity, err := h.service.Login(r.Context(), sessionCreateDTO.User, role)
	if err != nil {
		switch {
		case errors.Is(err, session.ErrInvalidUser),
			errors.Is(err, session.ErrInvalidRole):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.Session{
		User:      sessionEntity.User,
		Role:      sessionEntity.Role.String(),
		CreatedAt: sessionEntity.CreatedAt,
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
