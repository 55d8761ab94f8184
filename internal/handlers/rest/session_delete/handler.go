package session_delete

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"dispatch/internal/service/session"
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
	user := mux.Vars(r)["user"]

	err := h.service.Logout(r.Context(), user)
	if err != nil {
		switch {
		case errors.Is(err, session.ErrInvalidUser):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, session.ErrSessionNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
