package handlers

import (
	"eld-trip-service/internal/api/dto"
	"eld-trip-service/internal/domain"
	"eld-trip-service/internal/platform/obs"
	"eld-trip-service/internal/ports"
	"eld-trip-service/internal/services"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// ELDLogHandler exposes read-only access to a trip's logs.
type ELDLogHandler struct {
	Repo ports.TripRepository
}

// List returns the logs of ?trip_id=. Without a trip id the list is empty.
func (h *ELDLogHandler) List(w http.ResponseWriter, r *http.Request) {
	res := dto.ListELDLogsResponse{ELDLogs: []dto.ELDLogResponse{}}

	raw := strings.TrimSpace(r.URL.Query().Get("trip_id"))
	if raw == "" {
		writeJSON(w, r, http.StatusOK, res)
		return
	}

	tripID, err := uuid.Parse(raw)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid trip_id")
		return
	}

	logs, err := services.ListTripLogs(r.Context(), h.Repo, tripID)
	if err != nil {
		obs.Logger.WithError(err).Error("list eld logs failed")
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res.ELDLogs = toELDLogResponses(logs)
	writeJSON(w, r, http.StatusOK, res)
}

func (h *ELDLogHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "logID"))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid log id")
		return
	}

	l, err := services.GetTripLog(r.Context(), h.Repo, id)
	if errors.Is(err, ports.ErrLogNotFound) {
		writeError(w, r, http.StatusNotFound, "eld log not found")
		return
	}
	if err != nil {
		obs.Logger.WithError(err).Error("get eld log failed")
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, toELDLogResponses([]domain.ELDLog{l})[0])
}
