package handlers

import (
	"eld-trip-service/internal/api/dto"
	"eld-trip-service/internal/domain"
	"eld-trip-service/internal/platform/obs"
	"eld-trip-service/internal/ports"
	"eld-trip-service/internal/services"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// TripHandler exposes trip creation and retrieval.
type TripHandler struct {
	Repo     ports.TripRepository
	Geocoder ports.Geocoder
	Router   ports.RouteProvider
}

// Create resolves the route, generates the ELD logs and stores the trip.
func (h *TripHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTripRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if req.StartTime == nil {
		writeError(w, r, http.StatusBadRequest, "start_time is required")
		return
	}
	if req.CurrentCycleHoursUsed == nil {
		writeError(w, r, http.StatusBadRequest, "current_cycle_hours_used is required")
		return
	}

	svcReq := services.CreateTripRequest{
		StartLocation:         req.StartLocation,
		PickupLocation:        req.PickupLocation,
		DropoffLocation:       req.DropoffLocation,
		StartTime:             *req.StartTime,
		CurrentCycleHoursUsed: *req.CurrentCycleHoursUsed,
	}

	trip, logs, err := services.CreateTrip(r.Context(), svcReq, h.Repo, h.Geocoder, h.Router)
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrInvalidTrip):
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	case errors.Is(err, ports.ErrNoGeocodeResult):
		writeError(w, r, http.StatusBadRequest, "could not resolve one of the trip locations")
		return
	case errors.Is(err, ports.ErrNoRoute):
		writeError(w, r, http.StatusBadRequest, "failed to fetch route information")
		return
	case errors.Is(err, ports.ErrProviderUnavailable):
		obs.Logger.WithError(err).Warn("create trip: routing provider unavailable")
		writeError(w, r, http.StatusBadGateway, "routing provider unavailable")
		return
	default:
		obs.Logger.WithError(err).Error("create trip failed")
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.CreateTripResponse{
		Trip:    toTripResponse(trip),
		ELDLogs: toELDLogResponses(logs),
	}
	writeJSON(w, r, http.StatusCreated, res)
}

func (h *TripHandler) List(w http.ResponseWriter, r *http.Request) {
	trips, err := services.ListTrips(r.Context(), h.Repo)
	if err != nil {
		obs.Logger.WithError(err).Error("list trips failed")
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListTripsResponse{Trips: make([]dto.TripResponse, 0, len(trips))}
	for _, t := range trips {
		res.Trips = append(res.Trips, toTripResponse(t))
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *TripHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "tripID"))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid trip id")
		return
	}

	trip, err := services.GetTrip(r.Context(), h.Repo, id)
	if errors.Is(err, ports.ErrTripNotFound) {
		writeError(w, r, http.StatusNotFound, "trip not found")
		return
	}
	if err != nil {
		obs.Logger.WithError(err).Error("get trip failed")
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, toTripResponse(trip))
}

// Delete removes a trip and its logs.
func (h *TripHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "tripID"))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid trip id")
		return
	}

	err = services.DeleteTrip(r.Context(), h.Repo, id)
	if errors.Is(err, ports.ErrTripNotFound) {
		writeError(w, r, http.StatusNotFound, "trip not found")
		return
	}
	if err != nil {
		obs.Logger.WithError(err).Error("delete trip failed")
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
