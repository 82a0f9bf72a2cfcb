package handlers

import (
	"eld-trip-service/internal/api/dto"
	"eld-trip-service/internal/domain"
	"eld-trip-service/internal/platform/obs"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/sirupsen/logrus"
)

const maxBodyBytes = 1 << 20

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		obs.Logger.WithFields(logrus.Fields{"method": r.Method, "path": r.URL.Path}).
			WithError(err).Error("encode failed")
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}

// decodeJSON reads exactly one JSON object with no unknown fields.
func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		return errors.New("invalid json body")
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return errors.New("body must contain only one JSON object")
	}
	return nil
}

func toTripResponse(t *domain.Trip) dto.TripResponse {
	coords := make([][]float64, 0, len(t.Route))
	for _, c := range t.Route {
		coords = append(coords, c.LatLon())
	}

	return dto.TripResponse{
		ID:                    t.ID.String(),
		StartLocation:         t.StartLocation,
		PickupLocation:        t.PickupLocation,
		DropoffLocation:       t.DropoffLocation,
		StartTime:             t.StartTime,
		CurrentCycleHoursUsed: t.CurrentCycleHoursUsed,
		DistanceMiles:         t.DistanceMiles,
		DurationHours:         t.DurationHours,
		RouteData:             dto.RouteData{Coordinates: coords},
	}
}

func toELDLogResponses(logs []domain.ELDLog) []dto.ELDLogResponse {
	out := make([]dto.ELDLogResponse, 0, len(logs))
	for _, l := range logs {
		out = append(out, dto.ELDLogResponse{
			ID:          l.ID.String(),
			Trip:        l.TripID.String(),
			Timestamp:   l.Timestamp,
			Timespent:   l.TimeSpent.Minutes(),
			Status:      string(l.Status),
			Action:      string(l.Action),
			Coordinates: l.Location.LatLon(),
		})
	}
	return out
}
