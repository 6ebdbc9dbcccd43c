// internal/api/handler/ride.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"rideflow/internal/service"
	"rideflow/internal/util"
)

// RideHandler handles HTTP requests for the ride lifecycle and the driver roster.
type RideHandler struct {
	service service.RideService
	logger  *slog.Logger
}

// NewRideHandler creates a new RideHandler.
func NewRideHandler(svc service.RideService, logger *slog.Logger) *RideHandler {
	return &RideHandler{
		service: svc,
		logger:  logger,
	}
}

// ListDrivers handles the public roster listing, busy drivers included.
// GET /api/drivers
func (h *RideHandler) ListDrivers(w http.ResponseWriter, r *http.Request) {
	drivers, err := h.service.ListDrivers(r.Context())
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, drivers)
}

// RequestRideRequest represents the request body for a ride request.
type RequestRideRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// RequestRide handles a new ride request for the authenticated caller.
// POST /api/rides/request
func (h *RideHandler) RequestRide(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		respondWithError(h.logger, w, util.ErrUnauthorized)
		return
	}

	var req RequestRideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(h.logger, w, util.ErrInvalidInput)
		return
	}

	ride, err := h.service.RequestRide(r.Context(), userID, req.From, req.To)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, ride)
}

// ListRides returns the authenticated caller's rides.
// GET /api/rides
func (h *RideHandler) ListRides(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		respondWithError(h.logger, w, util.ErrUnauthorized)
		return
	}

	rides, err := h.service.ListRidesForUser(r.Context(), userID)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, rides)
}

// CompleteRide moves a ride to completed. Not restricted to the ride's owner.
// POST /api/rides/complete/{rideID}
func (h *RideHandler) CompleteRide(w http.ResponseWriter, r *http.Request) {
	rideID := chi.URLParam(r, "rideID")

	ride, err := h.service.CompleteRide(r.Context(), rideID)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, map[string]interface{}{
		"ok":   true,
		"ride": ride,
	})
}

// CancelRide moves a ride to cancelled and refunds its fare.
// POST /api/rides/cancel/{rideID}
func (h *RideHandler) CancelRide(w http.ResponseWriter, r *http.Request) {
	rideID := chi.URLParam(r, "rideID")

	ride, err := h.service.CancelRide(r.Context(), rideID)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, map[string]interface{}{
		"ok":   true,
		"ride": ride,
	})
}
