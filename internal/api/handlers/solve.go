package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"route-solver-service/internal/api/dto"
	"route-solver-service/internal/domain"
	"route-solver-service/internal/platform/obs"
	"route-solver-service/internal/services"
	"strings"
)

type SolveHandler struct {
	Solver       *services.Solver
	MaxBodyBytes int64
}

// Solve validates the request body and returns the nearest-neighbor route.
// Orders are echoed in visiting order. Unknown JSON fields are ignored so that
// callers may post full order and vehicle records.
func (h *SolveHandler) Solve(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, r, http.MethodPost)
		return
	}

	if h.MaxBodyBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.MaxBodyBytes)
	}

	var req dto.SolveRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	// Reject trailing data after the first JSON value.
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}

	details, err := validateStruct(req)
	if err != nil {
		log.Printf("req_id=%s validate solve request failed: %v", obs.RequestID(r.Context()), err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}
	if len(details) > 0 {
		writeValidationError(w, r, details)
		return
	}

	res, err := h.Solver.Solve(r.Context(), toSolveRequest(req))
	switch {
	case errors.Is(err, services.ErrUnknownDepot), errors.Is(err, services.ErrTooManyOrders):
		writeError(w, r, http.StatusUnprocessableEntity, strings.TrimPrefix(err.Error(), "solve: "))
		return
	case err != nil:
		log.Printf("req_id=%s solve failed: %v", obs.RequestID(r.Context()), err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	out := dto.SolveResponse{Route: make([]dto.OrderResponse, 0, len(res.Route))}
	for _, o := range res.Route {
		out.Route = append(out.Route, dto.OrderResponse{
			ID:        o.ID,
			Latitude:  o.Latitude,
			Longitude: o.Longitude,
			WeightKg:  o.WeightKg,
		})
	}

	writeJSON(w, r, http.StatusOK, out)
}

// toSolveRequest expects a validated request: all pointer fields are non-nil.
func toSolveRequest(req dto.SolveRequest) services.SolveRequest {
	orders := make([]domain.Order, 0, len(req.Orders))
	for _, o := range req.Orders {
		orders = append(orders, domain.Order{
			ID:        o.ID,
			Latitude:  *o.Latitude,
			Longitude: *o.Longitude,
			WeightKg:  *o.WeightKg,
		})
	}

	vehicles := make([]domain.Vehicle, 0, len(req.Vehicles))
	for _, v := range req.Vehicles {
		vehicles = append(vehicles, domain.Vehicle{ID: v.ID, CapacityKg: *v.CapacityKg})
	}

	return services.SolveRequest{
		DepotID:  req.DepotID,
		Orders:   orders,
		Vehicles: vehicles,
	}
}
