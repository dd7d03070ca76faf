package handlers

import (
	"log"
	"net/http"
	"route-solver-service/internal/api/dto"
	"route-solver-service/internal/platform/obs"
	"route-solver-service/internal/ports"
)

// DepotHandler exposes read-only depot retrieval endpoints.
type DepotHandler struct {
	Repo ports.DepotRepository
}

func (h *DepotHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, http.MethodGet)
		return
	}

	depots, err := h.Repo.ListDepots(r.Context())
	if err != nil {
		log.Printf("req_id=%s list depots failed: %v", obs.RequestID(r.Context()), err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListDepotsResponse{
		Depots: make([]dto.DepotResponse, 0, len(depots)),
	}
	for _, d := range depots {
		res.Depots = append(res.Depots, dto.DepotResponse{
			ID:        d.ID,
			Name:      d.Name,
			Latitude:  d.Location.Lat,
			Longitude: d.Location.Lon,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
