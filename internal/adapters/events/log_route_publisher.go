package events

import (
	"context"
	"log"
	"route-solver-service/internal/domain"
)

// LogRoutePublisher writes route events to the process log.
// Used when no message broker is configured.
type LogRoutePublisher struct{}

func (LogRoutePublisher) PublishRouteSolved(ctx context.Context, evt domain.RouteSolvedEvent) error {
	log.Printf(
		"req_id=%s event=route.solved event_id=%s depot=%s stops=%d weight_kg=%d distance_km=%.3f",
		evt.RequestID, evt.EventID, evt.DepotID, len(evt.OrderIDs), evt.TotalWeightKg, evt.DistanceKm,
	)
	return nil
}
