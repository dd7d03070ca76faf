package ports

import (
	"context"
	"route-solver-service/internal/domain"
)

// Port: notifies downstream systems that a route was solved.
type RoutePublisher interface {
	PublishRouteSolved(ctx context.Context, evt domain.RouteSolvedEvent) error
}
