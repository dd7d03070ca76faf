package distance

import (
	"route-solver-service/internal/domain"
	"route-solver-service/internal/ports"
)

// CountingMetric wraps a DistanceMetric and counts evaluations.
// It is not safe for concurrent use; create one per solve call.
type CountingMetric struct {
	next  ports.DistanceMetric
	calls int
}

func NewCountingMetric(next ports.DistanceMetric) *CountingMetric {
	if next == nil {
		next = Haversine{}
	}
	return &CountingMetric{next: next}
}

func (m *CountingMetric) Distance(from, to domain.Coordinates) float64 {
	m.calls++
	return m.next.Distance(from, to)
}

// Number of distance evaluations performed so far.
func (m *CountingMetric) Calls() int { return m.calls }
