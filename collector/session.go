package collector

import (
	"time"

	"github.com/dermatlas/dermatlas-api/external/places"
)

// Pricing per call in USD, used for the run cost estimate printed in the
// final summary.
const (
	searchCostUSD = 0.032
	detailCostUSD = 0.017
)

// session wraps the places source with the run budget and the fixed
// inter-call pacing. All strategy code goes through it; nothing calls the
// source directly.
type session struct {
	source places.Source
	budget *Budget
	delay  time.Duration

	searchCalls int
	detailCalls int

	// injectable for tests
	sleep func(time.Duration)
}

func newSession(source places.Source, budget *Budget, qps float64) *session {
	if qps <= 0 {
		qps = 1
	}
	return &session{
		source: source,
		budget: budget,
		delay:  time.Duration(1000/qps) * time.Millisecond,
		sleep:  time.Sleep,
	}
}

// pace suspends after every call, independent of response latency.
func (s *session) pace() {
	s.sleep(s.delay)
}

func (s *session) nearby(q places.NearbyQuery) ([]places.Place, error) {
	if err := s.budget.Spend(); err != nil {
		return nil, err
	}
	s.searchCalls++
	results, err := s.source.SearchNearby(q)
	s.pace()
	return results, err
}

func (s *session) textSearch(q places.TextQuery) ([]places.Place, string, error) {
	if err := s.budget.Spend(); err != nil {
		return nil, "", err
	}
	s.searchCalls++
	results, next, err := s.source.SearchText(q)
	s.pace()
	return results, next, err
}

func (s *session) details(placeID string) (*places.Place, error) {
	if err := s.budget.Spend(); err != nil {
		return nil, err
	}
	s.detailCalls++
	place, err := s.source.Details(placeID)
	s.pace()
	return place, err
}

func (s *session) costUSD() float64 {
	return float64(s.searchCalls)*searchCostUSD + float64(s.detailCalls)*detailCostUSD
}
