package collector

import (
	"github.com/dermatlas/dermatlas-api/external/places"
)

// Aggregator merges place streams from multiple strategies and states into a
// set unique by place ID. The first discovery wins for counting purposes;
// the runner's detail pass later overwrites each record with a fresh fetch
// before persistence.
type Aggregator struct {
	seen  map[string]int
	order []places.Place

	newCount       int
	duplicateCount int
}

func NewAggregator() *Aggregator {
	return &Aggregator{
		seen: make(map[string]int),
	}
}

// Add merges one discovered place, reporting whether it was new. Places
// without an ID are dropped.
func (a *Aggregator) Add(p places.Place) bool {
	if p.ID == "" {
		return false
	}
	if _, ok := a.seen[p.ID]; ok {
		a.duplicateCount++
		return false
	}
	a.seen[p.ID] = len(a.order)
	a.order = append(a.order, p)
	a.newCount++
	return true
}

// Places returns the unique places in discovery order.
func (a *Aggregator) Places() []places.Place {
	return append([]places.Place{}, a.order...)
}

// Has reports whether a place ID has been discovered already.
func (a *Aggregator) Has(placeID string) bool {
	_, ok := a.seen[placeID]
	return ok
}

func (a *Aggregator) Len() int            { return len(a.order) }
func (a *Aggregator) NewCount() int       { return a.newCount }
func (a *Aggregator) DuplicateCount() int { return a.duplicateCount }
