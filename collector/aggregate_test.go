package collector

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dermatlas/dermatlas-api/external/places"
)

func placeStream() []places.Place {
	return []places.Place{
		{ID: "p1", DisplayName: &places.LocalizedText{Text: "first discovery"}},
		{ID: "p2"},
		{ID: "p1", DisplayName: &places.LocalizedText{Text: "second discovery"}},
		{ID: "p3"},
		{ID: ""},
	}
}

func TestAggregatorFirstDiscoveryWins(t *testing.T) {
	agg := NewAggregator()
	for _, p := range placeStream() {
		agg.Add(p)
	}

	assert.Equal(t, 3, agg.Len(), "wrong unique count")
	assert.Equal(t, 3, agg.NewCount(), "wrong new count")
	assert.Equal(t, 1, agg.DuplicateCount(), "wrong duplicate count")

	merged := agg.Places()
	assert.Equal(t, "p1", merged[0].ID, "wrong discovery order")
	assert.Equal(t, "first discovery", merged[0].Name(), "first discovery should win")
	assert.True(t, agg.Has("p2"), "wrong membership")
	assert.False(t, agg.Has("p9"), "wrong membership")
}

func TestAggregatorIdempotence(t *testing.T) {
	agg := NewAggregator()

	// Feeding the same stream twice must not grow the collection.
	for i := 0; i < 2; i++ {
		for _, p := range placeStream() {
			agg.Add(p)
		}
	}

	assert.Equal(t, 3, agg.Len(), "duplicate growth detected")

	ids := map[string]bool{}
	for _, p := range agg.Places() {
		ids[p.ID] = true
	}
	assert.Equal(t, map[string]bool{"p1": true, "p2": true, "p3": true}, ids, "wrong id set")
}
