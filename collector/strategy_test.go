package collector

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/dermatlas/dermatlas-api/external/mocks"
	"github.com/dermatlas/dermatlas-api/external/places"
)

func newTestSession(source places.Source, budget int) *session {
	s := newSession(source, NewBudget(budget), 1000)
	s.sleep = func(time.Duration) {}
	return s
}

func TestGridSweepQueriesEveryLatticePoint(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	source := mocks.NewMockSource(ctl)
	source.EXPECT().SearchNearby(gomock.Any()).DoAndReturn(func(q places.NearbyQuery) ([]places.Place, error) {
		assert.Equal(t, gridRadiusMeters, q.RadiusMeters, "wrong radius")
		assert.Equal(t, places.RankByDistance, q.Rank, "wrong rank preference")
		assert.Equal(t, gridIncludedTypes, q.IncludedTypes, "wrong included types")
		return []places.Place{{ID: "p-1"}}, nil
	}).Times(1)

	agg := NewAggregator()
	s := newTestSession(source, 0)

	err := s.gridSweep("DC", agg)
	assert.Nil(t, err, "wrong sweep error")
	assert.Equal(t, 1, agg.Len(), "wrong unique count")
}

func TestGridSweepUnknownState(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := newTestSession(mocks.NewMockSource(ctl), 0)
	err := s.gridSweep("XX", NewAggregator())
	assert.Error(t, err, "unknown state should fail")
}

func TestGridSweepSkipsFailedPoint(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	source := mocks.NewMockSource(ctl)
	source.EXPECT().SearchNearby(gomock.Any()).Return(nil, assert.AnError).Times(1)

	agg := NewAggregator()
	s := newTestSession(source, 0)

	err := s.gridSweep("DC", agg)
	assert.Nil(t, err, "a single failed point must not abort the sweep")
	assert.Equal(t, 0, agg.Len(), "wrong unique count")
	assert.Equal(t, 1, s.budget.Used(), "failed call still spends budget")
}

func TestCitySearchFollowsPagination(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	source := mocks.NewMockSource(ctl)
	warmups := 0

	// First query paginates: two continuations, then an unused token
	// abandoned at the page cap.
	gomock.InOrder(
		source.EXPECT().SearchText(places.TextQuery{
			Query:    "dermatology clinic in Washington, DC",
			PageSize: textPageSize,
		}).Return([]places.Place{{ID: "p-1"}}, "token-1", nil),
		source.EXPECT().SearchText(places.TextQuery{
			Query:     "dermatology clinic in Washington, DC",
			PageSize:  textPageSize,
			PageToken: "token-1",
		}).Return([]places.Place{{ID: "p-2"}}, "token-2", nil),
		source.EXPECT().SearchText(places.TextQuery{
			Query:     "dermatology clinic in Washington, DC",
			PageSize:  textPageSize,
			PageToken: "token-2",
		}).Return([]places.Place{{ID: "p-3"}}, "token-3", nil),
		source.EXPECT().SearchText(gomock.Any()).Return(nil, "", nil).Times(2),
	)

	agg := NewAggregator()
	s := newSession(source, NewBudget(0), 1000)
	s.sleep = func(d time.Duration) {
		if d == pageTokenWarmup {
			warmups++
		}
	}

	err := s.citySearch("DC", agg)
	assert.Nil(t, err, "wrong search error")
	assert.Equal(t, 3, agg.Len(), "wrong unique count")
	assert.Equal(t, 2, warmups, "each continuation page needs a warm-up pause")
}

func TestCitySearchBudgetAborts(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	source := mocks.NewMockSource(ctl)
	source.EXPECT().SearchText(gomock.Any()).Return([]places.Place{{ID: "p-1"}}, "", nil).Times(2)

	agg := NewAggregator()
	s := newTestSession(source, 2)

	// two spends for the first two query variants, the third is refused

	err := s.citySearch("DC", agg)
	assert.Equal(t, ErrBudgetExceeded, err, "budget stop should propagate")
	assert.Equal(t, 1, agg.Len(), "wrong unique count")
}
