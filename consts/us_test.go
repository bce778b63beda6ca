package consts_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dermatlas/dermatlas-api/consts"
)

func TestValidStateCode(t *testing.T) {
	assert.True(t, consts.ValidStateCode("CA"), "wrong state validity")
	assert.True(t, consts.ValidStateCode("DC"), "wrong state validity")
	assert.False(t, consts.ValidStateCode("PR"), "wrong state validity")
	assert.False(t, consts.ValidStateCode("ca"), "wrong state validity")
	assert.False(t, consts.ValidStateCode(""), "wrong state validity")
}

func TestAllStateCodes(t *testing.T) {
	codes := consts.AllStateCodes()
	assert.Equal(t, 51, len(codes), "wrong state count")
	assert.Equal(t, "AK", codes[0], "wrong sort order")
	assert.Equal(t, "WY", codes[len(codes)-1], "wrong sort order")
}

func TestParseStateSelection(t *testing.T) {
	codes, err := consts.ParseStateSelection("ca, ny,TX")
	assert.Nil(t, err, "wrong selection parse")
	assert.Equal(t, []string{"CA", "NY", "TX"}, codes, "wrong selection parse")

	codes, err = consts.ParseStateSelection("all")
	assert.Nil(t, err, "wrong selection parse")
	assert.Equal(t, 51, len(codes), "wrong selection parse")

	_, err = consts.ParseStateSelection("ZZ")
	assert.NotNil(t, err, "unknown code should fail")

	_, err = consts.ParseStateSelection("")
	assert.NotNil(t, err, "empty selection should fail")
}

func TestEveryStateHasBoundsAndCities(t *testing.T) {
	for _, code := range consts.AllStateCodes() {
		_, ok := consts.USStateBounds[code]
		assert.True(t, ok, "missing bounds for %s", code)

		cities, ok := consts.USMajorCities[code]
		assert.True(t, ok, "missing cities for %s", code)
		assert.NotEmpty(t, cities, "empty cities for %s", code)
	}
}
