package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dermatlas/dermatlas-api/external/places"
)

func TestParseAddress(t *testing.T) {
	addr := ParseAddress([]places.AddressComponent{
		{LongText: "9201", ShortText: "9201", Types: []string{"street_number"}},
		{LongText: "Sunset Boulevard", ShortText: "Sunset Blvd", Types: []string{"route"}},
		{LongText: "Los Angeles", ShortText: "LA", Types: []string{"locality", "political"}},
		{LongText: "Los Angeles County", ShortText: "Los Angeles County", Types: []string{"administrative_area_level_2", "political"}},
		{LongText: "California", ShortText: "CA", Types: []string{"administrative_area_level_1", "political"}},
		{LongText: "United States", ShortText: "US", Types: []string{"country", "political"}},
		{LongText: "90069", ShortText: "90069", Types: []string{"postal_code"}},
	})

	assert.Equal(t, "CA", addr.StateCode, "wrong state code")
	assert.Equal(t, "Los Angeles", addr.City, "wrong city")
	assert.Equal(t, "90069", addr.PostalCode, "wrong postal code")
	assert.Equal(t, "US", addr.CountryCode, "wrong country code")
	assert.True(t, addr.ValidUSState(), "wrong state validity")
}

func TestParseAddressPostalTownFallback(t *testing.T) {
	addr := ParseAddress([]places.AddressComponent{
		{LongText: "Brooklyn", ShortText: "Brooklyn", Types: []string{"postal_town"}},
		{LongText: "New York", ShortText: "NY", Types: []string{"administrative_area_level_1"}},
	})
	assert.Equal(t, "Brooklyn", addr.City, "postal town should stand in for city")

	addr = ParseAddress([]places.AddressComponent{
		{LongText: "Brooklyn Heights", ShortText: "Brooklyn Heights", Types: []string{"postal_town"}},
		{LongText: "New York", ShortText: "New York", Types: []string{"locality"}},
	})
	assert.Equal(t, "New York", addr.City, "locality wins over postal town")
}

func TestParseAddressFirstComponentWins(t *testing.T) {
	addr := ParseAddress([]places.AddressComponent{
		{LongText: "California", ShortText: "CA", Types: []string{"administrative_area_level_1"}},
		{LongText: "Nevada", ShortText: "NV", Types: []string{"administrative_area_level_1"}},
	})
	assert.Equal(t, "CA", addr.StateCode, "first component should win")
}

func TestParseAddressEmpty(t *testing.T) {
	addr := ParseAddress(nil)
	assert.Equal(t, Address{}, addr, "missing components should yield empty fields")
	assert.False(t, addr.ValidUSState(), "empty address is not a valid US state")
}

func TestDistance(t *testing.T) {
	// LA city hall to the Santa Monica pier, roughly 24km.
	d := Distance(34.0537, -118.2428, 34.0100, -118.4962)
	assert.InDelta(t, 24.0, d, 1.0, "wrong distance")

	assert.Equal(t, 0.0, Distance(34.05, -118.24, 34.05, -118.24), "zero distance expected")
}
