package collector

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dermatlas/dermatlas-api/external/places"
	"github.com/dermatlas/dermatlas-api/geo"
)

func boolPtr(v bool) *bool { return &v }

func fullPlace() *places.Place {
	rating := 4.7
	count := 321
	return &places.Place{
		ID:               "full-1",
		DisplayName:      &places.LocalizedText{Text: "Acme Dermatology"},
		FormattedAddress: "123 Main St, Los Angeles, CA 90001, USA",
		Location:         &places.LatLng{Latitude: 34.05, Longitude: -118.24},
		Types:            []string{"doctor", "skin_care_clinic"},
		PrimaryType:      "skin_care_clinic",
		Rating:           &rating,
		UserRatingCount:  &count,
		CurrentOpeningHours: &places.OpeningHours{
			OpenNow: boolPtr(true),
			WeekdayDescriptions: []string{
				"Monday: 9:00 AM – 5:00 PM",
				"Tuesday: Closed",
			},
		},
		NationalPhoneNumber: "(213) 555-0100",
		WebsiteURI:          "https://acmederm.example.com",
		GoogleMapsURI:       "https://maps.google.com/?cid=42",
		BusinessStatus:      "OPERATIONAL",
		AccessibilityOptions: &places.AccessibilityOptions{
			WheelchairAccessibleEntrance: boolPtr(true),
			WheelchairAccessibleParking:  boolPtr(false),
		},
		PaymentOptions: &places.PaymentOptions{
			AcceptsCreditCards: boolPtr(true),
		},
		ParkingOptions: &places.ParkingOptions{
			FreeParkingLot: boolPtr(true),
		},
	}
}

func fullAddress() geo.Address {
	return geo.Address{
		StateCode:   "CA",
		City:        "Los Angeles",
		PostalCode:  "90001",
		CountryCode: "US",
	}
}

func TestTransformKeepsEveryField(t *testing.T) {
	clinic, ok := Transform(fullPlace(), fullAddress())
	assert.True(t, ok, "transform rejected a valid place")

	assert.Equal(t, "full-1", clinic.PlaceID, "wrong place id")
	assert.Equal(t, "Acme Dermatology", clinic.Name, "wrong name")
	assert.Equal(t, "123 Main St, Los Angeles, CA 90001, USA", clinic.FormattedAddress, "wrong address")
	assert.Equal(t, "Los Angeles", clinic.City, "wrong city")
	assert.Equal(t, "CA", clinic.StateCode, "wrong state")
	assert.Equal(t, "90001", clinic.PostalCode, "wrong postal code")
	assert.Equal(t, "skin_care_clinic", clinic.PrimaryType, "wrong primary type")
	assert.Equal(t, []string{"doctor", "skin_care_clinic"}, clinic.Types, "wrong types")
	assert.Equal(t, []float64{-118.24, 34.05}, clinic.Location.Coordinates, "wrong coordinates")
	assert.Equal(t, 4.7, *clinic.Rating, "wrong rating")
	assert.Equal(t, 321, *clinic.RatingCount, "wrong rating count")
	assert.Equal(t, "(213) 555-0100", clinic.Phone, "wrong phone")
	assert.Equal(t, "https://acmederm.example.com", clinic.Website, "wrong website")
	assert.Equal(t, "https://maps.google.com/?cid=42", clinic.MapsURL, "wrong maps url")
	assert.Equal(t, "OPERATIONAL", clinic.BusinessStatus, "wrong business status")
	assert.True(t, *clinic.OpenNow, "wrong open flag")
	assert.Equal(t, 2, len(clinic.OpeningHours), "wrong hours count")
	assert.Equal(t, "Monday", clinic.OpeningHours[0].Day, "wrong hours day")
	assert.Equal(t, "9:00 AM – 5:00 PM", clinic.OpeningHours[0].Hours, "wrong hours text")
	assert.True(t, *clinic.Accessibility.WheelchairAccessibleEntrance, "wrong accessibility flag")
	assert.False(t, *clinic.Accessibility.WheelchairAccessibleParking, "wrong accessibility flag")
	assert.Nil(t, clinic.Accessibility.WheelchairAccessibleRestroom, "absent flag should stay nil")
	assert.True(t, *clinic.Payment.AcceptsCreditCards, "wrong payment flag")
	assert.True(t, *clinic.Parking.FreeParkingLot, "wrong parking flag")
	assert.False(t, clinic.Featured, "featured must default to false")
	assert.Equal(t, time.Now().UTC().Format("2006-01-02"), clinic.LastFetchedAt, "wrong fetch date")
}

func TestTransformDoesNotAliasInput(t *testing.T) {
	place := fullPlace()
	clinic, ok := Transform(place, fullAddress())
	assert.True(t, ok, "transform rejected a valid place")

	*clinic.Rating = 1.0
	clinic.Types[0] = "changed"
	*clinic.Accessibility.WheelchairAccessibleEntrance = false

	assert.Equal(t, 4.7, *place.Rating, "input rating mutated")
	assert.Equal(t, "doctor", place.Types[0], "input types mutated")
	assert.True(t, *place.AccessibilityOptions.WheelchairAccessibleEntrance, "input flags mutated")
}

func TestTransformMissingOptionalFields(t *testing.T) {
	clinic, ok := Transform(&places.Place{ID: "sparse-1"}, geo.Address{StateCode: "NY"})
	assert.True(t, ok, "sparse place should transform")
	assert.Equal(t, "", clinic.Name, "wrong empty name")
	assert.Nil(t, clinic.Rating, "missing rating should stay nil")
	assert.Nil(t, clinic.OpenNow, "missing open flag should stay nil")
	assert.Nil(t, clinic.OpeningHours, "missing hours should stay nil")
	assert.Nil(t, clinic.Accessibility, "missing group should stay nil")
	assert.Nil(t, clinic.Location, "missing location should stay nil")
}

func TestTransformRejects(t *testing.T) {
	_, ok := Transform(&places.Place{}, fullAddress())
	assert.False(t, ok, "missing id should reject")

	_, ok = Transform(fullPlace(), geo.Address{StateCode: ""})
	assert.False(t, ok, "missing state should reject")

	_, ok = Transform(fullPlace(), geo.Address{StateCode: "ZZ"})
	assert.False(t, ok, "invalid state should reject")

	_, ok = Transform(nil, fullAddress())
	assert.False(t, ok, "nil place should reject")
}
