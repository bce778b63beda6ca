package collector

import (
	"strings"
	"time"

	"github.com/dermatlas/dermatlas-api/consts"
	"github.com/dermatlas/dermatlas-api/external/places"
	"github.com/dermatlas/dermatlas-api/geo"
	"github.com/dermatlas/dermatlas-api/schema"
)

// Transform maps an accepted raw place record into a normalized clinic
// record. It returns false only when the identifier is missing or the
// address carries no valid US state code, mirroring the classifier's US
// check as a final safety net. Every optional field falls back to its zero
// value; the input is never mutated.
func Transform(p *places.Place, addr geo.Address) (*schema.Clinic, bool) {
	if p == nil || p.ID == "" {
		return nil, false
	}
	if !consts.ValidStateCode(addr.StateCode) {
		return nil, false
	}

	clinic := &schema.Clinic{
		PlaceID:          p.ID,
		Name:             p.Name(),
		FormattedAddress: p.FormattedAddress,
		City:             addr.City,
		StateCode:        addr.StateCode,
		PostalCode:       addr.PostalCode,
		PrimaryType:      p.PrimaryType,
		Types:            append([]string{}, p.Types...),
		Phone:            p.NationalPhoneNumber,
		Website:          p.WebsiteURI,
		MapsURL:          p.GoogleMapsURI,
		BusinessStatus:   p.BusinessStatus,
		LastFetchedAt:    time.Now().UTC().Format("2006-01-02"),
	}

	if p.Location != nil {
		clinic.Location = &schema.GeoJSON{
			Type:        "Point",
			Coordinates: []float64{p.Location.Longitude, p.Location.Latitude},
		}
	}

	if p.Rating != nil {
		r := *p.Rating
		clinic.Rating = &r
	}
	if p.UserRatingCount != nil {
		n := *p.UserRatingCount
		clinic.RatingCount = &n
	}

	if h := p.CurrentOpeningHours; h != nil {
		clinic.OpenNow = copyBool(h.OpenNow)
		clinic.OpeningHours = parseWeekdayDescriptions(h.WeekdayDescriptions)
	}

	if o := p.AccessibilityOptions; o != nil {
		clinic.Accessibility = &schema.AccessibilityOptions{
			WheelchairAccessibleEntrance: copyBool(o.WheelchairAccessibleEntrance),
			WheelchairAccessibleParking:  copyBool(o.WheelchairAccessibleParking),
			WheelchairAccessibleRestroom: copyBool(o.WheelchairAccessibleRestroom),
			WheelchairAccessibleSeating:  copyBool(o.WheelchairAccessibleSeating),
		}
	}
	if o := p.PaymentOptions; o != nil {
		clinic.Payment = &schema.PaymentOptions{
			AcceptsCreditCards: copyBool(o.AcceptsCreditCards),
			AcceptsDebitCards:  copyBool(o.AcceptsDebitCards),
			AcceptsCashOnly:    copyBool(o.AcceptsCashOnly),
			AcceptsNFC:         copyBool(o.AcceptsNFC),
		}
	}
	if o := p.ParkingOptions; o != nil {
		clinic.Parking = &schema.ParkingOptions{
			FreeParkingLot:    copyBool(o.FreeParkingLot),
			PaidParkingLot:    copyBool(o.PaidParkingLot),
			FreeStreetParking: copyBool(o.FreeStreetParking),
			ValetParking:      copyBool(o.ValetParking),
			FreeGarageParking: copyBool(o.FreeGarageParking),
		}
	}

	return clinic, true
}

// parseWeekdayDescriptions splits "Monday: 9:00 AM – 5:00 PM" lines into
// ordered day/hours pairs, keeping the raw text when a line has no day
// prefix.
func parseWeekdayDescriptions(lines []string) []schema.DayHours {
	if len(lines) == 0 {
		return nil
	}

	hours := make([]schema.DayHours, 0, len(lines))
	for _, line := range lines {
		parts := strings.SplitN(line, ": ", 2)
		if len(parts) == 2 {
			hours = append(hours, schema.DayHours{Day: parts[0], Hours: parts[1]})
		} else {
			hours = append(hours, schema.DayHours{Hours: line})
		}
	}
	return hours
}

func copyBool(b *bool) *bool {
	if b == nil {
		return nil
	}
	v := *b
	return &v
}
