package filter

import (
	"regexp"
	"sort"
	"strings"

	"github.com/dermatlas/dermatlas-api/geo"
	"github.com/dermatlas/dermatlas-api/schema"
)

var zipPattern = regexp.MustCompile(`^\d{5}$`)

// Search filters the list by a free text query. A bare 5-digit query is
// treated as an exact postal code lookup; anything else matches
// case-insensitively against name, address, city, state and category text.
func Search(clinics []schema.Clinic, query string) []schema.Clinic {
	query = strings.TrimSpace(query)
	if query == "" {
		return append([]schema.Clinic{}, clinics...)
	}

	result := make([]schema.Clinic, 0, len(clinics))

	if zipPattern.MatchString(query) {
		for _, c := range clinics {
			if c.PostalCode == query {
				result = append(result, c)
			}
		}
		return result
	}

	q := strings.ToLower(query)
	for _, c := range clinics {
		haystack := strings.ToLower(strings.Join([]string{
			c.Name,
			c.FormattedAddress,
			c.City,
			c.StateCode,
			strings.Join(c.Types, " "),
			c.PrimaryType,
		}, " "))
		if strings.Contains(haystack, q) {
			result = append(result, c)
		}
	}
	return result
}

// Near attaches the great-circle distance from the reference point to every
// clinic and returns a new list sorted ascending by that distance.
func Near(clinics []schema.Clinic, lat, lng float64) []schema.Clinic {
	result := make([]schema.Clinic, len(clinics))
	for i, c := range clinics {
		d := geo.Distance(lat, lng, c.Latitude(), c.Longitude())
		c.Distance = &d
		result[i] = c
	}

	sort.SliceStable(result, func(i, j int) bool {
		return *result[i].Distance < *result[j].Distance
	})
	return result
}
