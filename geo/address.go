package geo

import (
	"github.com/dermatlas/dermatlas-api/consts"
	"github.com/dermatlas/dermatlas-api/external/places"
)

// Address is the parsed political address of a place record. Missing
// components stay empty; parsing never fails.
type Address struct {
	StateCode   string
	City        string
	PostalCode  string
	CountryCode string
}

// ParseAddress extracts state, city, postal code and country from a typed
// address component list. The first component carrying each type wins; a
// postal town only stands in for the city when no locality is present.
func ParseAddress(components []places.AddressComponent) Address {
	var addr Address
	var postalTown string

	for _, c := range components {
		for _, t := range c.Types {
			switch t {
			case "administrative_area_level_1":
				if addr.StateCode == "" {
					addr.StateCode = c.ShortText
				}
			case "locality":
				if addr.City == "" {
					addr.City = c.LongText
				}
			case "postal_town":
				if postalTown == "" {
					postalTown = c.LongText
				}
			case "postal_code":
				if addr.PostalCode == "" {
					addr.PostalCode = c.LongText
				}
			case "country":
				if addr.CountryCode == "" {
					addr.CountryCode = c.ShortText
				}
			}
		}
	}

	if addr.City == "" {
		addr.City = postalTown
	}

	return addr
}

// ValidUSState reports whether the address carries a two-letter code of one
// of the 50 states or DC.
func (a Address) ValidUSState() bool {
	return consts.ValidStateCode(a.StateCode)
}
