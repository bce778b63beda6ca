package geo

import (
	"context"
	"fmt"
	"time"

	"googlemaps.github.io/maps"

	"github.com/dermatlas/dermatlas-api/external/places"
)

var (
	ErrNoGeoInfoFound = fmt.Errorf("no geo information found")
)

// StateResolver resolves the political address of a coordinate pair. The
// collector uses it as a fallback for place records that come back without
// usable address components.
type StateResolver interface {
	ResolveState(lat, lng float64) (Address, error)
}

type GeocodingStateResolver struct {
	client *maps.Client
}

func NewGeocodingStateResolver(client *maps.Client) *GeocodingStateResolver {
	return &GeocodingStateResolver{
		client: client,
	}
}

func (g *GeocodingStateResolver) ResolveState(lat, lng float64) (Address, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	geos, err := g.client.Geocode(ctx, &maps.GeocodingRequest{
		LatLng: &maps.LatLng{
			Lat: lat,
			Lng: lng,
		},
		ResultType: []string{"administrative_area_level_1|locality|postal_code"},
		Language:   "en",
	})
	if nil != err {
		return Address{}, err
	}

	if len(geos) == 0 {
		return Address{}, ErrNoGeoInfoFound
	}

	components := make([]places.AddressComponent, 0, len(geos[0].AddressComponents))
	for _, c := range geos[0].AddressComponents {
		components = append(components, places.AddressComponent{
			LongText:  c.LongName,
			ShortText: c.ShortName,
			Types:     c.Types,
		})
	}

	return ParseAddress(components), nil
}
