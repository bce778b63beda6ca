package collector

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/dermatlas/dermatlas-api/consts"
	"github.com/dermatlas/dermatlas-api/external/places"
)

// Grid sweep lattice: ~0.24° latitude / ~0.30° longitude between center
// points (roughly 25-27km apart), with a search radius wide enough that
// adjacent circles overlap.
const (
	gridLatStep      = 0.24
	gridLngStep      = 0.30
	gridRadiusMeters = 20000.0
	gridMaxResults   = 20
)

var gridIncludedTypes = []string{"doctor", "skin_care_clinic"}

// gridSweep partitions the state's bounding box into a regular lattice and
// issues one nearby search per center point. Single failed queries are
// logged and skipped; a budget error aborts the sweep.
func (s *session) gridSweep(stateCode string, agg *Aggregator) error {
	bound, ok := consts.USStateBounds[stateCode]
	if !ok {
		return fmt.Errorf("no bounding box for state %s", stateCode)
	}

	points := 0
	for lat := bound.MinLat; lat <= bound.MaxLat; lat += gridLatStep {
		for lng := bound.MinLng; lng <= bound.MaxLng; lng += gridLngStep {
			points++
			results, err := s.nearby(places.NearbyQuery{
				Center:        places.LatLng{Latitude: lat, Longitude: lng},
				RadiusMeters:  gridRadiusMeters,
				Rank:          places.RankByDistance,
				IncludedTypes: gridIncludedTypes,
				MaxResults:    gridMaxResults,
			})
			if err != nil {
				if err == ErrBudgetExceeded {
					return err
				}
				log.WithFields(log.Fields{
					"prefix": logPrefix,
					"state":  stateCode,
					"lat":    lat,
					"lng":    lng,
					"error":  err,
				}).Error("grid point query failed")
				continue
			}

			for _, p := range results {
				agg.Add(p)
			}
		}
	}

	log.WithFields(log.Fields{
		"prefix": logPrefix,
		"state":  stateCode,
		"points": points,
		"unique": agg.Len(),
	}).Info("grid sweep finished")

	return nil
}
