package collector

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/dermatlas/dermatlas-api/consts"
	"github.com/dermatlas/dermatlas-api/external/places"
)

const (
	textPageSize = 20
	maxTextPages = 3

	// The source needs a warm-up delay before a freshly issued pagination
	// token becomes valid.
	pageTokenWarmup = 2 * time.Second
)

var cityQueryTemplates = []string{
	"dermatology clinic in %s, %s",
	"dermatologist %s %s",
	"skin clinic %s %s",
}

// citySearch issues several free-text query variants for each curated major
// city of the state, following pagination tokens up to the page cap. A
// failed query skips that city/variant; a budget error aborts the run.
func (s *session) citySearch(stateCode string, agg *Aggregator) error {
	cities, ok := consts.USMajorCities[stateCode]
	if !ok {
		return fmt.Errorf("no city list for state %s", stateCode)
	}

	for _, city := range cities {
		for _, tpl := range cityQueryTemplates {
			query := fmt.Sprintf(tpl, city, stateCode)

			token := ""
			for page := 0; page < maxTextPages; page++ {
				if page > 0 {
					s.sleep(pageTokenWarmup)
				}

				results, next, err := s.textSearch(places.TextQuery{
					Query:     query,
					PageSize:  textPageSize,
					PageToken: token,
				})
				if err != nil {
					if err == ErrBudgetExceeded {
						return err
					}
					log.WithFields(log.Fields{
						"prefix": logPrefix,
						"state":  stateCode,
						"query":  query,
						"page":   page,
						"error":  err,
					}).Error("city text query failed")
					break
				}

				for _, p := range results {
					agg.Add(p)
				}

				if next == "" {
					break
				}
				token = next
			}
		}
	}

	log.WithFields(log.Fields{
		"prefix": logPrefix,
		"state":  stateCode,
		"cities": len(cities),
		"unique": agg.Len(),
	}).Info("city text search finished")

	return nil
}
