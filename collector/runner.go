package collector

import (
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/dermatlas/dermatlas-api/classify"
	"github.com/dermatlas/dermatlas-api/external/places"
	"github.com/dermatlas/dermatlas-api/geo"
	"github.com/dermatlas/dermatlas-api/schema"
	"github.com/dermatlas/dermatlas-api/store"
)

const logPrefix = "collector"

// Config wires one collection run.
type Config struct {
	Source places.Source

	// Store is required unless DryRun is set.
	Store store.ClinicStore

	// Resolver optionally recovers state/country for records without
	// usable address components. May be nil.
	Resolver geo.StateResolver

	// RequestBudget caps outbound places calls for the whole run;
	// non-positive means unlimited.
	RequestBudget int

	// QPS derives the mandatory pacing delay (1000ms / QPS) applied after
	// every outbound call.
	QPS float64

	SnapshotDir string
	DryRun      bool
}

// Summary is the run report printed by the collect command. It is filled in
// even when the run is cut short by the request budget.
type Summary struct {
	RunID                  string
	States                 []string
	Discovered             int
	Duplicates             int
	Accepted               int
	RejectedNonUS          int
	RejectedNonDermatology int
	DetailFailures         int
	Persisted              int
	Requests               int
	CostUSD                float64
}

type Runner struct {
	config  Config
	session *session
}

func NewRunner(config Config) *Runner {
	return &Runner{
		config:  config,
		session: newSession(config.Source, NewBudget(config.RequestBudget), config.QPS),
	}
}

// Run collects the given states in order. A budget-exceeded condition halts
// all remaining work but everything gathered up to that point is still
// snapshotted and persisted; the error is returned alongside the summary.
func (r *Runner) Run(states []string) (*Summary, error) {
	summary := &Summary{
		RunID:  uuid.New().String(),
		States: states,
	}

	// one aggregator for the whole run so overlapping strategies and
	// neighboring states cannot produce duplicate records
	agg := NewAggregator()

	var runErr error
	for _, stateCode := range states {
		log.WithFields(log.Fields{
			"prefix": logPrefix,
			"run":    summary.RunID,
			"state":  stateCode,
		}).Info("collecting state")

		start := agg.Len()

		if runErr == nil {
			runErr = r.discover(stateCode, agg)
		}

		discovered := agg.Places()[start:]
		clinics, detailErr := r.fetchAndNormalize(discovered, summary)
		if detailErr != nil && runErr == nil {
			runErr = detailErr
		}

		if r.config.SnapshotDir != "" && len(clinics) > 0 {
			if err := WriteSnapshot(r.config.SnapshotDir, stateCode, clinics); err != nil {
				log.WithFields(log.Fields{
					"prefix": logPrefix,
					"state":  stateCode,
					"error":  err,
				}).Error("snapshot write failed")
			}
		}

		if !r.config.DryRun {
			for _, clinic := range clinics {
				if err := r.config.Store.UpsertClinic(clinic); err != nil {
					log.WithFields(log.Fields{
						"prefix":   logPrefix,
						"place_id": clinic.PlaceID,
						"error":    err,
					}).Error("clinic upsert failed")
					continue
				}
				summary.Persisted++
			}
		}

		if runErr == ErrBudgetExceeded {
			log.WithFields(log.Fields{
				"prefix": logPrefix,
				"run":    summary.RunID,
				"state":  stateCode,
			}).Warn("request budget exceeded, halting run")
			break
		}
		runErr = nil
	}

	summary.Discovered = agg.NewCount()
	summary.Duplicates = agg.DuplicateCount()
	summary.Requests = r.session.budget.Used()
	summary.CostUSD = r.session.costUSD()

	if runErr == ErrBudgetExceeded {
		return summary, runErr
	}
	return summary, nil
}

// discover runs both discovery strategies for one state. Only a budget
// error is returned; anything else was already handled per unit.
func (r *Runner) discover(stateCode string, agg *Aggregator) error {
	if err := r.session.gridSweep(stateCode, agg); err != nil {
		if err == ErrBudgetExceeded {
			return err
		}
		log.WithFields(log.Fields{
			"prefix": logPrefix,
			"state":  stateCode,
			"error":  err,
		}).Error("grid sweep failed")
	}

	if err := r.session.citySearch(stateCode, agg); err != nil {
		if err == ErrBudgetExceeded {
			return err
		}
		log.WithFields(log.Fields{
			"prefix": logPrefix,
			"state":  stateCode,
			"error":  err,
		}).Error("city search failed")
	}

	return nil
}

// fetchAndNormalize runs the final detail pass over the unique discoveries:
// one fresh fetch per place, then address parsing, classification and
// transformation. Single failed fetches are skipped; a budget error stops
// the pass and returns what was normalized so far.
func (r *Runner) fetchAndNormalize(discovered []places.Place, summary *Summary) ([]schema.Clinic, error) {
	clinics := make([]schema.Clinic, 0, len(discovered))

	for i := range discovered {
		placeID := discovered[i].ID

		detail, err := r.session.details(placeID)
		if err != nil {
			if err == ErrBudgetExceeded {
				return clinics, err
			}
			summary.DetailFailures++
			log.WithFields(log.Fields{
				"prefix":   logPrefix,
				"place_id": placeID,
				"error":    err,
			}).Error("detail fetch failed")
			continue
		}

		addr := r.resolveAddress(detail)

		decision := classify.Clinic(classify.Candidate{
			Name:        detail.Name(),
			Website:     detail.WebsiteURI,
			Types:       detail.Types,
			CountryCode: addr.CountryCode,
			StateCode:   addr.StateCode,
		})
		if !decision.Accepted {
			switch decision.Reason {
			case classify.ReasonNonUS:
				summary.RejectedNonUS++
			default:
				summary.RejectedNonDermatology++
			}
			continue
		}

		clinic, ok := Transform(detail, addr)
		if !ok {
			summary.RejectedNonUS++
			continue
		}

		summary.Accepted++
		clinics = append(clinics, *clinic)
	}

	return clinics, nil
}

// resolveAddress parses the detail record's address components, falling back
// to reverse geocoding when they yield no state.
func (r *Runner) resolveAddress(p *places.Place) geo.Address {
	addr := geo.ParseAddress(p.AddressComponents)
	if addr.ValidUSState() || r.config.Resolver == nil || p.Location == nil {
		return addr
	}

	resolved, err := r.config.Resolver.ResolveState(p.Location.Latitude, p.Location.Longitude)
	if err != nil {
		log.WithFields(log.Fields{
			"prefix":   logPrefix,
			"place_id": p.ID,
			"error":    err,
		}).Warn("geocoding fallback failed")
		return addr
	}

	if addr.StateCode == "" {
		addr.StateCode = resolved.StateCode
	}
	if addr.CountryCode == "" {
		addr.CountryCode = resolved.CountryCode
	}
	if addr.City == "" {
		addr.City = resolved.City
	}
	if addr.PostalCode == "" {
		addr.PostalCode = resolved.PostalCode
	}
	return addr
}
