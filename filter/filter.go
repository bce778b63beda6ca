// Package filter implements the pure filter/sort/search pipeline applied to
// in-memory clinic lists. Every function returns a new slice and never
// mutates its input.
package filter

import (
	"github.com/dermatlas/dermatlas-api/schema"
)

// Config are the independently combinable list predicates; all configured
// predicates must pass (logical AND).
type Config struct {
	MinRating      float64
	HasWebsite     bool
	HasPhone       bool
	Wheelchair     bool
	FreeParkingLot bool
	OpenNow        bool
	States         []string
}

// Apply filters the list with the configured predicates.
func Apply(clinics []schema.Clinic, cfg Config) []schema.Clinic {
	var stateSet map[string]struct{}
	if len(cfg.States) > 0 {
		stateSet = make(map[string]struct{}, len(cfg.States))
		for _, s := range cfg.States {
			stateSet[s] = struct{}{}
		}
	}

	result := make([]schema.Clinic, 0, len(clinics))
	for _, c := range clinics {
		if cfg.MinRating > 0 && (c.Rating == nil || *c.Rating < cfg.MinRating) {
			continue
		}
		if cfg.HasWebsite && c.Website == "" {
			continue
		}
		if cfg.HasPhone && c.Phone == "" {
			continue
		}
		if cfg.Wheelchair && !flagSet(wheelchairEntrance(&c)) {
			continue
		}
		if cfg.FreeParkingLot && !flagSet(freeParkingLot(&c)) {
			continue
		}
		if cfg.OpenNow && !flagSet(c.OpenNow) {
			continue
		}
		if stateSet != nil {
			if _, ok := stateSet[c.StateCode]; !ok {
				continue
			}
		}
		result = append(result, c)
	}
	return result
}

// Absent and false read the same: a capability only counts when reported
// true by the source.
func flagSet(b *bool) bool {
	return b != nil && *b
}

func wheelchairEntrance(c *schema.Clinic) *bool {
	if c.Accessibility == nil {
		return nil
	}
	return c.Accessibility.WheelchairAccessibleEntrance
}

func freeParkingLot(c *schema.Clinic) *bool {
	if c.Parking == nil {
		return nil
	}
	return c.Parking.FreeParkingLot
}
