package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dermatlas/dermatlas-api/filter"
	"github.com/dermatlas/dermatlas-api/store"
)

const defaultListLimit = 500

// listClinics returns directory records. The store narrows by state and
// city; everything else (text query, predicates, sorting, location search)
// runs through the filter pipeline on the fetched list.
func (s *Server) listClinics(c *gin.Context) {
	states := splitParam(c.Query("state"))

	// a single state can be narrowed by the store itself
	storeState := ""
	if len(states) == 1 {
		states, storeState = nil, states[0]
	}

	limit := int64(defaultListLimit)
	if v := c.Query("limit"); v != "" {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil || parsed <= 0 {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
			return
		}
		limit = parsed
	}

	cfg := filter.Config{States: states}

	if v := c.Query("min_rating"); v != "" {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
			return
		}
		cfg.MinRating = parsed
	}

	boolParams := []struct {
		name   string
		target *bool
	}{
		{"has_website", &cfg.HasWebsite},
		{"has_phone", &cfg.HasPhone},
		{"wheelchair", &cfg.Wheelchair},
		{"free_parking", &cfg.FreeParkingLot},
		{"open_now", &cfg.OpenNow},
	}
	for _, p := range boolParams {
		v := c.Query(p.name)
		if v == "" {
			continue
		}
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
			return
		}
		*p.target = parsed
	}

	var nearLat, nearLng float64
	near := c.Query("near")
	if near != "" {
		var ok bool
		nearLat, nearLng, ok = parseLatLng(near)
		if !ok {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
			return
		}
	}

	clinics, err := s.store.ListClinics(storeState, c.Query("city"), limit)
	if err != nil {
		log.Error(err)
		abortWithEncoding(c, http.StatusInternalServerError, errorQueryClinics)
		return
	}

	clinics = filter.Apply(clinics, cfg)

	if q := c.Query("q"); q != "" {
		clinics = filter.Search(clinics, q)
	}

	if near != "" {
		clinics = filter.Near(clinics, nearLat, nearLng)
	} else if by := c.Query("sort"); by != "" {
		clinics = filter.SortBy(clinics, by, c.Query("order"))
	}

	c.JSON(http.StatusOK, gin.H{"clinics": clinics})
}

func (s *Server) clinicDetail(c *gin.Context) {
	clinic, err := s.store.GetClinic(c.Param("placeID"))
	if err != nil {
		if err == store.ErrClinicNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorClinicNotFound)
			return
		}
		log.Error(err)
		abortWithEncoding(c, http.StatusInternalServerError, errorQueryClinics)
		return
	}

	c.JSON(http.StatusOK, gin.H{"clinic": clinic})
}

// directoryStats serves the per-state aggregation. The counts only move when
// a collection run finishes, so responses carry a long shared cache policy.
func (s *Server) directoryStats(c *gin.Context) {
	stats, err := s.store.StateStats()
	if err != nil {
		log.Error(err)
		abortWithEncoding(c, http.StatusInternalServerError, errorQueryStats)
		return
	}

	c.Header("Cache-Control", "public, max-age=3600, stale-while-revalidate=86400")
	c.JSON(http.StatusOK, stats)
}

func splitParam(s string) []string {
	if s == "" {
		return nil
	}

	values := make([]string, 0)
	for _, v := range strings.Split(s, ",") {
		if v = strings.ToUpper(strings.TrimSpace(v)); v != "" {
			values = append(values, v)
		}
	}
	return values
}

func parseLatLng(s string) (float64, float64, bool) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, false
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, false
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, false
	}
	return lat, lng, true
}
