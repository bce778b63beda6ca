package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/dermatlas/dermatlas-api/api/mocks"
	"github.com/dermatlas/dermatlas-api/schema"
	"github.com/dermatlas/dermatlas-api/store"
)

func f64(v float64) *float64 { return &v }

func testRouter(s *Server) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/clinics", s.listClinics)
	router.GET("/clinics/:placeID", s.clinicDetail)
	router.GET("/stats", s.directoryStats)
	return router
}

func TestListClinicsByStateAndCity(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockClinicStore(ctl)
	s := Server{store: m}

	m.EXPECT().ListClinics("CA", "Los Angeles", int64(defaultListLimit)).Return([]schema.Clinic{
		{PlaceID: "p-1", Name: "Sunset Dermatology", StateCode: "CA", City: "Los Angeles"},
	}, nil).Times(1)

	req := httptest.NewRequest("GET", "/clinics?state=ca&city=Los+Angeles", nil)
	w := httptest.NewRecorder()
	testRouter(&s).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp map[string][]schema.Clinic
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)

	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, 1, len(jResp["clinics"]), "wrong clinic count")
	assert.Equal(t, "p-1", jResp["clinics"][0].PlaceID, "wrong clinic")
}

func TestListClinicsPipeline(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockClinicStore(ctl)
	s := Server{store: m}

	// min_rating drops p-3, the text query drops p-2, the sort flips the rest
	m.EXPECT().ListClinics("", "", int64(defaultListLimit)).Return([]schema.Clinic{
		{PlaceID: "p-1", Name: "Valley Dermatology", StateCode: "CA", Rating: f64(4.1)},
		{PlaceID: "p-2", Name: "Harbor Skin Clinic", StateCode: "CA", Rating: f64(4.9)},
		{PlaceID: "p-3", Name: "Bayside Dermatology", StateCode: "CA", Rating: f64(3.2)},
		{PlaceID: "p-4", Name: "Summit Dermatology", StateCode: "CA", Rating: f64(4.7)},
	}, nil).Times(1)

	req := httptest.NewRequest("GET", "/clinics?min_rating=4.0&q=dermatology&sort=rating&order=desc", nil)
	w := httptest.NewRecorder()
	testRouter(&s).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp map[string][]schema.Clinic
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)

	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, 2, len(jResp["clinics"]), "wrong clinic count")
	assert.Equal(t, "p-4", jResp["clinics"][0].PlaceID, "wrong sort order")
	assert.Equal(t, "p-1", jResp["clinics"][1].PlaceID, "wrong sort order")
}

func TestListClinicsNear(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockClinicStore(ctl)
	s := Server{store: m}

	m.EXPECT().ListClinics("", "", int64(defaultListLimit)).Return([]schema.Clinic{
		{PlaceID: "far", Name: "A", StateCode: "CA", Location: &schema.GeoJSON{
			Type: "Point", Coordinates: []float64{-122.4, 37.7},
		}},
		{PlaceID: "close", Name: "B", StateCode: "CA", Location: &schema.GeoJSON{
			Type: "Point", Coordinates: []float64{-118.3, 34.1},
		}},
	}, nil).Times(1)

	req := httptest.NewRequest("GET", "/clinics?near=34.05,-118.24", nil)
	w := httptest.NewRecorder()
	testRouter(&s).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp map[string][]schema.Clinic
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)

	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, "close", jResp["clinics"][0].PlaceID, "wrong distance order")
	assert.NotNil(t, jResp["clinics"][0].Distance, "missing derived distance")
}

func TestListClinicsInvalidParameters(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := Server{store: mocks.NewMockClinicStore(ctl)}
	router := testRouter(&s)

	for _, path := range []string{
		"/clinics?min_rating=high",
		"/clinics?limit=-5",
		"/clinics?has_website=maybe",
		"/clinics?near=34.05",
	} {
		req := httptest.NewRequest("GET", path, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code for %s", path)
	}
}

func TestClinicDetail(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockClinicStore(ctl)
	s := Server{store: m}

	m.EXPECT().GetClinic("p-1").Return(&schema.Clinic{
		PlaceID: "p-1", Name: "Sunset Dermatology", StateCode: "CA",
	}, nil).Times(1)

	req := httptest.NewRequest("GET", "/clinics/p-1", nil)
	w := httptest.NewRecorder()
	testRouter(&s).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp map[string]schema.Clinic
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)

	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, "Sunset Dermatology", jResp["clinic"].Name, "wrong clinic")
}

func TestClinicDetailNotFound(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockClinicStore(ctl)
	s := Server{store: m}

	m.EXPECT().GetClinic("missing").Return(nil, store.ErrClinicNotFound).Times(1)

	req := httptest.NewRequest("GET", "/clinics/missing", nil)
	w := httptest.NewRecorder()
	testRouter(&s).ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code, "wrong status code")

	var jResp ErrorResponse
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)

	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, errorClinicNotFound.Code, jResp.Code, "wrong error code")
}

func TestDirectoryStats(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockClinicStore(ctl)
	s := Server{store: m}

	m.EXPECT().StateStats().Return(&store.DirectoryStats{
		Total:  3,
		States: 2,
		ByState: []schema.StateCount{
			{StateCode: "CA", Count: 2},
			{StateCode: "NY", Count: 1},
		},
	}, nil).Times(1)

	req := httptest.NewRequest("GET", "/stats", nil)
	w := httptest.NewRecorder()
	testRouter(&s).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")
	assert.Equal(t, "public, max-age=3600, stale-while-revalidate=86400",
		w.Header().Get("Cache-Control"), "wrong cache policy")

	var jResp store.DirectoryStats
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)

	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, int64(3), jResp.Total, "wrong total")
	assert.Equal(t, 2, len(jResp.ByState), "wrong state count")
}
