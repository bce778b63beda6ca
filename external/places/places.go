package places

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"
	"time"
)

const (
	logPrefix      = "places"
	defaultURL     = "https://places.googleapis.com"
	defaultTimeout = 30 * time.Second

	// Field masks keep the billed attribute surface as small as possible.
	// Search calls only need enough to dedupe and classify; the final
	// detail pass fetches the full record.
	SearchFieldMask = "places.id,places.displayName,places.formattedAddress,places.location," +
		"places.types,places.primaryType,places.businessStatus,places.websiteUri"
	DetailFieldMask = "id,displayName,formattedAddress,addressComponents,location,types," +
		"primaryType,rating,userRatingCount,currentOpeningHours,nationalPhoneNumber," +
		"websiteUri,googleMapsUri,businessStatus,accessibilityOptions,paymentOptions,parkingOptions"
)

var (
	ErrEmptyAPIKey = fmt.Errorf("empty places api key")
)

// RankPreference - result ranking preference of a nearby search.
type RankPreference string

const (
	RankByDistance   RankPreference = "DISTANCE"
	RankByPopularity RankPreference = "POPULARITY"
)

type LatLng struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type LocalizedText struct {
	Text         string `json:"text"`
	LanguageCode string `json:"languageCode,omitempty"`
}

type AddressComponent struct {
	LongText  string   `json:"longText"`
	ShortText string   `json:"shortText"`
	Types     []string `json:"types"`
}

type OpeningHours struct {
	OpenNow             *bool    `json:"openNow,omitempty"`
	WeekdayDescriptions []string `json:"weekdayDescriptions,omitempty"`
}

type AccessibilityOptions struct {
	WheelchairAccessibleEntrance *bool `json:"wheelchairAccessibleEntrance,omitempty"`
	WheelchairAccessibleParking  *bool `json:"wheelchairAccessibleParking,omitempty"`
	WheelchairAccessibleRestroom *bool `json:"wheelchairAccessibleRestroom,omitempty"`
	WheelchairAccessibleSeating  *bool `json:"wheelchairAccessibleSeating,omitempty"`
}

type PaymentOptions struct {
	AcceptsCreditCards *bool `json:"acceptsCreditCards,omitempty"`
	AcceptsDebitCards  *bool `json:"acceptsDebitCards,omitempty"`
	AcceptsCashOnly    *bool `json:"acceptsCashOnly,omitempty"`
	AcceptsNFC         *bool `json:"acceptsNfc,omitempty"`
}

type ParkingOptions struct {
	FreeParkingLot    *bool `json:"freeParkingLot,omitempty"`
	PaidParkingLot    *bool `json:"paidParkingLot,omitempty"`
	FreeStreetParking *bool `json:"freeStreetParking,omitempty"`
	ValetParking      *bool `json:"valetParking,omitempty"`
	FreeGarageParking *bool `json:"freeGarageParking,omitempty"`
}

// Place - one raw place record as returned by the places source. Alternate
// upstream key spellings are absorbed here once; downstream code never
// branches on the wire shape.
type Place struct {
	ID                   string                `json:"id"`
	DisplayName          *LocalizedText        `json:"displayName,omitempty"`
	FormattedAddress     string                `json:"formattedAddress,omitempty"`
	AddressComponents    []AddressComponent    `json:"addressComponents,omitempty"`
	Location             *LatLng               `json:"location,omitempty"`
	Types                []string              `json:"types,omitempty"`
	PrimaryType          string                `json:"primaryType,omitempty"`
	Rating               *float64              `json:"rating,omitempty"`
	UserRatingCount      *int                  `json:"userRatingCount,omitempty"`
	CurrentOpeningHours  *OpeningHours         `json:"currentOpeningHours,omitempty"`
	NationalPhoneNumber  string                `json:"nationalPhoneNumber,omitempty"`
	WebsiteURI           string                `json:"websiteUri,omitempty"`
	GoogleMapsURI        string                `json:"googleMapsUri,omitempty"`
	BusinessStatus       string                `json:"businessStatus,omitempty"`
	AccessibilityOptions *AccessibilityOptions `json:"accessibilityOptions,omitempty"`
	PaymentOptions       *PaymentOptions       `json:"paymentOptions,omitempty"`
	ParkingOptions       *ParkingOptions       `json:"parkingOptions,omitempty"`
}

// Name returns the display text of the place name.
func (p *Place) Name() string {
	if p.DisplayName == nil {
		return ""
	}
	return p.DisplayName.Text
}

type NearbyQuery struct {
	Center        LatLng
	RadiusMeters  float64
	Rank          RankPreference
	IncludedTypes []string
	MaxResults    int
}

type TextQuery struct {
	Query     string
	PageSize  int
	PageToken string
}

// Source - interface to the external places search API.
type Source interface {
	SearchNearby(q NearbyQuery) ([]Place, error)
	SearchText(q TextQuery) ([]Place, string, error)
	Details(placeID string) (*Place, error)
}

type client struct {
	apiKey     string
	url        string
	language   string
	region     string
	httpClient *http.Client
}

// New - new places Source. An empty url falls back to the production
// endpoint; tests point it at a local server.
func New(apiKey, apiURL string) Source {
	u := defaultURL
	if apiURL != "" {
		u = apiURL
	}

	return &client{
		apiKey:   apiKey,
		url:      u,
		language: "en",
		region:   "us",
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}
}

type searchNearbyRequest struct {
	LocationRestriction struct {
		Circle struct {
			Center LatLng  `json:"center"`
			Radius float64 `json:"radius"`
		} `json:"circle"`
	} `json:"locationRestriction"`
	RankPreference RankPreference `json:"rankPreference,omitempty"`
	IncludedTypes  []string       `json:"includedTypes,omitempty"`
	MaxResultCount int            `json:"maxResultCount,omitempty"`
	LanguageCode   string         `json:"languageCode,omitempty"`
	RegionCode     string         `json:"regionCode,omitempty"`
}

type searchTextRequest struct {
	TextQuery    string `json:"textQuery"`
	PageSize     int    `json:"pageSize,omitempty"`
	PageToken    string `json:"pageToken,omitempty"`
	LanguageCode string `json:"languageCode,omitempty"`
	RegionCode   string `json:"regionCode,omitempty"`
}

type searchResponse struct {
	Places        []Place `json:"places"`
	NextPageToken string  `json:"nextPageToken"`
}

func (c *client) SearchNearby(q NearbyQuery) ([]Place, error) {
	body := searchNearbyRequest{
		RankPreference: q.Rank,
		IncludedTypes:  q.IncludedTypes,
		MaxResultCount: q.MaxResults,
		LanguageCode:   c.language,
		RegionCode:     c.region,
	}
	body.LocationRestriction.Circle.Center = q.Center
	body.LocationRestriction.Circle.Radius = q.RadiusMeters

	var resp searchResponse
	if err := c.post("/v1/places:searchNearby", SearchFieldMask, body, &resp); err != nil {
		return nil, err
	}
	return resp.Places, nil
}

func (c *client) SearchText(q TextQuery) ([]Place, string, error) {
	body := searchTextRequest{
		TextQuery:    q.Query,
		PageSize:     q.PageSize,
		PageToken:    q.PageToken,
		LanguageCode: c.language,
		RegionCode:   c.region,
	}

	var resp searchResponse
	if err := c.post("/v1/places:searchText", SearchFieldMask, body, &resp); err != nil {
		return nil, "", err
	}
	return resp.Places, resp.NextPageToken, nil
}

func (c *client) Details(placeID string) (*Place, error) {
	if c.apiKey == "" {
		return nil, ErrEmptyAPIKey
	}

	query := fmt.Sprintf("%s/v1/places/%s?languageCode=%s&regionCode=%s",
		c.url, url.PathEscape(placeID), c.language, c.region)
	req, err := http.NewRequest("GET", query, nil)
	if err != nil {
		return nil, err
	}
	c.setHeaders(req, DetailFieldMask)

	var place Place
	if err := c.do(req, &place); err != nil {
		return nil, err
	}
	return &place, nil
}

func (c *client) post(path, fieldMask string, body interface{}, out interface{}) error {
	if c.apiKey == "" {
		return ErrEmptyAPIKey
	}

	b, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequest("POST", c.url+path, bytes.NewReader(b))
	if err != nil {
		return err
	}
	c.setHeaders(req, fieldMask)

	return c.do(req, out)
}

func (c *client) setHeaders(req *http.Request, fieldMask string) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Goog-Api-Key", c.apiKey)
	req.Header.Set("X-Goog-FieldMask", fieldMask)
}

func (c *client) do(req *http.Request, out interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	d, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode != http.StatusOK {
		var apiError struct {
			Error struct {
				Message string `json:"message"`
				Status  string `json:"status"`
			} `json:"error"`
		}
		if err := json.Unmarshal(d, &apiError); err == nil && apiError.Error.Message != "" {
			return fmt.Errorf("places api: %s (%s)", apiError.Error.Message, apiError.Error.Status)
		}
		return fmt.Errorf("places api: unexpected status %d", resp.StatusCode)
	}

	return json.Unmarshal(d, out)
}
