package schema

const (
	ClinicCollection = "clinics"
)

// Business operating status values as reported by the places source.
const (
	BusinessStatusOperational       = "OPERATIONAL"
	BusinessStatusClosedTemporarily = "CLOSED_TEMPORARILY"
	BusinessStatusClosedPermanently = "CLOSED_PERMANENTLY"
)

type GeoJSON struct {
	Type        string    `bson:"type" json:"type"`
	Coordinates []float64 `bson:"coordinates" json:"coordinates"`
}

// DayHours is a single day→text pair of the weekly opening hours.
type DayHours struct {
	Day   string `bson:"day" json:"day"`
	Hours string `bson:"hours" json:"hours"`
}

// AccessibilityOptions - optional capability flags; an absent group (nil
// pointer) means no information, which is distinct from all-false flags.
type AccessibilityOptions struct {
	WheelchairAccessibleEntrance *bool `bson:"wheelchair_accessible_entrance,omitempty" json:"wheelchair_accessible_entrance,omitempty"`
	WheelchairAccessibleParking  *bool `bson:"wheelchair_accessible_parking,omitempty" json:"wheelchair_accessible_parking,omitempty"`
	WheelchairAccessibleRestroom *bool `bson:"wheelchair_accessible_restroom,omitempty" json:"wheelchair_accessible_restroom,omitempty"`
	WheelchairAccessibleSeating  *bool `bson:"wheelchair_accessible_seating,omitempty" json:"wheelchair_accessible_seating,omitempty"`
}

type PaymentOptions struct {
	AcceptsCreditCards *bool `bson:"accepts_credit_cards,omitempty" json:"accepts_credit_cards,omitempty"`
	AcceptsDebitCards  *bool `bson:"accepts_debit_cards,omitempty" json:"accepts_debit_cards,omitempty"`
	AcceptsCashOnly    *bool `bson:"accepts_cash_only,omitempty" json:"accepts_cash_only,omitempty"`
	AcceptsNFC         *bool `bson:"accepts_nfc,omitempty" json:"accepts_nfc,omitempty"`
}

type ParkingOptions struct {
	FreeParkingLot    *bool `bson:"free_parking_lot,omitempty" json:"free_parking_lot,omitempty"`
	PaidParkingLot    *bool `bson:"paid_parking_lot,omitempty" json:"paid_parking_lot,omitempty"`
	FreeStreetParking *bool `bson:"free_street_parking,omitempty" json:"free_street_parking,omitempty"`
	ValetParking      *bool `bson:"valet_parking,omitempty" json:"valet_parking,omitempty"`
	FreeGarageParking *bool `bson:"free_garage_parking,omitempty" json:"free_garage_parking,omitempty"`
}

// Clinic is the normalized clinic record, the canonical unit of the
// directory. It is keyed by the place ID assigned by the external source;
// IDs are never generated locally.
type Clinic struct {
	PlaceID          string                `bson:"place_id" json:"place_id"`
	Name             string                `bson:"name" json:"name"`
	FormattedAddress string                `bson:"formatted_address" json:"formatted_address"`
	City             string                `bson:"city" json:"city"`
	StateCode        string                `bson:"state_code" json:"state_code"`
	PostalCode       string                `bson:"postal_code" json:"postal_code"`
	PrimaryType      string                `bson:"primary_type" json:"primary_type"`
	Types            []string              `bson:"types" json:"types"`
	Location         *GeoJSON              `bson:"location" json:"location"`
	Rating           *float64              `bson:"rating,omitempty" json:"rating,omitempty"`
	RatingCount      *int                  `bson:"rating_count,omitempty" json:"rating_count,omitempty"`
	Phone            string                `bson:"phone" json:"phone"`
	Website          string                `bson:"website" json:"website"`
	MapsURL          string                `bson:"maps_url" json:"maps_url"`
	BusinessStatus   string                `bson:"business_status" json:"business_status"`
	OpenNow          *bool                 `bson:"open_now,omitempty" json:"open_now,omitempty"`
	OpeningHours     []DayHours            `bson:"opening_hours,omitempty" json:"opening_hours,omitempty"`
	Accessibility    *AccessibilityOptions `bson:"accessibility,omitempty" json:"accessibility,omitempty"`
	Payment          *PaymentOptions       `bson:"payment,omitempty" json:"payment,omitempty"`
	Parking          *ParkingOptions       `bson:"parking,omitempty" json:"parking,omitempty"`
	Featured         bool                  `bson:"featured" json:"featured"`
	LastFetchedAt    string                `bson:"last_fetched_at" json:"last_fetched_at"`

	// Distance from a query point in km, attached during a location search.
	// Never persisted.
	Distance *float64 `bson:"-" json:"distance,omitempty"`
}

// Latitude returns the latitude of the clinic location.
func (c *Clinic) Latitude() float64 {
	if c.Location == nil || len(c.Location.Coordinates) != 2 {
		return 0
	}
	return c.Location.Coordinates[1]
}

// Longitude returns the longitude of the clinic location.
func (c *Clinic) Longitude() float64 {
	if c.Location == nil || len(c.Location.Coordinates) != 2 {
		return 0
	}
	return c.Location.Coordinates[0]
}

// StateCount is one row of the per-state stats aggregation.
type StateCount struct {
	StateCode string `bson:"_id" json:"state_code"`
	Count     int64  `bson:"count" json:"count"`
}
