package schema

// StateSnapshot is the flat per-state artifact written by a collection run
// before anything is loaded into mongodb. One file per state code.
type StateSnapshot struct {
	State     string   `json:"state"`
	StateCode string   `json:"state_code"`
	Total     int      `json:"total"`
	UpdatedAt string   `json:"updated_at"`
	Clinics   []Clinic `json:"clinics"`
}
