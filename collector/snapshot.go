package collector

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"path"
	"time"

	"github.com/dermatlas/dermatlas-api/consts"
	"github.com/dermatlas/dermatlas-api/schema"
)

// WriteSnapshot writes the flat per-state artifact file for one collected
// state, creating the snapshot directory if needed.
func WriteSnapshot(dir, stateCode string, clinics []schema.Clinic) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	snapshot := schema.StateSnapshot{
		State:     consts.USStateName[stateCode],
		StateCode: stateCode,
		Total:     len(clinics),
		UpdatedAt: time.Now().UTC().Format(time.RFC3339),
		Clinics:   clinics,
	}

	b, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return err
	}

	return ioutil.WriteFile(path.Join(dir, stateCode+".json"), b, 0644)
}

// ReadSnapshot reads one per-state artifact file back.
func ReadSnapshot(dir, stateCode string) (*schema.StateSnapshot, error) {
	b, err := ioutil.ReadFile(path.Join(dir, stateCode+".json"))
	if err != nil {
		return nil, err
	}

	var snapshot schema.StateSnapshot
	if err := json.Unmarshal(b, &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}
