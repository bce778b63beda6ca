package classify

import (
	"strings"

	"github.com/dermatlas/dermatlas-api/consts"
)

// Reason classifies why a candidate was rejected, for run reporting.
type Reason string

const (
	ReasonNonUS          Reason = "non_us"
	ReasonNonDermatology Reason = "non_dermatology"
)

// Decision is the outcome of classifying one candidate place.
type Decision struct {
	Accepted bool
	Reason   Reason
}

// Candidate carries the fields of a raw place record the classifier looks
// at. CountryCode and StateCode come from address parsing (with geocoding
// fallback when components are missing).
type Candidate struct {
	Name        string
	Website     string
	Types       []string
	CountryCode string
	StateCode   string
}

// Hard exclusions checked before any acceptance tier. A single hit rejects
// the candidate outright.
var exclusionTerms = []string{
	"dental",
	"dentist",
	"orthodont",
	"veterinary",
	"animal",
	"pet",
	"massage",
	"spa resort",
	"nail salon",
	"hair salon",
	"tattoo",
}

var coreTerms = []string{
	"dermatology",
	"dermatologist",
	"dermatologic",
}

// Terms matched against name/website only; broad enough that tag text alone
// is not trusted for them.
var relatedTerms = []string{
	"skin clinic",
	"skin center",
	"skin centre",
	"skin institute",
	"skin cancer",
	"skin health",
	"mohs surgery",
}

// Clinic decides whether a candidate place is a US dermatology clinic.
// Tiers are evaluated in strict order; the first match wins. Precision comes
// from the early hard exclusions, the loosest tier additionally requires
// medical context.
func Clinic(c Candidate) Decision {
	if (c.CountryCode != "" && c.CountryCode != "US") || !consts.ValidStateCode(c.StateCode) {
		return Decision{Accepted: false, Reason: ReasonNonUS}
	}

	name := strings.ToLower(c.Name)
	website := strings.ToLower(c.Website)
	tags := strings.ToLower(strings.Join(c.Types, " "))
	combined := name + " " + website + " " + tags
	nameOrSite := name + " " + website

	for _, term := range exclusionTerms {
		if strings.Contains(combined, term) {
			return Decision{Accepted: false, Reason: ReasonNonDermatology}
		}
	}

	for _, t := range c.Types {
		if t == "skin_care_clinic" {
			return Decision{Accepted: true}
		}
	}

	for _, term := range coreTerms {
		if strings.Contains(combined, term) {
			return Decision{Accepted: true}
		}
	}

	for _, term := range relatedTerms {
		if strings.Contains(nameOrSite, term) {
			return Decision{Accepted: true}
		}
	}

	if strings.Contains(combined, "derm") || strings.Contains(nameOrSite, "skin") {
		if hasMedicalContext(c.Types, combined) {
			return Decision{Accepted: true}
		}
	}

	return Decision{Accepted: false, Reason: ReasonNonDermatology}
}

func hasMedicalContext(types []string, combined string) bool {
	for _, t := range types {
		if strings.Contains(t, "doctor") || strings.Contains(t, "health") {
			return true
		}
	}
	return strings.Contains(combined, "medical") || strings.Contains(combined, "clinic")
}
