package consts

import (
	"fmt"
	"sort"
	"strings"
)

// USStateName maps a two-letter state code to its full name. DC is included
// since the directory treats it as a state-level region.
var USStateName map[string]string

func init() {
	USStateName = make(map[string]string)

	USStateName["AL"] = "Alabama"
	USStateName["AK"] = "Alaska"
	USStateName["AZ"] = "Arizona"
	USStateName["AR"] = "Arkansas"
	USStateName["CA"] = "California"
	USStateName["CO"] = "Colorado"
	USStateName["CT"] = "Connecticut"
	USStateName["DE"] = "Delaware"
	USStateName["DC"] = "District of Columbia"
	USStateName["FL"] = "Florida"
	USStateName["GA"] = "Georgia"
	USStateName["HI"] = "Hawaii"
	USStateName["ID"] = "Idaho"
	USStateName["IL"] = "Illinois"
	USStateName["IN"] = "Indiana"
	USStateName["IA"] = "Iowa"
	USStateName["KS"] = "Kansas"
	USStateName["KY"] = "Kentucky"
	USStateName["LA"] = "Louisiana"
	USStateName["ME"] = "Maine"
	USStateName["MD"] = "Maryland"
	USStateName["MA"] = "Massachusetts"
	USStateName["MI"] = "Michigan"
	USStateName["MN"] = "Minnesota"
	USStateName["MS"] = "Mississippi"
	USStateName["MO"] = "Missouri"
	USStateName["MT"] = "Montana"
	USStateName["NE"] = "Nebraska"
	USStateName["NV"] = "Nevada"
	USStateName["NH"] = "New Hampshire"
	USStateName["NJ"] = "New Jersey"
	USStateName["NM"] = "New Mexico"
	USStateName["NY"] = "New York"
	USStateName["NC"] = "North Carolina"
	USStateName["ND"] = "North Dakota"
	USStateName["OH"] = "Ohio"
	USStateName["OK"] = "Oklahoma"
	USStateName["OR"] = "Oregon"
	USStateName["PA"] = "Pennsylvania"
	USStateName["RI"] = "Rhode Island"
	USStateName["SC"] = "South Carolina"
	USStateName["SD"] = "South Dakota"
	USStateName["TN"] = "Tennessee"
	USStateName["TX"] = "Texas"
	USStateName["UT"] = "Utah"
	USStateName["VT"] = "Vermont"
	USStateName["VA"] = "Virginia"
	USStateName["WA"] = "Washington"
	USStateName["WV"] = "West Virginia"
	USStateName["WI"] = "Wisconsin"
	USStateName["WY"] = "Wyoming"
}

// ValidStateCode reports whether code is one of the 50 states or DC.
func ValidStateCode(code string) bool {
	_, ok := USStateName[code]
	return ok
}

// AllStateCodes returns every state code in sorted order.
func AllStateCodes() []string {
	codes := make([]string, 0, len(USStateName))
	for code := range USStateName {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// ParseStateSelection parses a command line state selection: either the
// literal "all" or a comma-separated list of state codes.
func ParseStateSelection(selection string) ([]string, error) {
	selection = strings.TrimSpace(selection)
	if strings.EqualFold(selection, "all") {
		return AllStateCodes(), nil
	}

	codes := []string{}
	for _, part := range strings.Split(selection, ",") {
		code := strings.ToUpper(strings.TrimSpace(part))
		if code == "" {
			continue
		}
		if !ValidStateCode(code) {
			return nil, fmt.Errorf("%s is not a US state code", code)
		}
		codes = append(codes, code)
	}
	if len(codes) == 0 {
		return nil, fmt.Errorf("empty state selection")
	}
	return codes, nil
}
