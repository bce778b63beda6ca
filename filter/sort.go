package filter

import (
	"sort"
	"strings"

	"github.com/dermatlas/dermatlas-api/schema"
)

// Sort keys and orders accepted by SortBy.
const (
	SortByRating  = "rating"
	SortByReviews = "reviews"
	SortByName    = "name"

	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// SortBy returns a copy of the list sorted by the requested key and order.
// The sort is stable: clinics with equal keys keep their original relative
// order. Unknown keys return an unsorted copy.
func SortBy(clinics []schema.Clinic, by, order string) []schema.Clinic {
	result := append([]schema.Clinic{}, clinics...)

	var less func(i, j int) bool
	switch by {
	case SortByRating:
		less = func(i, j int) bool {
			return ratingOf(&result[i]) < ratingOf(&result[j])
		}
	case SortByReviews:
		less = func(i, j int) bool {
			return reviewsOf(&result[i]) < reviewsOf(&result[j])
		}
	case SortByName:
		less = func(i, j int) bool {
			return strings.ToLower(result[i].Name) < strings.ToLower(result[j].Name)
		}
	default:
		return result
	}

	if order == OrderDesc {
		asc := less
		less = func(i, j int) bool {
			return asc(j, i)
		}
	}

	sort.SliceStable(result, less)
	return result
}

// Unrated records sort below every rated one.
func ratingOf(c *schema.Clinic) float64 {
	if c.Rating == nil {
		return -1
	}
	return *c.Rating
}

func reviewsOf(c *schema.Clinic) int {
	if c.RatingCount == nil {
		return -1
	}
	return *c.RatingCount
}
