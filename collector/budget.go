package collector

import "fmt"

// ErrBudgetExceeded is the hard stop of a collection run. It propagates
// through every call site and halts all remaining work; it is never retried.
var ErrBudgetExceeded = fmt.Errorf("request budget exceeded")

// Budget is the shared request ceiling of one collection run. It is owned by
// the runner and threaded through every outbound call; it is not ambient
// global state.
type Budget struct {
	limit int
	used  int
}

// NewBudget returns a budget allowing up to limit requests. A non-positive
// limit means unlimited.
func NewBudget(limit int) *Budget {
	return &Budget{limit: limit}
}

// Spend consumes one request from the budget, failing fast once the ceiling
// is reached.
func (b *Budget) Spend() error {
	if b.limit > 0 && b.used >= b.limit {
		return ErrBudgetExceeded
	}
	b.used++
	return nil
}

// Used returns how many requests have been spent so far.
func (b *Budget) Used() int {
	return b.used
}
