package collector

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBudgetSpend(t *testing.T) {
	b := NewBudget(2)
	assert.Nil(t, b.Spend(), "first spend should pass")
	assert.Nil(t, b.Spend(), "second spend should pass")
	assert.Equal(t, ErrBudgetExceeded, b.Spend(), "spend over ceiling should fail")
	assert.Equal(t, ErrBudgetExceeded, b.Spend(), "budget error is not retryable")
	assert.Equal(t, 2, b.Used(), "wrong used count")
}

func TestBudgetUnlimited(t *testing.T) {
	b := NewBudget(0)
	for i := 0; i < 1000; i++ {
		assert.Nil(t, b.Spend(), "unlimited budget should never fail")
	}
	assert.Equal(t, 1000, b.Used(), "wrong used count")
}
