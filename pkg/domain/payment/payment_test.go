package payment

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestValidate_SplitMustSumToTotal(t *testing.T) {
	p := &Payment{
		SessionID:      uuid.New(),
		CashAmount:     40,
		CardAmount:     50,
		OnlineAmount:   30,
		TotalAmount:    120,
		ComputedAmount: 120,
	}
	assert.NoError(t, p.Validate())

	p.CardAmount = 49
	assert.Error(t, p.Validate())

	// Sub-cent drift from float arithmetic is tolerated.
	p.CardAmount = 50.004
	assert.NoError(t, p.Validate())
}

func TestValidate_RejectsNegativeAmounts(t *testing.T) {
	p := &Payment{
		SessionID:      uuid.New(),
		CashAmount:     -10,
		CardAmount:     130,
		TotalAmount:    120,
		ComputedAmount: 120,
	}
	assert.Error(t, p.Validate())
}

func TestIsOverride(t *testing.T) {
	p := &Payment{TotalAmount: 120, ComputedAmount: 120}
	assert.False(t, p.IsOverride())

	p.TotalAmount = 100
	assert.True(t, p.IsOverride())
}
