package promotion

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestActiveAt(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	before := now.AddDate(0, 0, -7)
	after := now.AddDate(0, 0, 7)

	p := &Promotion{Name: "weekday", FirstHourPrice: 20, ExtraHourPrice: 10, IsActive: true}
	assert.True(t, p.ActiveAt(now), "no window means always valid while active")

	p.IsActive = false
	assert.False(t, p.ActiveAt(now))

	p.IsActive = true
	p.StartDate = &before
	p.EndDate = &after
	assert.True(t, p.ActiveAt(now))
	assert.False(t, p.ActiveAt(before.AddDate(0, 0, -1)))
	assert.False(t, p.ActiveAt(after.AddDate(0, 0, 1)))
}

func TestValidate(t *testing.T) {
	p := &Promotion{Name: "happy hour", FirstHourPrice: 15, ExtraHourPrice: 15, IsActive: true}
	assert.NoError(t, p.Validate())

	p.FirstHourPrice = -1
	assert.Error(t, p.Validate())

	p.FirstHourPrice = 15
	p.Name = ""
	assert.Error(t, p.Validate())

	p.Name = "happy hour"
	start := time.Now()
	end := start.Add(-time.Hour)
	p.StartDate = &start
	p.EndDate = &end
	assert.Error(t, p.Validate())
}

func TestSchedule(t *testing.T) {
	p := &Promotion{FirstHourPrice: 22.5, ExtraHourPrice: 12}
	s := p.Schedule()
	assert.Equal(t, 22.5, s.FirstHourPrice)
	assert.Equal(t, 12.0, s.ExtraHourPrice)
}
