package billing

import (
	"fmt"
	"math"
	"time"
)

const (
	gracePeriod    = 30 * time.Minute
	firstHourSpan  = 90 * time.Minute
	extraHourCycle = time.Hour
)

// Quote is the result of evaluating a session against a price schedule at a
// single instant. It is recomputed on every tick by the caller; the engine
// holds no state between calls.
type Quote struct {
	CurrentCost      float64 `json:"current_cost"`
	PerPersonCost    float64 `json:"per_person_cost"`
	HoursBillable    float64 `json:"hours_billable"`
	ExtraHours       int     `json:"extra_hours"`
	Breakdown        string  `json:"breakdown"`
	NextChargeAmount float64 `json:"next_charge_amount"`
	NextChargeInMs   int64   `json:"next_charge_in_ms"`
	ProgressPercent  float64 `json:"progress_percent"`
}

// Compute evaluates the tiered charge for a session that started at start,
// as of now, for capacity people. The schedule is applied per person:
//
//	< 30 min            free
//	30 min – 90 min     FirstHourPrice
//	>= 90 min           FirstHourPrice + one ExtraHourPrice per started hour past 90
//
// Every call site that shows or persists a session amount must go through
// this function. It never returns an error: negative prices and capacity are
// clamped to zero, and a now before start is treated as zero elapsed.
func Compute(start, now time.Time, capacity int, sched PriceSchedule) Quote {
	sched = sched.clamped()
	if capacity < 0 {
		capacity = 0
	}

	elapsed := now.Sub(start)
	if elapsed < 0 {
		elapsed = 0
	}

	perPerson, extraHours, breakdown := perPersonCharge(elapsed, sched)
	nextIn, nextAmount := nextCharge(elapsed, sched)

	return Quote{
		CurrentCost:      round2(perPerson * float64(capacity)),
		PerPersonCost:    round2(perPerson),
		HoursBillable:    round2(elapsed.Minutes() / 60),
		ExtraHours:       extraHours,
		Breakdown:        breakdown,
		NextChargeAmount: nextAmount,
		NextChargeInMs:   nextIn.Milliseconds(),
		ProgressPercent:  progressPercent(elapsed),
	}
}

func perPersonCharge(elapsed time.Duration, sched PriceSchedule) (charge float64, extraHours int, breakdown string) {
	switch {
	case elapsed < gracePeriod:
		return 0, 0, fmt.Sprintf("grace period (%d of 30 min free)", int(elapsed.Minutes()))
	case elapsed < firstHourSpan:
		return sched.FirstHourPrice, 0, fmt.Sprintf("first hour %.2f/person", sched.FirstHourPrice)
	default:
		extraHours = int((elapsed-firstHourSpan)/extraHourCycle) + 1
		charge = sched.FirstHourPrice + float64(extraHours)*sched.ExtraHourPrice
		breakdown = fmt.Sprintf("first hour %.2f + %d extra hour(s) x %.2f/person",
			sched.FirstHourPrice, extraHours, sched.ExtraHourPrice)
		return charge, extraHours, breakdown
	}
}

func nextCharge(elapsed time.Duration, sched PriceSchedule) (time.Duration, float64) {
	switch {
	case elapsed < gracePeriod:
		return gracePeriod - elapsed, sched.FirstHourPrice
	case elapsed < firstHourSpan:
		return firstHourSpan - elapsed, sched.ExtraHourPrice
	default:
		return extraHourCycle - (elapsed-firstHourSpan)%extraHourCycle, sched.ExtraHourPrice
	}
}

// progressPercent reports how far the session is through its current charging
// interval: the 30-minute grace window at first, then each rolling hour.
func progressPercent(elapsed time.Duration) float64 {
	minutes := elapsed.Minutes()
	var pct float64
	if elapsed < gracePeriod {
		pct = minutes / 30 * 100
	} else {
		pct = math.Mod(minutes, 60) / 60 * 100
	}
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
