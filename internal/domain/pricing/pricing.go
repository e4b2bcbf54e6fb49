// Package pricing computes rental prices for the reservation flow.
//
// Everything here is a pure function of its inputs so the wizard can
// recompute displayed prices on every change instead of caching them.
package pricing

import (
	"math"
	"time"
)

// Tier maps a day-count lower bound to a discount percentage. Tiers apply
// from MinDays (inclusive) up to the next tier's MinDays (exclusive).
type Tier struct {
	MinDays int `json:"min_days"`
	Percent int `json:"percent"`
}

// Tiers is the discount ladder, ordered by MinDays. The date step renders it
// as-is, so keep it exported.
var Tiers = []Tier{
	{MinDays: 0, Percent: 0},
	{MinDays: 4, Percent: 5},
	{MinDays: 7, Percent: 10},
	{MinDays: 14, Percent: 15},
	{MinDays: 21, Percent: 20},
	{MinDays: 30, Percent: 25},
}

// Result is the price breakdown for one rental. Deposit is a separate,
// fully refundable line item and is never part of Total.
type Result struct {
	BoxSubtotal     float64 `json:"box_subtotal"`
	HolderSubtotal  float64 `json:"holder_subtotal"`
	DiscountPercent int     `json:"discount_percent"`
	DiscountAmount  float64 `json:"discount_amount"`
	Total           float64 `json:"total"`
	Deposit         float64 `json:"deposit"`
}

// Nudge tells the UI how many more rental days unlock the next discount tier.
type Nudge struct {
	DaysUntilNext int `json:"days_until_next"`
	NextPercent   int `json:"next_percent"`
}

// DiscountPercent returns the discount tier for the given rental length.
func DiscountPercent(days int) int {
	percent := 0
	for _, t := range Tiers {
		if days >= t.MinDays {
			percent = t.Percent
		}
	}
	return percent
}

// Calculate computes the price breakdown from per-day rates and a rental
// length. Nil rates mean the corresponding component is not rented; when
// both are nil the result is all zeros apart from the deposit pass-through.
func Calculate(boxPerDay, holderPerDay *float64, days int, deposit *float64) Result {
	res := Result{}
	if deposit != nil {
		res.Deposit = *deposit
	}
	if boxPerDay == nil && holderPerDay == nil {
		return res
	}
	if days <= 0 {
		return res
	}

	basePerDay := deref(boxPerDay) + deref(holderPerDay)
	res.DiscountPercent = DiscountPercent(days)

	gross := float64(days) * basePerDay
	res.DiscountAmount = round2(gross * float64(res.DiscountPercent) / 100)
	res.Total = round2(gross - gross*float64(res.DiscountPercent)/100)

	if deref(boxPerDay) != 0 {
		res.BoxSubtotal = float64(days) * deref(boxPerDay)
	}
	if deref(holderPerDay) != 0 {
		res.HolderSubtotal = float64(days) * deref(holderPerDay)
	}
	return res
}

// DiscountNudge returns the distance to the next discount tier, or nil when
// there is nothing to nudge toward (no rental yet, or already at the top).
func DiscountNudge(days int) *Nudge {
	if days <= 0 {
		return nil
	}
	for _, t := range Tiers[1:] {
		if days < t.MinDays {
			return &Nudge{DaysUntilNext: t.MinDays - days, NextPercent: t.Percent}
		}
	}
	return nil
}

// FormatDaysWord returns the Slovenian word for "day" agreeing with n.
// Slovenian has singular, dual and two plural forms.
func FormatDaysWord(n int) string {
	switch {
	case n == 1:
		return "dan"
	case n == 2:
		return "dneva"
	case n == 3 || n == 4:
		return "dnevi"
	default:
		return "dni"
	}
}

// RentalDays returns the whole-day length of a rental, rounding partial days
// up. Zero when either date is missing or the range is not positive.
func RentalDays(start, end time.Time) int {
	if start.IsZero() || end.IsZero() {
		return 0
	}
	diff := end.Sub(start)
	if diff <= 0 {
		return 0
	}
	return int(math.Ceil(diff.Hours() / 24))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
