package usecase

import (
	"fmt"
	"time"

	"truga_booking/internal/domain/entities"
	"truga_booking/internal/domain/pricing"
)

var sloveneMonths = [...]string{
	"januar", "februar", "marec", "april", "maj", "junij",
	"julij", "avgust", "september", "oktober", "november", "december",
}

// formatLongDate renders a date the way the site shows it to Slovenian
// customers, e.g. "2. julij 2026".
func formatLongDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return fmt.Sprintf("%d. %s %d", t.Day(), sloveneMonths[t.Month()-1], t.Year())
}

// buildInquiryPayload flattens the draft into the payload handed to the
// email gateway. box is nil when no catalog entry could be resolved; the
// payload then carries no price block. The payload is rebuilt from scratch
// on every submit attempt so retries never reuse stale values.
func buildInquiryPayload(d entities.ReservationDraft, box *entities.RoofBox) entities.InquiryPayload {
	days := pricing.RentalDays(d.StartDate, d.EndDate)

	p := entities.InquiryPayload{
		StartDateFormatted: formatLongDate(d.StartDate),
		EndDateFormatted:   formatLongDate(d.EndDate),
		DayCount:           days,
		ContactName:        d.Name,
		ContactEmail:       d.Email,
		ContactPhone:       d.Phone,
		VehicleDescription: d.VehicleDescription,
		Notes:              d.Notes,
	}

	if d.RoofType != "" {
		rt := string(d.RoofType)
		p.RoofType = &rt
		if d.RoofType == entities.RoofTypeOther && d.RoofTypeOtherText != "" {
			other := d.RoofTypeOtherText
			p.RoofTypeOtherDescription = &other
		}
	}

	if box != nil {
		title, size := box.Title, box.Size
		rate, deposit := box.PricePerDay, box.Deposit
		p.BoxTitle = &title
		p.BoxSize = &size
		p.PricePerDay = &rate
		p.DepositAmount = &deposit

		if days > 0 {
			res := pricing.Calculate(&rate, nil, days, &deposit)
			p.EstimatedTotal = &res.Total
			p.DiscountPercent = res.DiscountPercent
		}
	}

	return p
}
