package entities

// InquiryPayload is the flattened reservation inquiry handed to the email
// gateway on final submission.
//
// Pointer fields carry the "no box selected" case through to the email,
// which renders a "needs advice" line instead of a price block. All string
// values are raw; the gateway escapes them before any HTML rendering.
type InquiryPayload struct {
	BoxTitle                 *string  `json:"box_title"`
	BoxSize                  *string  `json:"box_size"`
	PricePerDay              *float64 `json:"price_per_day"`
	RoofType                 *string  `json:"roof_type"`
	RoofTypeOtherDescription *string  `json:"roof_type_other_description"`
	StartDateFormatted       string   `json:"start_date_formatted"`
	EndDateFormatted         string   `json:"end_date_formatted"`
	DayCount                 int      `json:"day_count"`

	ContactName        string `json:"contact_name"`
	ContactEmail       string `json:"contact_email"`
	ContactPhone       string `json:"contact_phone"`
	VehicleDescription string `json:"vehicle_description"`
	Notes              string `json:"notes"`

	EstimatedTotal  *float64 `json:"estimated_total"`
	DiscountPercent int      `json:"discount_percent"`
	DepositAmount   *float64 `json:"deposit_amount"`
}
