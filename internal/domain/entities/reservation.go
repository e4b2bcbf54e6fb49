package entities

import (
	"strings"
	"time"
)

// RoofType classifies the customer's vehicle roof so the right mounting
// hardware can be prepared.
type RoofType string

const (
	RoofTypeNakedRoof   RoofType = "naked-roof"
	RoofTypeFlushRails  RoofType = "flush-rails"
	RoofTypeRaisedRails RoofType = "raised-rails"
	RoofTypeFixedPoints RoofType = "fixed-points"
	RoofTypeUnsure      RoofType = "unsure"
	RoofTypeOther       RoofType = "other"
)

var roofTypeLabels = map[RoofType]string{
	RoofTypeNakedRoof:   "Navadna streha",
	RoofTypeFlushRails:  "Poravnane letve",
	RoofTypeRaisedRails: "Dvignjene letve",
	RoofTypeFixedPoints: "Fiksne točke",
	RoofTypeUnsure:      "Ne vem",
	RoofTypeOther:       "Drugo",
}

// IsValid reports whether r is one of the known roof type choices.
func (r RoofType) IsValid() bool {
	_, ok := roofTypeLabels[r]
	return ok
}

// Label returns the customer-facing Slovenian label, falling back to the raw
// value for unknown inputs.
func (r RoofType) Label() string {
	if l, ok := roofTypeLabels[r]; ok {
		return l
	}
	return string(r)
}

// ContactField names one mutable contact/vehicle field of the draft.
type ContactField string

const (
	FieldName               ContactField = "name"
	FieldEmail              ContactField = "email"
	FieldPhone              ContactField = "phone"
	FieldVehicleDescription ContactField = "vehicle_description"
	FieldNotes              ContactField = "notes"
)

// IsValid reports whether f names a known contact field.
func (f ContactField) IsValid() bool {
	switch f {
	case FieldName, FieldEmail, FieldPhone, FieldVehicleDescription, FieldNotes:
		return true
	}
	return false
}

// ReservationDraft is the in-progress, not-yet-submitted reservation owned by
// a single open wizard session.
//
// Unset markers:
//   - SelectedBoxID nil means no box chosen yet
//   - RoofType ""   means no roof type chosen yet
//   - StartDate/EndDate zero mean no dates chosen yet; outside the date step
//     the two are either both set or both zero
type ReservationDraft struct {
	SelectedBoxID     *int      `json:"selected_box_id"`
	RoofType          RoofType  `json:"roof_type"`
	RoofTypeOtherText string    `json:"roof_type_other_text"`
	StartDate         time.Time `json:"start_date"`
	EndDate           time.Time `json:"end_date"`

	Name               string `json:"name"`
	Email              string `json:"email"`
	Phone              string `json:"phone"`
	VehicleDescription string `json:"vehicle_description"`
	Notes              string `json:"notes"`
}

// HasDates reports whether both rental dates are committed.
func (d ReservationDraft) HasDates() bool {
	return !d.StartDate.IsZero() && !d.EndDate.IsZero()
}

// SetContactField writes value into the field named by f. Unknown fields are
// ignored; callers validate f beforehand.
func (d *ReservationDraft) SetContactField(f ContactField, value string) {
	switch f {
	case FieldName:
		d.Name = value
	case FieldEmail:
		d.Email = value
	case FieldPhone:
		d.Phone = value
	case FieldVehicleDescription:
		d.VehicleDescription = value
	case FieldNotes:
		d.Notes = value
	}
}

// ContactComplete reports whether the four required contact fields are
// non-blank. Notes stay optional.
func (d ReservationDraft) ContactComplete() bool {
	return strings.TrimSpace(d.Name) != "" &&
		strings.TrimSpace(d.Email) != "" &&
		strings.TrimSpace(d.Phone) != "" &&
		strings.TrimSpace(d.VehicleDescription) != ""
}
