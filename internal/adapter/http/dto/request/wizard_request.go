package request

import (
	"errors"
	"strings"
	"time"

	"truga_booking/internal/domain/entities"
	"truga_booking/internal/domain/wizard"
)

const dateLayout = "2006-01-02"

var (
	ErrUnknownActionType = errors.New("unknown action type")
	ErrMissingDate       = errors.New("start_date and end_date are required")
	ErrMalformedDate     = errors.New("dates must use the YYYY-MM-DD format")
)

// OpenSessionRequest opens a wizard session, optionally seeded with a box
// from a product page deep link.
type OpenSessionRequest struct {
	BoxID *int `json:"box_id"`
}

// WizardActionRequest is the wire form of a single wizard action. Only the
// fields relevant to Type are read; the rest stay at their zero values.
type WizardActionRequest struct {
	Type      string `json:"type" binding:"required"`
	BoxID     *int   `json:"box_id"`
	RoofType  string `json:"roof_type"`
	Text      string `json:"text"`
	Field     string `json:"field"`
	Value     string `json:"value"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Step      int    `json:"step"`
	Preselect *int   `json:"preselect"`
}

// ToAction translates the wire payload into a domain action. Semantic
// validation (roof type values, step gates) stays in the reducer; this only
// rejects payloads the reducer cannot even represent.
func (r WizardActionRequest) ToAction() (wizard.Action, error) {
	t := wizard.ActionType(strings.TrimSpace(r.Type))
	a := wizard.Action{Type: t}

	switch t {
	case wizard.ActionSelectBox:
		a.BoxID = r.BoxID
	case wizard.ActionSetRoofType:
		a.RoofType = entities.RoofType(r.RoofType)
	case wizard.ActionSetRoofTypeOtherText:
		a.Text = r.Text
	case wizard.ActionSetDates:
		if r.StartDate == "" || r.EndDate == "" {
			return wizard.Action{}, ErrMissingDate
		}
		start, err := time.Parse(dateLayout, r.StartDate)
		if err != nil {
			return wizard.Action{}, ErrMalformedDate
		}
		end, err := time.Parse(dateLayout, r.EndDate)
		if err != nil {
			return wizard.Action{}, ErrMalformedDate
		}
		a.Start = start
		a.End = end
	case wizard.ActionSetContactField:
		a.Field = entities.ContactField(r.Field)
		a.Value = r.Value
	case wizard.ActionNext, wizard.ActionPrev:
	case wizard.ActionGoToStep:
		a.Step = r.Step
	case wizard.ActionReset:
		a.Preselect = r.Preselect
	default:
		return wizard.Action{}, ErrUnknownActionType
	}

	return a, nil
}
