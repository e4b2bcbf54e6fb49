// Package wizard holds the reservation wizard state machine.
//
// All transitions go through Reduce, a pure function of (state, action), so
// a session can be replayed deterministically in tests. Nothing in here
// touches storage, transport or the clock.
package wizard

import (
	"errors"
	"strings"
	"time"

	"truga_booking/internal/domain/entities"
)

const (
	StepProduct  = 1
	StepRoofType = 2
	StepDates    = 3
	StepContact  = 4
	StepSummary  = 5
)

// SubmissionStatus tracks the asynchronous submit lifecycle, orthogonal to
// the current step.
type SubmissionStatus string

const (
	SubmissionIdle       SubmissionStatus = "idle"
	SubmissionSubmitting SubmissionStatus = "submitting"
	SubmissionSuccess    SubmissionStatus = "success"
	SubmissionError      SubmissionStatus = "error"
)

// Submission is the submit lifecycle state. ErrorMessage is set only while
// Status is SubmissionError.
type Submission struct {
	Status       SubmissionStatus `json:"status"`
	ErrorMessage string           `json:"error_message,omitempty"`
}

// State is the full wizard state for one open session.
//
// EditingFromSummary is deliberately kept separate from Step: which screen
// is shown and which navigation mode is active are independent concerns.
type State struct {
	Step               int                       `json:"step"`
	EditingFromSummary bool                      `json:"editing_from_summary"`
	Draft              entities.ReservationDraft `json:"draft"`
	Submission         Submission                `json:"submission"`
}

// Session wraps a State with its store identity.
type Session struct {
	ID        string    `json:"id"`
	State     State     `json:"state"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ActionType string

const (
	ActionSelectBox            ActionType = "select_box"
	ActionSetRoofType          ActionType = "set_roof_type"
	ActionSetRoofTypeOtherText ActionType = "set_roof_type_other_text"
	ActionSetDates             ActionType = "set_dates"
	ActionSetContactField      ActionType = "set_contact_field"
	ActionNext                 ActionType = "next"
	ActionPrev                 ActionType = "prev"
	ActionGoToStep             ActionType = "go_to_step"
	ActionReset                ActionType = "reset"
)

// Action is one wizard event. Only the fields relevant to Type are read.
type Action struct {
	Type ActionType

	BoxID     *int                  // select_box: nil or a repeated id deselects
	RoofType  entities.RoofType     // set_roof_type
	Text      string                // set_roof_type_other_text
	Field     entities.ContactField // set_contact_field
	Value     string                // set_contact_field
	Start     time.Time             // set_dates
	End       time.Time             // set_dates
	Step      int                   // go_to_step
	Preselect *int                  // reset
}

var (
	ErrStepNotValid    = errors.New("current step is not valid")
	ErrInvalidAction   = errors.New("invalid wizard action")
	ErrInvalidRoofType = errors.New("invalid roof type")
	ErrInvalidField    = errors.New("invalid contact field")
	ErrInvalidDates    = errors.New("end date must be after start date")
	ErrInvalidStep     = errors.New("invalid step")
)

// NewState builds the fresh state used when a wizard opens, optionally
// seeded with a pre-selected box.
func NewState(preselect *int) State {
	s := State{
		Step:       StepProduct,
		Submission: Submission{Status: SubmissionIdle},
	}
	if preselect != nil {
		id := *preselect
		s.Draft.SelectedBoxID = &id
	}
	return s
}

// Reduce applies a to s and returns the next state. The input state is never
// mutated. Gated transitions return ErrStepNotValid with the state
// unchanged; malformed actions return the other sentinel errors.
func Reduce(s State, a Action) (State, error) {
	switch a.Type {
	case ActionSelectBox:
		// Re-selecting the current box deselects it.
		if a.BoxID == nil || (s.Draft.SelectedBoxID != nil && *s.Draft.SelectedBoxID == *a.BoxID) {
			s.Draft.SelectedBoxID = nil
			return s, nil
		}
		id := *a.BoxID
		s.Draft.SelectedBoxID = &id
		return s, nil

	case ActionSetRoofType:
		if !a.RoofType.IsValid() {
			return s, ErrInvalidRoofType
		}
		s.Draft.RoofType = a.RoofType
		if a.RoofType != entities.RoofTypeOther {
			s.Draft.RoofTypeOtherText = ""
		}
		return s, nil

	case ActionSetRoofTypeOtherText:
		s.Draft.RoofTypeOtherText = a.Text
		return s, nil

	case ActionSetDates:
		if a.Start.IsZero() || a.End.IsZero() || !a.End.After(a.Start) {
			return s, ErrInvalidDates
		}
		s.Draft.StartDate = a.Start
		s.Draft.EndDate = a.End
		return s, nil

	case ActionSetContactField:
		if !a.Field.IsValid() {
			return s, ErrInvalidField
		}
		s.Draft.SetContactField(a.Field, a.Value)
		return s, nil

	case ActionNext:
		if !StepValid(s.Step, s.Draft) {
			return s, ErrStepNotValid
		}
		if s.EditingFromSummary {
			// "Save & review" returns straight to the summary.
			s.Step = StepSummary
			s.EditingFromSummary = false
			return s, nil
		}
		if s.Step < StepSummary {
			s.Step++
		}
		return s, nil

	case ActionPrev:
		if s.EditingFromSummary {
			// "Back to summary" abandons the edit without clearing anything.
			s.Step = StepSummary
			s.EditingFromSummary = false
			return s, nil
		}
		if s.Step == StepDates {
			// Leaving the date step backwards forces a fresh date selection
			// on the next forward pass.
			s.Draft.StartDate = time.Time{}
			s.Draft.EndDate = time.Time{}
		}
		if s.Step > StepProduct {
			s.Step--
		}
		return s, nil

	case ActionGoToStep:
		if a.Step < StepProduct || a.Step >= StepSummary {
			return s, ErrInvalidStep
		}
		s.Step = a.Step
		s.EditingFromSummary = true
		return s, nil

	case ActionReset:
		return NewState(a.Preselect), nil

	default:
		return s, ErrInvalidAction
	}
}

// StepValid is the per-step gate for forward navigation.
func StepValid(step int, d entities.ReservationDraft) bool {
	switch step {
	case StepProduct:
		return d.SelectedBoxID != nil
	case StepRoofType:
		if d.RoofType == "" {
			return false
		}
		if d.RoofType == entities.RoofTypeOther {
			return strings.TrimSpace(d.RoofTypeOtherText) != ""
		}
		return true
	case StepDates:
		return d.HasDates()
	case StepContact:
		return d.ContactComplete()
	case StepSummary:
		return true
	default:
		return false
	}
}

// CompletedSteps lists the steps shown as done in the step indicator. While
// editing from the summary every step except the one being edited counts as
// completed, because the whole wizard has already been walked once.
func CompletedSteps(s State) []int {
	var done []int
	for step := StepProduct; step <= StepSummary; step++ {
		if s.EditingFromSummary {
			if step != s.Step {
				done = append(done, step)
			}
			continue
		}
		if step < s.Step {
			done = append(done, step)
		}
	}
	return done
}
