package response

import (
	"time"

	"truga_booking/internal/domain/wizard"
	"truga_booking/internal/usecase"
)

const dateLayout = "2006-01-02"

// DraftResponse is the wire form of the in-progress reservation. Dates are
// plain calendar days; empty strings mean not chosen yet.
type DraftResponse struct {
	SelectedBoxID     *int   `json:"selected_box_id"`
	RoofType          string `json:"roof_type"`
	RoofTypeOtherText string `json:"roof_type_other_text"`
	StartDate         string `json:"start_date"`
	EndDate           string `json:"end_date"`

	Name               string `json:"name"`
	Email              string `json:"email"`
	Phone              string `json:"phone"`
	VehicleDescription string `json:"vehicle_description"`
	Notes              string `json:"notes"`
}

type SubmissionResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message,omitempty"`
}

type SessionResponse struct {
	SessionID          string             `json:"session_id"`
	Step               int                `json:"step"`
	EditingFromSummary bool               `json:"editing_from_summary"`
	StepValid          bool               `json:"step_valid"`
	CompletedSteps     []int              `json:"completed_steps"`
	Draft              DraftResponse      `json:"draft"`
	Submission         SubmissionResponse `json:"submission"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
}

func FromSession(s wizard.Session) SessionResponse {
	st := s.State
	completed := wizard.CompletedSteps(st)
	if completed == nil {
		completed = []int{}
	}

	return SessionResponse{
		SessionID:          s.ID,
		Step:               st.Step,
		EditingFromSummary: st.EditingFromSummary,
		StepValid:          wizard.StepValid(st.Step, st.Draft),
		CompletedSteps:     completed,
		Draft: DraftResponse{
			SelectedBoxID:      st.Draft.SelectedBoxID,
			RoofType:           string(st.Draft.RoofType),
			RoofTypeOtherText:  st.Draft.RoofTypeOtherText,
			StartDate:          formatDate(st.Draft.StartDate),
			EndDate:            formatDate(st.Draft.EndDate),
			Name:               st.Draft.Name,
			Email:              st.Draft.Email,
			Phone:              st.Draft.Phone,
			VehicleDescription: st.Draft.VehicleDescription,
			Notes:              st.Draft.Notes,
		},
		Submission: SubmissionResponse{
			Status:       string(st.Submission.Status),
			ErrorMessage: st.Submission.ErrorMessage,
		},
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

type PricingResponse struct {
	BoxSubtotal     float64 `json:"box_subtotal"`
	HolderSubtotal  float64 `json:"holder_subtotal"`
	DiscountPercent int     `json:"discount_percent"`
	DiscountAmount  float64 `json:"discount_amount"`
	Total           float64 `json:"total"`
	Deposit         float64 `json:"deposit"`
}

type NudgeResponse struct {
	DaysUntilNext int `json:"days_until_next"`
	NextPercent   int `json:"next_percent"`
}

type QuoteResponse struct {
	Days     int              `json:"days"`
	DaysWord string           `json:"days_word"`
	Preview  bool             `json:"preview"`
	Pricing  *PricingResponse `json:"pricing"`
	Nudge    *NudgeResponse   `json:"nudge"`
}

func FromQuote(q usecase.Quote) QuoteResponse {
	out := QuoteResponse{
		Days:     q.Days,
		DaysWord: q.DaysWord,
		Preview:  q.Preview,
	}
	if q.Pricing != nil {
		out.Pricing = &PricingResponse{
			BoxSubtotal:     q.Pricing.BoxSubtotal,
			HolderSubtotal:  q.Pricing.HolderSubtotal,
			DiscountPercent: q.Pricing.DiscountPercent,
			DiscountAmount:  q.Pricing.DiscountAmount,
			Total:           q.Pricing.Total,
			Deposit:         q.Pricing.Deposit,
		}
	}
	if q.Nudge != nil {
		out.Nudge = &NudgeResponse{
			DaysUntilNext: q.Nudge.DaysUntilNext,
			NextPercent:   q.Nudge.NextPercent,
		}
	}
	return out
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}
