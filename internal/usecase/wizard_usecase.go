package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"truga_booking/internal/domain/entities"
	"truga_booking/internal/domain/pricing"
	"truga_booking/internal/domain/wizard"
	"truga_booking/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrSessionNotFound   = errors.New("wizard session not found")
	ErrInvalidSessionID  = errors.New("invalid session id")
	ErrNotOnSummary      = errors.New("submission is only available from the summary step")
	ErrEditingInProgress = errors.New("submission is not available while editing from summary")
	ErrSubmitInFlight    = errors.New("a submission is already in flight")
	ErrAlreadySubmitted  = errors.New("inquiry already submitted")
	ErrInquirySendFailed = errors.New("inquiry send failed")
)

const defaultSubmitTimeout = 15 * time.Second

// Customer-facing messages shown next to the submit control, matching the
// wording of the marketing site.
const (
	msgSendFailed    = "Pošiljanje ni uspelo. Prosimo, poskusite znova."
	msgNotConfigured = "Email ni konfiguriran. Prosimo, kontaktirajte nas neposredno."
)

// Quote is the live price preview shown on the date and summary steps.
// Pricing is nil when no box is selected or no days are chosen yet; the
// Preview flag marks day counts derived from a hovered, uncommitted end
// date.
type Quote struct {
	Days     int
	DaysWord string
	Preview  bool
	Pricing  *pricing.Result
	Nudge    *pricing.Nudge
}

// IWizardUseCase drives reservation wizard sessions.
type IWizardUseCase interface {
	Open(ctx context.Context, preselect *int) (wizard.Session, error)
	Get(ctx context.Context, id string) (wizard.Session, error)
	Apply(ctx context.Context, id string, action wizard.Action) (wizard.Session, error)
	Quote(ctx context.Context, id string, hoverEnd time.Time) (Quote, error)
	Submit(ctx context.Context, id string) (wizard.Session, error)
	Close(ctx context.Context, id string) error
}

type WizardUseCase struct {
	sessions      interfaces.IWizardSessionStore
	boxes         interfaces.IRoofBoxRepository
	gateway       interfaces.IInquiryGateway
	submitTimeout time.Duration
}

var _ IWizardUseCase = (*WizardUseCase)(nil)

func NewWizardUseCase(
	sessions interfaces.IWizardSessionStore,
	boxes interfaces.IRoofBoxRepository,
	gateway interfaces.IInquiryGateway,
	submitTimeout time.Duration,
) *WizardUseCase {
	if submitTimeout <= 0 {
		submitTimeout = defaultSubmitTimeout
	}
	return &WizardUseCase{sessions: sessions, boxes: boxes, gateway: gateway, submitTimeout: submitTimeout}
}

// Open starts a fresh session, optionally seeded with a pre-selected box.
// Unknown box ids are tolerated: the session opens unseeded, exactly as a
// stale deep link should behave.
func (u *WizardUseCase) Open(ctx context.Context, preselect *int) (wizard.Session, error) {
	if preselect != nil {
		box, err := u.boxes.GetByID(ctx, *preselect)
		if err != nil {
			return wizard.Session{}, err
		}
		if box.ID == 0 {
			log.Printf("[wizard][usecase] ignoring unknown preselected box id=%d", *preselect)
			preselect = nil
		}
	}

	now := time.Now().UTC()
	s := wizard.Session{
		ID:        uuid.NewString(),
		State:     wizard.NewState(preselect),
		CreatedAt: now,
		UpdatedAt: now,
	}
	return u.sessions.Create(ctx, s)
}

func (u *WizardUseCase) Get(ctx context.Context, id string) (wizard.Session, error) {
	return u.load(ctx, id)
}

// Apply runs one action through the reducer and persists the new state.
func (u *WizardUseCase) Apply(ctx context.Context, id string, action wizard.Action) (wizard.Session, error) {
	s, err := u.load(ctx, id)
	if err != nil {
		return wizard.Session{}, err
	}

	next, err := wizard.Reduce(s.State, action)
	if err != nil {
		return wizard.Session{}, err
	}

	s.State = next
	s.UpdatedAt = time.Now().UTC()
	return u.sessions.Save(ctx, s)
}

// Quote computes the live price preview for a session. A hoverEnd after the
// committed start date stands in for the end date while the customer is
// still hovering the calendar; it never touches the stored draft.
func (u *WizardUseCase) Quote(ctx context.Context, id string, hoverEnd time.Time) (Quote, error) {
	s, err := u.load(ctx, id)
	if err != nil {
		return Quote{}, err
	}
	d := s.State.Draft

	end := d.EndDate
	preview := false
	if end.IsZero() && !d.StartDate.IsZero() && hoverEnd.After(d.StartDate) {
		end = hoverEnd
		preview = true
	}

	days := pricing.RentalDays(d.StartDate, end)
	q := Quote{
		Days:     days,
		DaysWord: pricing.FormatDaysWord(days),
		Preview:  preview && days > 0,
		Nudge:    pricing.DiscountNudge(days),
	}

	if d.SelectedBoxID == nil || days == 0 {
		return q, nil
	}
	box, err := u.boxes.GetByID(ctx, *d.SelectedBoxID)
	if err != nil {
		return Quote{}, err
	}
	if box.ID == 0 {
		// Catalog miss: quote without pricing rather than failing.
		return q, nil
	}

	res := pricing.Calculate(&box.PricePerDay, nil, days, &box.Deposit)
	q.Pricing = &res
	return q, nil
}

// Submit sends the inquiry for a session sitting on the summary step.
//
// The submission status is persisted around the gateway call so duplicate
// submits are no-ops while one is in flight, and a failed send leaves the
// step and draft untouched for a retry. The gateway call is bounded by the
// configured timeout so a hanging provider can never strand the session in
// "submitting".
func (u *WizardUseCase) Submit(ctx context.Context, id string) (wizard.Session, error) {
	s, err := u.load(ctx, id)
	if err != nil {
		return wizard.Session{}, err
	}

	st := s.State
	if st.EditingFromSummary {
		return s, ErrEditingInProgress
	}
	if st.Step != wizard.StepSummary {
		return s, ErrNotOnSummary
	}
	switch st.Submission.Status {
	case wizard.SubmissionSubmitting:
		return s, ErrSubmitInFlight
	case wizard.SubmissionSuccess:
		return s, ErrAlreadySubmitted
	}

	st.Submission = wizard.Submission{Status: wizard.SubmissionSubmitting}
	s.State = st
	s.UpdatedAt = time.Now().UTC()
	if s, err = u.sessions.Save(ctx, s); err != nil {
		return wizard.Session{}, err
	}

	// The payload is rebuilt from the live draft on every attempt.
	var box *entities.RoofBox
	if st.Draft.SelectedBoxID != nil {
		b, err := u.boxes.GetByID(ctx, *st.Draft.SelectedBoxID)
		if err != nil {
			log.Printf("[wizard][usecase] box lookup failed session=%s err=%v", s.ID, err)
		} else if b.ID != 0 {
			box = &b
		}
	}
	payload := buildInquiryPayload(st.Draft, box)

	sendCtx, cancel := context.WithTimeout(ctx, u.submitTimeout)
	defer cancel()

	log.Printf("[wizard][usecase] submitting inquiry session=%s days=%d", s.ID, payload.DayCount)
	if err := u.sendInquiry(sendCtx, payload); err != nil {
		log.Printf("[wizard][usecase] inquiry send failed session=%s err=%v", s.ID, err)
		st.Submission = wizard.Submission{Status: wizard.SubmissionError, ErrorMessage: submitErrorMessage(err)}
		s.State = st
		s.UpdatedAt = time.Now().UTC()
		if s, err = u.sessions.Save(ctx, s); err != nil {
			return wizard.Session{}, err
		}
		return s, ErrInquirySendFailed
	}

	log.Printf("[wizard][usecase] inquiry sent session=%s contact=%s", s.ID, payload.ContactEmail)
	st.Submission = wizard.Submission{Status: wizard.SubmissionSuccess}
	s.State = st
	s.UpdatedAt = time.Now().UTC()
	return u.sessions.Save(ctx, s)
}

// Close discards a session. Closing an unknown session is not an error.
func (u *WizardUseCase) Close(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidSessionID
	}
	return u.sessions.Delete(ctx, id)
}

// sendInquiry tolerates a missing gateway: the server still runs without
// Resend credentials, and submits resolve to the "not configured" message.
func (u *WizardUseCase) sendInquiry(ctx context.Context, payload entities.InquiryPayload) error {
	if u.gateway == nil {
		return errors.New("inquiry gateway not configured")
	}
	return u.gateway.SendInquiry(ctx, payload)
}

func (u *WizardUseCase) load(ctx context.Context, id string) (wizard.Session, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return wizard.Session{}, ErrInvalidSessionID
	}

	s, err := u.sessions.GetByID(ctx, id)
	if err != nil {
		return wizard.Session{}, err
	}
	if s.ID == "" {
		return wizard.Session{}, ErrSessionNotFound
	}
	return s, nil
}

func submitErrorMessage(err error) string {
	if strings.Contains(strings.ToLower(err.Error()), "not configured") {
		return msgNotConfigured
	}
	return msgSendFailed
}
