package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"truga_booking/internal/domain/entities"
	"truga_booking/internal/domain/wizard"
	mock_interfaces "truga_booking/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func intp(v int) *int { return &v }

func day(d int) time.Time {
	return time.Date(2026, time.July, d, 0, 0, 0, 0, time.UTC)
}

var standardBox = entities.RoofBox{
	ID: 2, Slug: "standardni-kovcek", Title: "Standardni Kovček",
	Size: "450L", PricePerDay: 20, Deposit: 150,
}

type wizardMocks struct {
	sessions *mock_interfaces.MockIWizardSessionStore
	boxes    *mock_interfaces.MockIRoofBoxRepository
	gateway  *mock_interfaces.MockIInquiryGateway
}

func newWizardUseCase(t *testing.T) (*WizardUseCase, wizardMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := wizardMocks{
		sessions: mock_interfaces.NewMockIWizardSessionStore(ctrl),
		boxes:    mock_interfaces.NewMockIRoofBoxRepository(ctrl),
		gateway:  mock_interfaces.NewMockIInquiryGateway(ctrl),
	}
	return NewWizardUseCase(m.sessions, m.boxes, m.gateway, time.Second), m
}

// summarySession is a session sitting on the summary step with a complete
// draft, ready to submit.
func summarySession() wizard.Session {
	st := wizard.NewState(intp(2))
	st.Step = wizard.StepSummary
	st.Draft.RoofType = entities.RoofTypeNakedRoof
	st.Draft.StartDate = day(1)
	st.Draft.EndDate = day(6)
	st.Draft.Name = "Ana Novak"
	st.Draft.Email = "ana@example.com"
	st.Draft.Phone = "040123456"
	st.Draft.VehicleDescription = "VW Golf 2019"
	return wizard.Session{ID: "sess-1", State: st}
}

func passthroughSave(m wizardMocks) {
	m.sessions.EXPECT().Save(gomock.Any(), gomock.AssignableToTypeOf(wizard.Session{})).DoAndReturn(
		func(_ context.Context, s wizard.Session) (wizard.Session, error) { return s, nil },
	).AnyTimes()
}

func TestWizardUseCase_Open(t *testing.T) {
	t.Run("without preselection", func(t *testing.T) {
		uc, m := newWizardUseCase(t)
		m.sessions.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(wizard.Session{})).DoAndReturn(
			func(_ context.Context, s wizard.Session) (wizard.Session, error) {
				if s.ID == "" {
					t.Fatalf("expected generated session id")
				}
				if s.State.Step != wizard.StepProduct || s.State.Draft.SelectedBoxID != nil {
					t.Fatalf("unexpected initial state: %+v", s.State)
				}
				return s, nil
			},
		)

		if _, err := uc.Open(context.Background(), nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("with known preselection", func(t *testing.T) {
		uc, m := newWizardUseCase(t)
		m.boxes.EXPECT().GetByID(gomock.Any(), 2).Return(standardBox, nil)
		m.sessions.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(wizard.Session{})).DoAndReturn(
			func(_ context.Context, s wizard.Session) (wizard.Session, error) {
				if s.State.Draft.SelectedBoxID == nil || *s.State.Draft.SelectedBoxID != 2 {
					t.Fatalf("expected seeded selection, got %+v", s.State.Draft)
				}
				return s, nil
			},
		)

		if _, err := uc.Open(context.Background(), intp(2)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("unknown preselection opens unseeded", func(t *testing.T) {
		uc, m := newWizardUseCase(t)
		m.boxes.EXPECT().GetByID(gomock.Any(), 99).Return(entities.RoofBox{}, nil)
		m.sessions.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(wizard.Session{})).DoAndReturn(
			func(_ context.Context, s wizard.Session) (wizard.Session, error) {
				if s.State.Draft.SelectedBoxID != nil {
					t.Fatalf("expected unseeded draft, got %+v", s.State.Draft)
				}
				return s, nil
			},
		)

		if _, err := uc.Open(context.Background(), intp(99)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestWizardUseCase_Apply(t *testing.T) {
	t.Run("unknown session", func(t *testing.T) {
		uc, m := newWizardUseCase(t)
		m.sessions.EXPECT().GetByID(gomock.Any(), "nope").Return(wizard.Session{}, nil)

		_, err := uc.Apply(context.Background(), "nope", wizard.Action{Type: wizard.ActionNext})
		if !errors.Is(err, ErrSessionNotFound) {
			t.Fatalf("expected ErrSessionNotFound, got %v", err)
		}
	})

	t.Run("gated next surfaces reducer error", func(t *testing.T) {
		uc, m := newWizardUseCase(t)
		s := wizard.Session{ID: "sess-1", State: wizard.NewState(nil)}
		m.sessions.EXPECT().GetByID(gomock.Any(), "sess-1").Return(s, nil)

		_, err := uc.Apply(context.Background(), "sess-1", wizard.Action{Type: wizard.ActionNext})
		if !errors.Is(err, wizard.ErrStepNotValid) {
			t.Fatalf("expected ErrStepNotValid, got %v", err)
		}
	})

	t.Run("valid action persists", func(t *testing.T) {
		uc, m := newWizardUseCase(t)
		s := wizard.Session{ID: "sess-1", State: wizard.NewState(nil)}
		m.sessions.EXPECT().GetByID(gomock.Any(), "sess-1").Return(s, nil)
		passthroughSave(m)

		got, err := uc.Apply(context.Background(), "sess-1", wizard.Action{Type: wizard.ActionSelectBox, BoxID: intp(3)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.State.Draft.SelectedBoxID == nil || *got.State.Draft.SelectedBoxID != 3 {
			t.Fatalf("expected selection persisted, got %+v", got.State.Draft)
		}
		if got.UpdatedAt.IsZero() {
			t.Fatalf("expected UpdatedAt to be bumped")
		}
	})
}

func TestWizardUseCase_Quote(t *testing.T) {
	t.Run("no dates", func(t *testing.T) {
		uc, m := newWizardUseCase(t)
		s := wizard.Session{ID: "sess-1", State: wizard.NewState(intp(2))}
		m.sessions.EXPECT().GetByID(gomock.Any(), "sess-1").Return(s, nil)

		q, err := uc.Quote(context.Background(), "sess-1", time.Time{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.Days != 0 || q.Pricing != nil || q.Nudge != nil || q.Preview {
			t.Fatalf("expected empty quote, got %+v", q)
		}
	})

	t.Run("committed dates", func(t *testing.T) {
		uc, m := newWizardUseCase(t)
		s := summarySession()
		m.sessions.EXPECT().GetByID(gomock.Any(), "sess-1").Return(s, nil)
		m.boxes.EXPECT().GetByID(gomock.Any(), 2).Return(standardBox, nil)

		q, err := uc.Quote(context.Background(), "sess-1", time.Time{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.Days != 5 || q.DaysWord != "dni" || q.Preview {
			t.Fatalf("unexpected quote: %+v", q)
		}
		if q.Pricing == nil || q.Pricing.Total != 95 || q.Pricing.Deposit != 150 {
			t.Fatalf("unexpected pricing: %+v", q.Pricing)
		}
		if q.Nudge == nil || q.Nudge.DaysUntilNext != 2 || q.Nudge.NextPercent != 10 {
			t.Fatalf("unexpected nudge: %+v", q.Nudge)
		}
	})

	t.Run("hovered end date previews without mutating", func(t *testing.T) {
		uc, m := newWizardUseCase(t)
		st := wizard.NewState(intp(2))
		st.Step = wizard.StepDates
		st.Draft.StartDate = day(1)
		s := wizard.Session{ID: "sess-1", State: st}
		m.sessions.EXPECT().GetByID(gomock.Any(), "sess-1").Return(s, nil)
		m.boxes.EXPECT().GetByID(gomock.Any(), 2).Return(standardBox, nil)

		q, err := uc.Quote(context.Background(), "sess-1", day(4))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !q.Preview || q.Days != 3 {
			t.Fatalf("expected 3-day preview, got %+v", q)
		}
		if q.Pricing == nil || q.Pricing.Total != 60 {
			t.Fatalf("unexpected preview pricing: %+v", q.Pricing)
		}
	})

	t.Run("hover ignored once end date committed", func(t *testing.T) {
		uc, m := newWizardUseCase(t)
		s := summarySession()
		m.sessions.EXPECT().GetByID(gomock.Any(), "sess-1").Return(s, nil)
		m.boxes.EXPECT().GetByID(gomock.Any(), 2).Return(standardBox, nil)

		q, err := uc.Quote(context.Background(), "sess-1", day(20))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.Preview || q.Days != 5 {
			t.Fatalf("expected committed 5 days, got %+v", q)
		}
	})

	t.Run("catalog miss degrades to no pricing", func(t *testing.T) {
		uc, m := newWizardUseCase(t)
		s := summarySession()
		m.sessions.EXPECT().GetByID(gomock.Any(), "sess-1").Return(s, nil)
		m.boxes.EXPECT().GetByID(gomock.Any(), 2).Return(entities.RoofBox{}, nil)

		q, err := uc.Quote(context.Background(), "sess-1", time.Time{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.Pricing != nil {
			t.Fatalf("expected no pricing on catalog miss, got %+v", q.Pricing)
		}
		if q.Days != 5 {
			t.Fatalf("day count should survive the miss, got %d", q.Days)
		}
	})
}

func TestWizardUseCase_Submit(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		uc, m := newWizardUseCase(t)
		s := summarySession()
		m.sessions.EXPECT().GetByID(gomock.Any(), "sess-1").Return(s, nil)
		passthroughSave(m)
		m.boxes.EXPECT().GetByID(gomock.Any(), 2).Return(standardBox, nil)
		m.gateway.EXPECT().SendInquiry(gomock.Any(), gomock.AssignableToTypeOf(entities.InquiryPayload{})).DoAndReturn(
			func(_ context.Context, p entities.InquiryPayload) error {
				if p.DayCount != 5 {
					t.Fatalf("expected dayCount 5, got %d", p.DayCount)
				}
				if p.DiscountPercent != 5 {
					t.Fatalf("expected 5-day tier discount, got %d", p.DiscountPercent)
				}
				if p.BoxTitle == nil || *p.BoxTitle != "Standardni Kovček" {
					t.Fatalf("unexpected box title: %+v", p.BoxTitle)
				}
				if p.ContactEmail != "ana@example.com" {
					t.Fatalf("unexpected contact email: %q", p.ContactEmail)
				}
				return nil
			},
		)

		got, err := uc.Submit(context.Background(), "sess-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.State.Submission.Status != wizard.SubmissionSuccess {
			t.Fatalf("expected success status, got %+v", got.State.Submission)
		}
	})

	t.Run("gateway failure keeps draft for retry", func(t *testing.T) {
		uc, m := newWizardUseCase(t)
		s := summarySession()
		m.sessions.EXPECT().GetByID(gomock.Any(), "sess-1").Return(s, nil)
		passthroughSave(m)
		m.boxes.EXPECT().GetByID(gomock.Any(), 2).Return(standardBox, nil)
		m.gateway.EXPECT().SendInquiry(gomock.Any(), gomock.Any()).Return(errors.New("resend: 500"))

		got, err := uc.Submit(context.Background(), "sess-1")
		if !errors.Is(err, ErrInquirySendFailed) {
			t.Fatalf("expected ErrInquirySendFailed, got %v", err)
		}
		sub := got.State.Submission
		if sub.Status != wizard.SubmissionError || sub.ErrorMessage != msgSendFailed {
			t.Fatalf("unexpected submission state: %+v", sub)
		}
		if got.State.Step != wizard.StepSummary {
			t.Fatalf("step must stay at summary, got %d", got.State.Step)
		}
		if got.State.Draft.Name != "Ana Novak" || !got.State.Draft.HasDates() {
			t.Fatalf("draft must survive a failed submit: %+v", got.State.Draft)
		}
	})

	t.Run("retry after failure succeeds", func(t *testing.T) {
		uc, m := newWizardUseCase(t)
		s := summarySession()
		s.State.Submission = wizard.Submission{Status: wizard.SubmissionError, ErrorMessage: msgSendFailed}
		m.sessions.EXPECT().GetByID(gomock.Any(), "sess-1").Return(s, nil)
		passthroughSave(m)
		m.boxes.EXPECT().GetByID(gomock.Any(), 2).Return(standardBox, nil)
		m.gateway.EXPECT().SendInquiry(gomock.Any(), gomock.Any()).Return(nil)

		got, err := uc.Submit(context.Background(), "sess-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.State.Submission.Status != wizard.SubmissionSuccess || got.State.Submission.ErrorMessage != "" {
			t.Fatalf("unexpected submission state: %+v", got.State.Submission)
		}
	})

	t.Run("configuration error message", func(t *testing.T) {
		uc, m := newWizardUseCase(t)
		s := summarySession()
		m.sessions.EXPECT().GetByID(gomock.Any(), "sess-1").Return(s, nil)
		passthroughSave(m)
		m.boxes.EXPECT().GetByID(gomock.Any(), 2).Return(standardBox, nil)
		m.gateway.EXPECT().SendInquiry(gomock.Any(), gomock.Any()).Return(errors.New("inquiry gateway not configured"))

		got, _ := uc.Submit(context.Background(), "sess-1")
		if got.State.Submission.ErrorMessage != msgNotConfigured {
			t.Fatalf("expected configuration message, got %q", got.State.Submission.ErrorMessage)
		}
	})

	t.Run("duplicate submit while in flight is a no-op", func(t *testing.T) {
		uc, m := newWizardUseCase(t)
		s := summarySession()
		s.State.Submission = wizard.Submission{Status: wizard.SubmissionSubmitting}
		m.sessions.EXPECT().GetByID(gomock.Any(), "sess-1").Return(s, nil)

		if _, err := uc.Submit(context.Background(), "sess-1"); !errors.Is(err, ErrSubmitInFlight) {
			t.Fatalf("expected ErrSubmitInFlight, got %v", err)
		}
	})

	t.Run("submit after success is rejected", func(t *testing.T) {
		uc, m := newWizardUseCase(t)
		s := summarySession()
		s.State.Submission = wizard.Submission{Status: wizard.SubmissionSuccess}
		m.sessions.EXPECT().GetByID(gomock.Any(), "sess-1").Return(s, nil)

		if _, err := uc.Submit(context.Background(), "sess-1"); !errors.Is(err, ErrAlreadySubmitted) {
			t.Fatalf("expected ErrAlreadySubmitted, got %v", err)
		}
	})

	t.Run("not on summary", func(t *testing.T) {
		uc, m := newWizardUseCase(t)
		s := summarySession()
		s.State.Step = wizard.StepContact
		m.sessions.EXPECT().GetByID(gomock.Any(), "sess-1").Return(s, nil)

		if _, err := uc.Submit(context.Background(), "sess-1"); !errors.Is(err, ErrNotOnSummary) {
			t.Fatalf("expected ErrNotOnSummary, got %v", err)
		}
	})

	t.Run("editing from summary blocks submit", func(t *testing.T) {
		uc, m := newWizardUseCase(t)
		s := summarySession()
		s.State.Step = wizard.StepRoofType
		s.State.EditingFromSummary = true
		m.sessions.EXPECT().GetByID(gomock.Any(), "sess-1").Return(s, nil)

		if _, err := uc.Submit(context.Background(), "sess-1"); !errors.Is(err, ErrEditingInProgress) {
			t.Fatalf("expected ErrEditingInProgress, got %v", err)
		}
	})

	t.Run("no box selected still submits", func(t *testing.T) {
		uc, m := newWizardUseCase(t)
		s := summarySession()
		s.State.Draft.SelectedBoxID = nil
		m.sessions.EXPECT().GetByID(gomock.Any(), "sess-1").Return(s, nil)
		passthroughSave(m)
		m.gateway.EXPECT().SendInquiry(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.InquiryPayload) error {
				if p.BoxTitle != nil || p.EstimatedTotal != nil {
					t.Fatalf("expected boxless payload, got %+v", p)
				}
				return nil
			},
		)

		if _, err := uc.Submit(context.Background(), "sess-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestWizardUseCase_Close(t *testing.T) {
	t.Run("blank id", func(t *testing.T) {
		uc, _ := newWizardUseCase(t)
		if err := uc.Close(context.Background(), "  "); !errors.Is(err, ErrInvalidSessionID) {
			t.Fatalf("expected ErrInvalidSessionID, got %v", err)
		}
	})

	t.Run("delegates to store", func(t *testing.T) {
		uc, m := newWizardUseCase(t)
		m.sessions.EXPECT().Delete(gomock.Any(), "sess-1").Return(nil)
		if err := uc.Close(context.Background(), "sess-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
