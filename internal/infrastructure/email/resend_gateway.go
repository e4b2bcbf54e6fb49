package email

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"truga_booking/internal/domain/entities"
	"truga_booking/internal/usecase/interfaces"
)

const resendEndpoint = "https://api.resend.com/emails"

var (
	ErrMissingResendAPIKey         = errors.New("missing RESEND_API_KEY")
	ErrMissingInquiryEmail         = errors.New("missing INQUIRY_EMAIL")
	ErrInquiryGatewayNotConfigured = errors.New("inquiry gateway not configured")
)

// ResendGateway delivers reservation inquiries through the Resend email API.
//
// Env vars:
//   - RESEND_API_KEY       bearer token for api.resend.com
//   - INQUIRY_EMAIL        business inbox receiving inquiries
//   - RESEND_FROM_EMAIL    sender (default: Truga <onboarding@resend.dev>)
//   - INQUIRY_GATEWAY_MOCK log-and-succeed mode for local runs
type ResendGateway struct {
	httpClient *http.Client
	apiKey     string
	recipient  string
	from       string
	endpoint   string
	mockMode   bool
}

var _ interfaces.IInquiryGateway = (*ResendGateway)(nil)

func NewResendGateway(apiKey, recipient string) (*ResendGateway, error) {
	if isInquiryGatewayMockEnabled() {
		log.Printf("[inquiry][gateway] mock mode enabled")
		return &ResendGateway{mockMode: true}, nil
	}

	if apiKey == "" {
		log.Printf("[inquiry][gateway] missing RESEND_API_KEY")
		return nil, ErrMissingResendAPIKey
	}
	if recipient == "" {
		log.Printf("[inquiry][gateway] missing INQUIRY_EMAIL")
		return nil, ErrMissingInquiryEmail
	}

	from := strings.TrimSpace(os.Getenv("RESEND_FROM_EMAIL"))
	if from == "" {
		from = "Truga <onboarding@resend.dev>"
	}

	log.Printf("[inquiry][gateway] Resend client initialized recipient=%s", recipient)
	return &ResendGateway{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		apiKey:     apiKey,
		recipient:  recipient,
		from:       from,
		endpoint:   resendEndpoint,
	}, nil
}

type resendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	ReplyTo string   `json:"reply_to,omitempty"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
	Text    string   `json:"text"`
}

func (g *ResendGateway) SendInquiry(ctx context.Context, payload entities.InquiryPayload) error {
	if g != nil && g.mockMode {
		log.Printf("[inquiry][gateway] mock send subject=%q contact=%s", inquirySubject(payload), payload.ContactEmail)
		return nil
	}
	if g == nil || g.httpClient == nil {
		log.Printf("[inquiry][gateway] gateway not configured")
		return ErrInquiryGatewayNotConfigured
	}

	req := resendRequest{
		From:    g.from,
		To:      []string{g.recipient},
		ReplyTo: payload.ContactEmail,
		Subject: inquirySubject(payload),
		HTML:    renderInquiryHTML(payload),
		Text:    renderInquiryText(payload),
	}

	body, err := json.Marshal(req)
	if err != nil {
		return err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	httpReq.Header.Set("Authorization", "Bearer "+g.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	log.Printf("[inquiry][gateway] send start contact=%s", payload.ContactEmail)
	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		log.Printf("[inquiry][gateway] send failed err=%v", err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		log.Printf("[inquiry][gateway] send rejected status=%d body=%s", resp.StatusCode, respBody)
		return fmt.Errorf("resend: unexpected status %d", resp.StatusCode)
	}

	log.Printf("[inquiry][gateway] send success contact=%s", payload.ContactEmail)
	return nil
}

func inquirySubject(p entities.InquiryPayload) string {
	subject := "Novo povpraševanje: " + p.ContactName
	if p.BoxTitle != nil {
		subject += " — " + *p.BoxTitle
	}
	return subject
}

func isInquiryGatewayMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("INQUIRY_GATEWAY_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
