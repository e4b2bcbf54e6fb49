package email

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"truga_booking/internal/domain/entities"
)

func strPtr(s string) *string   { return &s }
func fltPtr(f float64) *float64 { return &f }

func samplePayload() entities.InquiryPayload {
	return entities.InquiryPayload{
		BoxTitle:           strPtr("Standardni Kovček"),
		BoxSize:            strPtr("420L"),
		PricePerDay:        fltPtr(20),
		RoofType:           strPtr("raised-rails"),
		StartDateFormatted: "2. julij 2026",
		EndDateFormatted:   "7. julij 2026",
		DayCount:           5,
		ContactName:        "Janez Novak",
		ContactEmail:       "janez@example.com",
		ContactPhone:       "+386 40 123 456",
		VehicleDescription: "VW Passat Variant 2019",
		EstimatedTotal:     fltPtr(95),
		DiscountPercent:    5,
		DepositAmount:      fltPtr(150),
	}
}

func TestRenderInquiryHTML(t *testing.T) {
	t.Run("full payload", func(t *testing.T) {
		body := renderInquiryHTML(samplePayload())

		for _, want := range []string{
			"Janez Novak",
			"Standardni Kovček (420L) — 20€/dan",
			"Dvignjene letve",
			"2. julij 2026",
			"5 dni",
			"95€",
			"5% popust",
			"Kavcija: 150€",
		} {
			if !strings.Contains(body, want) {
				t.Fatalf("expected %q in body:\n%s", want, body)
			}
		}
		if strings.Contains(body, "Opombe") {
			t.Fatalf("unexpected notes block in body:\n%s", body)
		}
	})

	t.Run("no box selected", func(t *testing.T) {
		p := samplePayload()
		p.BoxTitle, p.BoxSize, p.PricePerDay = nil, nil, nil
		p.EstimatedTotal, p.DepositAmount = nil, nil
		p.DiscountPercent = 0

		body := renderInquiryHTML(p)
		if !strings.Contains(body, "Ni izbran — potrebuje svetovanje") {
			t.Fatalf("expected advice line in body:\n%s", body)
		}
		if strings.Contains(body, "Ocena cene") {
			t.Fatalf("unexpected price block in body:\n%s", body)
		}
	})

	t.Run("other roof type carries description", func(t *testing.T) {
		p := samplePayload()
		p.RoofType = strPtr("other")
		p.RoofTypeOtherDescription = strPtr("panoramska streha")

		body := renderInquiryHTML(p)
		if !strings.Contains(body, "Drugo: panoramska streha") {
			t.Fatalf("expected combined roof line in body:\n%s", body)
		}
	})

	t.Run("escapes customer input", func(t *testing.T) {
		p := samplePayload()
		p.Notes = `<script>alert("x")</script>`

		body := renderInquiryHTML(p)
		if strings.Contains(body, "<script>") {
			t.Fatalf("unescaped input in body:\n%s", body)
		}
		if !strings.Contains(body, "&lt;script&gt;") {
			t.Fatalf("expected escaped input in body:\n%s", body)
		}
	})

	t.Run("missing roof type", func(t *testing.T) {
		p := samplePayload()
		p.RoofType = nil

		if body := renderInquiryHTML(p); !strings.Contains(body, "Ni izbrano") {
			t.Fatalf("expected fallback roof line in body:\n%s", body)
		}
	})
}

func TestRenderInquiryText(t *testing.T) {
	p := samplePayload()
	p.Notes = "Prevzem po 17h"
	body := renderInquiryText(p)

	for _, want := range []string{
		"Ime: Janez Novak",
		"Kovček: Standardni Kovček (420L)",
		"Trajanje: 5 dni",
		"Ocena cene: 95€ (5% popust) + 150€ kavcija",
		"Opombe: Prevzem po 17h",
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("expected %q in body:\n%s", want, body)
		}
	}
}

func TestInquirySubject(t *testing.T) {
	p := samplePayload()
	if got := inquirySubject(p); got != "Novo povpraševanje: Janez Novak — Standardni Kovček" {
		t.Fatalf("unexpected subject: %q", got)
	}

	p.BoxTitle = nil
	if got := inquirySubject(p); got != "Novo povpraševanje: Janez Novak" {
		t.Fatalf("unexpected subject: %q", got)
	}
}

func TestResendGatewaySendInquiry(t *testing.T) {
	t.Run("posts inquiry to resend", func(t *testing.T) {
		var captured resendRequest
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
				t.Errorf("unexpected auth header: %q", got)
			}
			if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
				t.Errorf("decode request: %v", err)
			}
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		g := &ResendGateway{
			httpClient: srv.Client(),
			apiKey:     "test-key",
			recipient:  "info@truga.si",
			from:       "Truga <onboarding@resend.dev>",
			endpoint:   srv.URL,
		}

		if err := g.SendInquiry(context.Background(), samplePayload()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(captured.To) != 1 || captured.To[0] != "info@truga.si" {
			t.Fatalf("unexpected recipient: %+v", captured.To)
		}
		if captured.ReplyTo != "janez@example.com" {
			t.Fatalf("unexpected reply-to: %q", captured.ReplyTo)
		}
		if !strings.Contains(captured.HTML, "Standardni Kovček") || captured.Text == "" {
			t.Fatalf("unexpected bodies: %+v", captured)
		}
	})

	t.Run("non-2xx is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))
		defer srv.Close()

		g := &ResendGateway{
			httpClient: srv.Client(),
			apiKey:     "test-key",
			recipient:  "info@truga.si",
			from:       "Truga <onboarding@resend.dev>",
			endpoint:   srv.URL,
		}

		if err := g.SendInquiry(context.Background(), samplePayload()); err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("mock mode succeeds without network", func(t *testing.T) {
		g := &ResendGateway{mockMode: true}
		if err := g.SendInquiry(context.Background(), samplePayload()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("unconfigured gateway fails", func(t *testing.T) {
		var g *ResendGateway
		if err := g.SendInquiry(context.Background(), samplePayload()); err != ErrInquiryGatewayNotConfigured {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
