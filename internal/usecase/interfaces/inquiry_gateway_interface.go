package interfaces

import (
	"context"

	"truga_booking/internal/domain/entities"
)

// IInquiryGateway abstracts the external email delivery provider (Resend).
//
// The gateway owns formatting and escaping of the outgoing message; the
// payload it receives carries raw, unescaped field values.
type IInquiryGateway interface {
	SendInquiry(ctx context.Context, payload entities.InquiryPayload) error
}
