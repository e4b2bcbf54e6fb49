package interfaces

import (
	"context"

	"truga_booking/internal/domain/wizard"
)

// IWizardSessionStore abstracts storage for open wizard sessions.
//
// Sessions are ephemeral by design (a reservation draft never outlives the
// wizard that owns it), so the production implementation is in-memory, but
// the use case only ever talks to this port.
type IWizardSessionStore interface {
	Create(ctx context.Context, s wizard.Session) (wizard.Session, error)
	GetByID(ctx context.Context, id string) (wizard.Session, error)
	Save(ctx context.Context, s wizard.Session) (wizard.Session, error)
	Delete(ctx context.Context, id string) error
}
