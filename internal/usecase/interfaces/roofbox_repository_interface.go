package interfaces

import (
	"context"

	"truga_booking/internal/domain/entities"
)

// IRoofBoxRepository abstracts the read-only roof box catalog.
//
// Misses return a zero-value RoofBox (ID == 0) with a nil error; the
// reservation flow degrades to "no pricing shown" rather than failing.
type IRoofBoxRepository interface {
	GetByID(ctx context.Context, id int) (entities.RoofBox, error)
	GetBySlug(ctx context.Context, slug string) (entities.RoofBox, error)
	List(ctx context.Context) ([]entities.RoofBox, error)
}
