package usecase

import (
	"context"
	"errors"
	"strings"

	"truga_booking/internal/domain/entities"
	"truga_booking/internal/usecase/interfaces"
)

var (
	ErrRoofBoxNotFound   = errors.New("roof box not found")
	ErrInvalidRoofBoxID  = errors.New("invalid roof box id")
	ErrInvalidRoofBoxKey = errors.New("invalid roof box slug")
)

// ICatalogUseCase exposes the read-only roof box catalog.
type ICatalogUseCase interface {
	ListBoxes(ctx context.Context) ([]entities.RoofBox, error)
	GetBoxByID(ctx context.Context, id int) (entities.RoofBox, error)
	GetBoxBySlug(ctx context.Context, slug string) (entities.RoofBox, error)
}

type CatalogUseCase struct {
	repo interfaces.IRoofBoxRepository
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(repo interfaces.IRoofBoxRepository) *CatalogUseCase {
	return &CatalogUseCase{repo: repo}
}

func (u *CatalogUseCase) ListBoxes(ctx context.Context) ([]entities.RoofBox, error) {
	return u.repo.List(ctx)
}

func (u *CatalogUseCase) GetBoxByID(ctx context.Context, id int) (entities.RoofBox, error) {
	if id <= 0 {
		return entities.RoofBox{}, ErrInvalidRoofBoxID
	}

	box, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.RoofBox{}, err
	}
	if box.ID == 0 {
		return entities.RoofBox{}, ErrRoofBoxNotFound
	}
	return box, nil
}

func (u *CatalogUseCase) GetBoxBySlug(ctx context.Context, slug string) (entities.RoofBox, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return entities.RoofBox{}, ErrInvalidRoofBoxKey
	}

	box, err := u.repo.GetBySlug(ctx, slug)
	if err != nil {
		return entities.RoofBox{}, err
	}
	if box.ID == 0 {
		return entities.RoofBox{}, ErrRoofBoxNotFound
	}
	return box, nil
}
