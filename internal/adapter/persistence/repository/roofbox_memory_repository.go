package repository

import (
	"context"
	"sort"

	"truga_booking/internal/domain/entities"
	"truga_booking/internal/usecase/interfaces"
)

// DefaultRoofBoxes is the rental fleet as listed on the marketing site. It
// backs the in-memory catalog and seeds the DynamoDB table.
var DefaultRoofBoxes = []entities.RoofBox{
	{
		ID:          1,
		Slug:        "kompaktni-kovcek",
		Title:       "Kompaktni Kovček",
		Size:        "320L",
		Capacity:    "Idealno za vikend izlete",
		PricePerDay: 15,
		Deposit:     100,
		Image:       "https://placehold.co/800x600/3d6b1f/f5f5f0?text=320L+Kompaktni&font=montserrat",
		Brand:       "Thule",
	},
	{
		ID:          2,
		Slug:        "standardni-kovcek",
		Title:       "Standardni Kovček",
		Size:        "450L",
		Capacity:    "Za 3-4 osebe na dopustu",
		PricePerDay: 20,
		Deposit:     150,
		Image:       "https://placehold.co/800x600/2d5016/f5f5f0?text=450L+Standardni&font=montserrat",
		Brand:       "Thule",
		IsPopular:   true,
	},
	{
		ID:          3,
		Slug:        "druzinski-kovcek",
		Title:       "Družinski Kovček",
		Size:        "600L",
		Capacity:    "Za daljša potovanja",
		PricePerDay: 25,
		Deposit:     200,
		Image:       "https://placehold.co/800x600/4a7c2a/f5f5f0?text=600L+Druzinski&font=montserrat",
		Brand:       "Yakima",
	},
	{
		ID:          4,
		Slug:        "premium-xl",
		Title:       "Premium XL",
		Size:        "750L",
		Capacity:    "Maksimalna kapaciteta",
		PricePerDay: 30,
		Deposit:     250,
		Image:       "https://placehold.co/800x600/1a1a1a/f5f5f0?text=750L+Premium+XL&font=montserrat",
		Brand:       "Thule",
	},
}

// RoofBoxMemoryRepository serves the catalog from process memory. The
// default deployment uses it; DynamoDB is opt-in via CATALOG_SOURCE.
type RoofBoxMemoryRepository struct {
	byID   map[int]entities.RoofBox
	bySlug map[string]entities.RoofBox
}

var _ interfaces.IRoofBoxRepository = (*RoofBoxMemoryRepository)(nil)

func NewRoofBoxMemoryRepository(boxes []entities.RoofBox) *RoofBoxMemoryRepository {
	r := &RoofBoxMemoryRepository{
		byID:   make(map[int]entities.RoofBox, len(boxes)),
		bySlug: make(map[string]entities.RoofBox, len(boxes)),
	}
	for _, b := range boxes {
		r.byID[b.ID] = b
		r.bySlug[b.Slug] = b
	}
	return r
}

func (r *RoofBoxMemoryRepository) GetByID(_ context.Context, id int) (entities.RoofBox, error) {
	return r.byID[id], nil
}

func (r *RoofBoxMemoryRepository) GetBySlug(_ context.Context, slug string) (entities.RoofBox, error) {
	return r.bySlug[slug], nil
}

func (r *RoofBoxMemoryRepository) List(_ context.Context) ([]entities.RoofBox, error) {
	boxes := make([]entities.RoofBox, 0, len(r.byID))
	for _, b := range r.byID {
		boxes = append(boxes, b)
	}
	sortRoofBoxes(boxes)
	return boxes, nil
}

func sortRoofBoxes(boxes []entities.RoofBox) {
	sort.Slice(boxes, func(i, j int) bool { return boxes[i].ID < boxes[j].ID })
}
