package response

import "truga_booking/internal/domain/entities"

type RoofBoxResponse struct {
	ID          int     `json:"id"`
	Slug        string  `json:"slug"`
	Title       string  `json:"title"`
	Size        string  `json:"size"`
	Capacity    string  `json:"capacity"`
	PricePerDay float64 `json:"price_per_day"`
	Deposit     float64 `json:"deposit"`
	Image       string  `json:"image"`
	Brand       string  `json:"brand"`
	IsPopular   bool    `json:"is_popular"`
}

func FromRoofBox(b entities.RoofBox) RoofBoxResponse {
	return RoofBoxResponse{
		ID:          b.ID,
		Slug:        b.Slug,
		Title:       b.Title,
		Size:        b.Size,
		Capacity:    b.Capacity,
		PricePerDay: b.PricePerDay,
		Deposit:     b.Deposit,
		Image:       b.Image,
		Brand:       b.Brand,
		IsPopular:   b.IsPopular,
	}
}

func FromRoofBoxes(boxes []entities.RoofBox) []RoofBoxResponse {
	out := make([]RoofBoxResponse, 0, len(boxes))
	for _, b := range boxes {
		out = append(out, FromRoofBox(b))
	}
	return out
}
