package entities

// RoofBox is one rentable roof box from the catalog.
//
// Storage model (DynamoDB):
//   - PK: id (number)
//
// The catalog is read-only from the wizard's point of view: the reservation
// flow only ever resolves a box by id to price and describe it.
type RoofBox struct {
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
