package recipe

import "time"

type Recipe struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Ingredients []string  `json:"ingredients"`
	Category    string    `json:"category"`
	Image       string    `json:"image"`
	Price       float64   `json:"price"`
	OwnerID     string    `json:"createdBy"`
	OwnerName   string    `json:"ownerName,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Snapshot is the slice of a recipe captured into an order line item at
// checkout. Later catalog edits never flow back into placed orders.
type Snapshot struct {
	Name    string
	Image   string
	Price   float64
	OwnerID string
}

type CreateParams struct {
	Name        string
	Description string
	Ingredients []string
	Category    string
	Image       string
	Price       float64
	OwnerID     string
}

type UpdateParams struct {
	ID          string
	Name        string
	Description string
	Ingredients []string
	Category    string
	Image       string
	Price       float64
	OwnerID     string
}
