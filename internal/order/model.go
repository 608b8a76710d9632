package order

import "time"

// OrderStatus is the coarse order-level status. It is persisted
// independently of the line items and never derived from them; the
// aggregate shown to buyers is computed on read (see OverallStatus).
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusConfirmed OrderStatus = "confirmed"
	StatusShipped   OrderStatus = "shipped"
	StatusDelivered OrderStatus = "delivered"
	StatusCancelled OrderStatus = "cancelled"
)

type Address struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Street    string `json:"street"`
	City      string `json:"city"`
	State     string `json:"state"`
	Zipcode   string `json:"zipcode"`
	Country   string `json:"country"`
	Phone     string `json:"phone"`
}

// LineItem is one entry of an order. Name, image and price are captured
// from the catalog at order time and never re-read; CatererID is the
// owner captured at creation so ownership checks need no catalog join.
// Status is the only mutable field of a placed order.
type LineItem struct {
	RecipeID  string     `json:"recipeId"`
	Name      string     `json:"name"`
	Image     string     `json:"image"`
	Price     float64    `json:"price"`
	Quantity  int        `json:"quantity"`
	Status    ItemStatus `json:"status"`
	CatererID string     `json:"createdBy"`
}

type Order struct {
	ID          string      `json:"id"`
	UserID      string      `json:"user"`
	Items       []LineItem  `json:"items"`
	Address     Address     `json:"address"`
	Method      string      `json:"method"`
	TotalAmount float64     `json:"totalAmount"`
	Status      OrderStatus `json:"status"`
	CreatedAt   time.Time   `json:"createdAt"`

	// Overall is the read-time aggregate of the item statuses. It is
	// filled when orders are listed and never stored.
	Overall ItemStatus `json:"overallStatus,omitempty"`
}

type PlaceOrderItem struct {
	RecipeID string `json:"recipeId"`
	Quantity int    `json:"quantity"`
}

type PlaceOrderParams struct {
	UserID      string
	Items       []PlaceOrderItem
	Address     Address
	Method      string
	TotalAmount float64
}
