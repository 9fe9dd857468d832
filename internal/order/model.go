package order

// StatusConfirmed is the only order status in use; orders are created
// confirmed and never transition.
const StatusConfirmed = "CONFIRMED"

// LineItem is a caller-supplied purchase request. Quantity values below 1
// are treated as 1.
type LineItem struct {
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
	Size      string `json:"size,omitempty"`
	Color     string `json:"color,omitempty"`
}

// Item is a persisted order line. UnitPrice and Currency are snapshots of
// the product at creation time; later catalog edits do not touch them.
type Item struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    int64  `json:"quantity"`
	UnitPrice   int64  `json:"unit_price"`
	Currency    string `json:"currency"`
	Size        string `json:"size,omitempty"`
	Color       string `json:"color,omitempty"`
}

type Order struct {
	ID    string `json:"id"`
	Items []Item `json:"items"`
	Total int64  `json:"total"`
	// Currency applies to the order total and is always the system
	// default, independent of the per-item snapshots.
	Currency  string `json:"currency"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}
