package catalog

// DefaultCurrency is assumed whenever a product omits its currency code.
const DefaultCurrency = "INR"

type Product struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	Category    string            `json:"category,omitempty"`
	// Price is in whole currency units (no minor units in the catalog).
	Price      int64             `json:"price"`
	Currency   string            `json:"currency,omitempty"`
	Attributes map[string]string `json:"attributes,omitempty"`
}

// CurrencyOrDefault returns the product currency, defaulting when absent.
func (p Product) CurrencyOrDefault() string {
	if p.Currency == "" {
		return DefaultCurrency
	}
	return p.Currency
}

// Filters narrows List results. Nil price bounds mean "no bound"; empty
// strings mean "no filter". All set fields must match (logical AND).
type Filters struct {
	Category string
	MinPrice *int64
	MaxPrice *int64
	Color    string
}

func (f Filters) isZero() bool {
	return f.Category == "" && f.MinPrice == nil && f.MaxPrice == nil && f.Color == ""
}
