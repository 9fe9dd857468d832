// Package order owns the append-only order collection. Every mutation is a
// load-append-persist of the whole document, serialized by a mutex so
// concurrent tool calls cannot lose an update.
package order

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/arvindks/voicecart/internal/catalog"
	"github.com/arvindks/voicecart/pkg/logger"
)

type Ledger struct {
	path    string
	catalog *catalog.Store
	log     logger.Logger

	mu sync.Mutex // guards the load-append-persist cycle
}

func NewLedger(path string, cat *catalog.Store, log logger.Logger) *Ledger {
	return &Ledger{path: path, catalog: cat, log: log}
}

type document struct {
	Orders []Order `json:"orders"`
}

func (l *Ledger) load() []Order {
	raw, err := os.ReadFile(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			l.log.Warn("orders file not found", logger.String("path", l.path))
		} else {
			l.log.Error("orders file not readable", logger.String("path", l.path), logger.Err(err))
		}
		return nil
	}
	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		l.log.Error("orders json malformed", logger.String("path", l.path), logger.Err(err))
		return nil
	}
	return doc.Orders
}

func (l *Ledger) save(orders []Order) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(document{Orders: orders}); err != nil {
		return fmt.Errorf("encode orders: %w", err)
	}
	if err := os.WriteFile(l.path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write orders: %w", err)
	}
	return nil
}

// CreateOrder resolves each line item against the catalog, prices it with
// the current product data and appends the resulting order to the ledger.
// Line items whose product id does not resolve are dropped; the order is
// still created from whatever remains. The returned error reports a failed
// persist only - the constructed order is returned either way.
func (l *Ledger) CreateOrder(items []LineItem) (Order, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	orders := l.load()
	now := time.Now()
	o := Order{
		ID:        nextID(orders, now),
		Currency:  catalog.DefaultCurrency,
		Status:    StatusConfirmed,
		CreatedAt: now.Format(time.RFC3339),
	}

	total := decimal.Zero
	for _, li := range items {
		p, ok := l.catalog.GetByID(li.ProductID)
		if !ok {
			l.log.Warn("product not found, dropping line item", logger.String("product_id", li.ProductID))
			continue
		}
		qty := li.Quantity
		if qty < 1 {
			qty = 1
		}
		total = total.Add(decimal.NewFromInt(p.Price).Mul(decimal.NewFromInt(qty)))
		o.Items = append(o.Items, Item{
			ProductID:   p.ID,
			ProductName: p.Name,
			Quantity:    qty,
			UnitPrice:   p.Price,
			Currency:    p.CurrencyOrDefault(),
			Size:        li.Size,
			Color:       li.Color,
		})
	}
	o.Total = total.IntPart()

	orders = append(orders, o)
	if err := l.save(orders); err != nil {
		l.log.Error("persist orders failed", logger.String("order_id", o.ID), logger.Err(err))
		return o, err
	}

	l.log.Info("order created",
		logger.String("order_id", o.ID),
		logger.Int("items", len(o.Items)),
		logger.Int64("total", o.Total),
	)
	return o, nil
}

// GetLastOrder returns the most recently appended order.
func (l *Ledger) GetLastOrder() (Order, bool) {
	orders := l.load()
	if len(orders) == 0 {
		return Order{}, false
	}
	return orders[len(orders)-1], true
}

func (l *Ledger) GetOrderByID(id string) (Order, bool) {
	for _, o := range l.load() {
		if o.ID == id {
			return o, true
		}
	}
	return Order{}, false
}

// ListOrders returns the full collection in storage order.
func (l *Ledger) ListOrders() []Order {
	return l.load()
}

// nextID derives an order id from the creation second, suffixing a counter
// when that second already produced an order.
func nextID(existing []Order, now time.Time) string {
	id := "ORD-" + now.Format("20060102150405")
	if !idTaken(existing, id) {
		return id
	}
	for n := 2; ; n++ {
		candidate := fmt.Sprintf("%s-%d", id, n)
		if !idTaken(existing, candidate) {
			return candidate
		}
	}
}

func idTaken(orders []Order, id string) bool {
	for _, o := range orders {
		if o.ID == id {
			return true
		}
	}
	return false
}
