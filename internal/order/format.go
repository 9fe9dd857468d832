package order

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// FormatOrderSummary renders one order for voice output: header, one line
// per item, grand total.
func FormatOrderSummary(o Order) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Order %s - Status: %s\n\n", o.ID, o.Status)
	b.WriteString("Items:\n")

	for _, it := range o.Items {
		lineTotal := decimal.NewFromInt(it.UnitPrice).Mul(decimal.NewFromInt(it.Quantity))
		fmt.Fprintf(&b, "- %s x %d = %s %s", it.ProductName, it.Quantity, lineTotal, o.Currency)
		if it.Size != "" {
			fmt.Fprintf(&b, " (Size: %s)", it.Size)
		}
		if it.Color != "" {
			fmt.Fprintf(&b, " (Color: %s)", it.Color)
		}
		b.WriteByte('\n')
	}

	fmt.Fprintf(&b, "\nTotal: %d %s", o.Total, o.Currency)
	return b.String()
}

// FormatCheckoutSummary renders the end-of-session recap across all orders
// as one spoken paragraph. The grand total is recomputed from the item
// snapshots rather than read from the stored order totals; the two must
// agree. Callers handle the empty-ledger case.
func FormatCheckoutSummary(orders []Order) string {
	var b strings.Builder
	plural := ""
	if len(orders) != 1 {
		plural = "s"
	}
	fmt.Fprintf(&b, "Here's your complete order summary. You placed %d order%s.\n\n", len(orders), plural)

	grandTotal := decimal.Zero
	for _, o := range orders {
		for _, it := range o.Items {
			lineTotal := decimal.NewFromInt(it.UnitPrice).Mul(decimal.NewFromInt(it.Quantity))
			grandTotal = grandTotal.Add(lineTotal)

			fmt.Fprintf(&b, "%d %s", it.Quantity, it.ProductName)
			if it.Quantity > 1 {
				fmt.Fprintf(&b, " at %d rupees each", it.UnitPrice)
			}
			fmt.Fprintf(&b, " for %s rupees", lineTotal)
			if it.Size != "" {
				fmt.Fprintf(&b, ", size %s", it.Size)
			}
			if it.Color != "" {
				fmt.Fprintf(&b, ", %s color", it.Color)
			}
			b.WriteString(". ")
		}
	}

	fmt.Fprintf(&b, "\n\nYour grand total is %s rupees. Thank you for shopping with us!", grandTotal)
	return b.String()
}
