package catalog

import (
	"fmt"
	"sort"
	"strings"
)

// DefaultListLimit caps how many products a spoken listing names.
const DefaultListLimit = 5

// FormatProductSummary renders one product as a single spoken sentence.
func FormatProductSummary(p Product) string {
	return fmt.Sprintf("%s (ID: %s) - %d %s. %s", p.Name, p.ID, p.Price, p.CurrencyOrDefault(), p.Description)
}

// FormatProductsList renders a result set for voice output, showing at
// most maxItems products and reporting how many were hidden.
func FormatProductsList(products []Product, maxItems int) string {
	if maxItems <= 0 {
		maxItems = DefaultListLimit
	}
	if len(products) == 0 {
		return "No products found matching your criteria."
	}

	count := len(products)
	shown := products
	if count > maxItems {
		shown = products[:maxItems]
	}

	var b strings.Builder
	plural := ""
	if count != 1 {
		plural = "s"
	}
	fmt.Fprintf(&b, "I found %d product%s. ", count, plural)
	if count > maxItems {
		fmt.Fprintf(&b, "Here are the first %d:\n\n", maxItems)
	} else {
		b.WriteString("Here they are:\n\n")
	}
	for i, p := range shown {
		fmt.Fprintf(&b, "%d. %s\n", i+1, FormatProductSummary(p))
	}
	if count > maxItems {
		fmt.Fprintf(&b, "\nThere are %d more products. Would you like to see more or filter further?", count-maxItems)
	}
	return b.String()
}

// FormatProductDetails renders the full product card, attributes included.
func FormatProductDetails(p Product) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s - %d %s\n\n%s\n\n", p.Name, p.Price, p.CurrencyOrDefault(), p.Description)

	if len(p.Attributes) > 0 {
		keys := make([]string, 0, len(p.Attributes))
		for k := range p.Attributes {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		b.WriteString("Details:\n")
		for _, k := range keys {
			fmt.Fprintf(&b, "- %s: %s\n", capitalize(k), p.Attributes[k])
		}
	}
	return b.String()
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
