package main

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/arvindks/voicecart/internal/catalog"
	"github.com/arvindks/voicecart/internal/order"
	"github.com/arvindks/voicecart/pkg/logger"
)

// Every tool endpoint answers text/plain: the conversational layer recites
// the body verbatim, so even negative results come back with 200 and a
// spoken sentence rather than an error payload. Only malformed requests
// (which the agent should never send) get a 4xx.

// browseHandler lists catalog products with optional filters.
//
// @Summary      Browse the product catalog
// @Description  Optional filters combine with AND. Responses are plain text for speech.
// @Tags         tools
// @Produce      plain
// @Param        category   query  string  false  "Product category (mug, tshirt, hoodie, accessory)"
// @Param        min_price  query  int     false  "Minimum price in INR"
// @Param        max_price  query  int     false  "Maximum price in INR"
// @Param        color      query  string  false  "Product color"
// @Success      200  {string}  string
// @Failure      400  {string}  string
// @Router       /tools/browse [get]
func browseHandler(store *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var f catalog.Filters
		f.Category = strings.TrimSpace(c.Query("category"))
		f.Color = strings.TrimSpace(c.Query("color"))

		if v := c.Query("min_price"); v != "" {
			n, err := strconv.ParseInt(v, 10, 64)
			if err != nil || n < 0 {
				c.String(http.StatusBadRequest, "Sorry, I didn't understand that price filter.")
				return
			}
			f.MinPrice = &n
		}
		if v := c.Query("max_price"); v != "" {
			n, err := strconv.ParseInt(v, 10, 64)
			if err != nil || n < 0 {
				c.String(http.StatusBadRequest, "Sorry, I didn't understand that price filter.")
				return
			}
			f.MaxPrice = &n
		}

		c.String(http.StatusOK, catalog.FormatProductsList(store.List(f), catalog.DefaultListLimit))
	}
}

// searchHandler searches products by name, description or category.
//
// @Summary      Search for products
// @Tags         tools
// @Produce      plain
// @Param        q  query  string  true  "Search query, e.g. coffee mug"
// @Success      200  {string}  string
// @Failure      400  {string}  string
// @Router       /tools/search [get]
func searchHandler(store *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		q := strings.TrimSpace(c.Query("q"))
		if q == "" {
			c.String(http.StatusBadRequest, "What would you like to search for?")
			return
		}
		c.String(http.StatusOK, catalog.FormatProductsList(store.Search(q), catalog.DefaultListLimit))
	}
}

// productDetailsHandler returns the full card for one product.
//
// @Summary      Get product details
// @Tags         tools
// @Produce      plain
// @Param        id  path  string  true  "Product ID, e.g. mug-001"
// @Success      200  {string}  string
// @Router       /tools/products/{id} [get]
func productDetailsHandler(store *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		p, ok := store.GetByID(id)
		if !ok {
			c.String(http.StatusOK, "Sorry, I couldn't find a product with ID %s.", id)
			return
		}
		c.String(http.StatusOK, catalog.FormatProductDetails(p))
	}
}

type placeOrderRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
	Size      string `json:"size"`
	Color     string `json:"color"`
}

// placeOrderHandler creates a confirmed order for a single product.
//
// @Summary      Place an order
// @Description  Falls back to a name search when product_id is not an exact catalog id.
// @Tags         tools
// @Accept       json
// @Produce      plain
// @Param        request  body  placeOrderRequest  true  "Line item"
// @Success      201  {string}  string
// @Failure      400  {string}  string
// @Router       /tools/orders [post]
func placeOrderHandler(store *catalog.Store, ledger *order.Ledger, log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req placeOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.String(http.StatusBadRequest, "Sorry, I couldn't read that order request.")
			return
		}
		req.ProductID = strings.TrimSpace(req.ProductID)
		if req.ProductID == "" {
			c.String(http.StatusBadRequest, "Which product would you like to order?")
			return
		}
		if req.Quantity < 0 {
			c.String(http.StatusBadRequest, "The quantity has to be at least 1.")
			return
		}

		p, ok := store.GetByID(req.ProductID)
		if !ok {
			// The agent sometimes hands us a product name instead of an id.
			results := store.Search(req.ProductID)
			if len(results) == 0 {
				c.String(http.StatusOK, "Sorry, I couldn't find that product. Please try browsing or searching first to see available products.")
				return
			}
			p = results[0]
			log.Info("resolved product by name search",
				logger.String("query", req.ProductID),
				logger.String("product_id", p.ID),
			)
		}

		o, err := ledger.CreateOrder([]order.LineItem{{
			ProductID: p.ID,
			Quantity:  req.Quantity,
			Size:      strings.TrimSpace(req.Size),
			Color:     strings.TrimSpace(req.Color),
		}})
		if err != nil {
			// Persist failed but the order was built; confirm it anyway
			// rather than dropping the conversation.
			log.Error("order persist failed", logger.String("order_id", o.ID), logger.Err(err))
		}

		c.String(http.StatusCreated,
			"Order placed successfully!\n\n%s\n\nWould you like to order anything else, or are you done shopping?",
			order.FormatOrderSummary(o))
	}
}

// lastOrderHandler returns the most recent order.
//
// @Summary      View the last order
// @Tags         tools
// @Produce      plain
// @Success      200  {string}  string
// @Router       /tools/orders/last [get]
func lastOrderHandler(ledger *order.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		o, ok := ledger.GetLastOrder()
		if !ok {
			c.String(http.StatusOK, "You haven't placed any orders yet. Would you like to browse our products?")
			return
		}
		c.String(http.StatusOK, order.FormatOrderSummary(o))
	}
}

// orderSummaryHandler recaps every order placed so far.
//
// @Summary      Get the complete order summary
// @Tags         tools
// @Produce      plain
// @Success      200  {string}  string
// @Router       /tools/orders/summary [get]
func orderSummaryHandler(ledger *order.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders := ledger.ListOrders()
		if len(orders) == 0 {
			c.String(http.StatusOK, "You haven't placed any orders yet. Would you like to browse our products?")
			return
		}
		c.String(http.StatusOK, order.FormatCheckoutSummary(orders))
	}
}
