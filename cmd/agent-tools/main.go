package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/arvindks/voicecart/docs"
	"github.com/arvindks/voicecart/internal/catalog"
	"github.com/arvindks/voicecart/internal/config"
	"github.com/arvindks/voicecart/internal/httpx"
	"github.com/arvindks/voicecart/internal/order"
	"github.com/arvindks/voicecart/pkg/logger"
)

// @title        Voicecart Agent Tools API
// @version      1.0
// @description  Tool endpoints for the voice shopping assistant. Every response is plain text formatted for speech.
func main() {
	cfg := config.Load()

	zl, err := logger.New(cfg.AppEnv)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	store := catalog.NewStore(cfg.CatalogFile, zl)
	ledger := order.NewLedger(cfg.OrdersFile, store, zl)

	if cfg.AppEnv == "production" || cfg.AppEnv == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), httpx.RequestID(), httpx.Logger(zl))

	r.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	registerTools(r, store, ledger, zl)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	zl.Info("agent-tools listening",
		logger.String("addr", cfg.AgentToolsAddr),
		logger.String("catalog", cfg.CatalogFile),
		logger.String("orders", cfg.OrdersFile),
	)
	if err := r.Run(cfg.AgentToolsAddr); err != nil {
		zl.Fatal("server stopped", logger.Err(err))
	}
}

func registerTools(r *gin.Engine, store *catalog.Store, ledger *order.Ledger, zl logger.Logger) {
	r.GET("/tools/browse", browseHandler(store))
	r.GET("/tools/search", searchHandler(store))
	r.GET("/tools/products/:id", productDetailsHandler(store))
	r.POST("/tools/orders", placeOrderHandler(store, ledger, zl))
	r.GET("/tools/orders/last", lastOrderHandler(ledger))
	r.GET("/tools/orders/summary", orderSummaryHandler(ledger))
}
