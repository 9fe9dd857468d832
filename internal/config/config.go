package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	AgentToolsAddr string
	CatalogFile    string
	OrdersFile     string
	AppEnv         string
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func Load() Config {
	_ = godotenv.Load() // load .env if it exists
	return Config{
		AgentToolsAddr: getenv("AGENT_TOOLS_ADDR", ":8083"),
		CatalogFile:    getenv("CATALOG_FILE", "data/products.json"),
		OrdersFile:     getenv("ORDERS_FILE", "data/orders.json"),
		AppEnv:         getenv("APP_ENV", "development"),
	}
}
