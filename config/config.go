// Package config defines the environment variable and command-line flags
// supported by this service and includes default values for particular
// fields.
package config

import (
	"fmt"
	"sync"

	"github.com/companieshouse/gofigure"
)

var cfg *Config
var mtx sync.Mutex

// Config defines the configuration options for this service.
type Config struct {
	BindAddr           string   `env:"BIND_ADDR"                flag:"bind-addr"                flagDesc:"Bind address"`
	Database           string   `env:"MONGODB_DATABASE"         flag:"mongodb-database"         flagDesc:"MongoDB database for data"`
	MongoDBURL         string   `env:"MONGODB_URL"              flag:"mongodb-url"              flagDesc:"MongoDB server URL"`
	OrdersCollection   string   `env:"MONGODB_ORDERS_COLLECTION"   flag:"mongodb-orders-collection"   flagDesc:"MongoDB collection for order data"`
	CartsCollection    string   `env:"MONGODB_CARTS_COLLECTION"    flag:"mongodb-carts-collection"    flagDesc:"MongoDB collection for active shopper carts"`
	ProductsCollection string   `env:"MONGODB_PRODUCTS_COLLECTION" flag:"mongodb-products-collection" flagDesc:"MongoDB collection for product stock"`
	MerchantID         string   `env:"PAYPOSSIBLE_MERCHANT_ID"  flag:"paypossible-merchant-id"  flagDesc:"PayPossible merchant ID"`
	APIToken           string   `env:"PAYPOSSIBLE_API_TOKEN"    flag:"paypossible-api-token"    flagDesc:"Token used to authenticate lead creation calls with PayPossible"`
	TestMode           bool     `env:"PAYPOSSIBLE_TEST_MODE"    flag:"paypossible-test-mode"    flagDesc:"Send provider calls to the PayPossible staging environment"`
	ProviderLiveDomain string   `env:"PAYPOSSIBLE_LIVE_DOMAIN"  flag:"paypossible-live-domain"  flagDesc:"PayPossible production domain"`
	ProviderTestDomain string   `env:"PAYPOSSIBLE_TEST_DOMAIN"  flag:"paypossible-test-domain"  flagDesc:"PayPossible staging domain"`
	WebhookBaseURL     string   `env:"WEBHOOK_BASE_URL"         flag:"webhook-base-url"         flagDesc:"Public base URL for this API, used to build provider callback URLs"`
	PlatformAPIKey     string   `env:"PLATFORM_API_KEY"         flag:"platform-api-key"         flagDesc:"API key the commerce platform presents on private endpoints"`
	BrokerAddr         []string `env:"KAFKA_BROKER_ADDR"        flag:"broker-addr"              flagDesc:"Kafka broker address"`
	SchemaRegistryURL  string   `env:"SCHEMA_REGISTRY_URL"      flag:"schema-registry-url"      flagDesc:"Schema registry URL"`
}

// DefaultConfig returns a pointer to a Config instance that has been populated
// with default values.
func DefaultConfig() *Config {
	return &Config{
		Database:           "commercehub",
		OrdersCollection:   "orders",
		CartsCollection:    "carts",
		ProductsCollection: "products",
		ProviderLiveDomain: "app.paypossible.com",
		ProviderTestDomain: "app-staging.paypossible.com",
	}
}

// Get returns a pointer to a Config instance that has been populated with
// values provided by the environment or command-line flags, or with default
// values if none are provided.
func Get() (*Config, error) {
	mtx.Lock()
	defer mtx.Unlock()

	if cfg != nil {
		return cfg, nil
	}

	cfg = DefaultConfig()

	err := gofigure.Gofigure(cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// ProviderDomain returns the PayPossible domain selected by the test mode flag.
func (c *Config) ProviderDomain() string {
	if c.TestMode {
		return c.ProviderTestDomain
	}
	return c.ProviderLiveDomain
}

// MerchantURL returns the provider-side URL reference for the configured merchant.
func (c *Config) MerchantURL() string {
	return fmt.Sprintf("https://%s/api/v1/merchants/%s/", c.ProviderDomain(), c.MerchantID)
}
