package config

import (
	"errors"
	"os"
	"strings"
)

// PORT is the fixed HTTP port the checkout server listens on.
const PORT = 8080

const (
	EnvPublicKey   = "MERCADO_PAGO_SAMPLE_PUBLIC_KEY"
	EnvAccessToken = "MERCADO_PAGO_SAMPLE_ACCESS_TOKEN"
)

var (
	ErrMissingPublicKey   = errors.New("PUBLIC KEY não definida")
	ErrMissingAccessToken = errors.New("ACCESS TOKEN não definido")
)

// Config holds the process-wide settings. It is built once by Load and
// handed to whatever constructs the gateway client and the router.
//
// Only the two Mercado Pago credentials are mandatory. Everything else is an
// optional local-development knob:
//   - GatewayMock (PAYMENT_GATEWAY_MOCK / MERCADOPAGO_MOCK) skips the real API
//   - PaymentsTable (PAYMENTS_TABLE) enables recording approved payments in DynamoDB
type Config struct {
	PublicKey   string
	AccessToken string
	GatewayMock bool

	PaymentsTable string
	DynamoDB      DynamoDBConfig
}

// DynamoDBConfig is only used when PaymentsTable is set.
type DynamoDBConfig struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Endpoint        string
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	cfg := Config{
		PublicKey:     strings.TrimSpace(os.Getenv(EnvPublicKey)),
		AccessToken:   strings.TrimSpace(os.Getenv(EnvAccessToken)),
		GatewayMock:   isGatewayMockEnabled(),
		PaymentsTable: strings.TrimSpace(os.Getenv("PAYMENTS_TABLE")),
		DynamoDB: DynamoDBConfig{
			Region:          getenvDefault("AWS_REGION", "us-east-1"),
			AccessKeyID:     getenvDefault("AWS_ACCESS_KEY_ID", "local"),
			SecretAccessKey: getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
			Endpoint:        os.Getenv("DYNAMODB_ENDPOINT"),
		},
	}

	if cfg.PublicKey == "" {
		return Config{}, ErrMissingPublicKey
	}
	if cfg.AccessToken == "" {
		return Config{}, ErrMissingAccessToken
	}
	return cfg, nil
}

// RecordsPayments reports whether approved payments should be persisted.
func (c Config) RecordsPayments() bool {
	return c.PaymentsTable != ""
}

func isGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
