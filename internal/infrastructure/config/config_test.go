package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, 9093, cfg.GRPCPort)
	assert.Equal(t, 8093, cfg.HTTPPort)
	assert.Equal(t, "origination.events", cfg.Kafka.Topic)
	assert.Equal(t, "origination-service", cfg.Kafka.ConsumerGroup)
	assert.Empty(t, cfg.Kafka.PaymentsTopic)
	assert.False(t, cfg.TLS.Enabled)
	assert.Equal(t, 60*time.Minute, cfg.JWT.Expiration)
	assert.Equal(t, "loanbridge", cfg.JWT.Issuer)
	assert.Empty(t, cfg.RiskModel.BaseURL)
}

func TestLoad_TLSFromEnvironment(t *testing.T) {
	t.Setenv("TLS_ENABLED", "true")
	t.Setenv("TLS_CERT_FILE", "/etc/certs/server.pem")
	t.Setenv("TLS_KEY_FILE", "/etc/certs/server-key.pem")

	cfg := Load()

	assert.True(t, cfg.TLS.Enabled)
	assert.Equal(t, "/etc/certs/server.pem", cfg.TLS.CertFile)
	assert.Equal(t, "/etc/certs/server-key.pem", cfg.TLS.KeyFile)
}

func TestLoad_JWTExpirationFromEnvironment(t *testing.T) {
	t.Setenv("JWT_EXPIRATION_MINUTES", "15")

	cfg := Load()
	assert.Equal(t, 15*time.Minute, cfg.JWT.Expiration)
}

func TestLoad_KafkaBrokerList(t *testing.T) {
	t.Setenv("KAFKA_BROKERS", "broker-1:9092,broker-2:9092")
	t.Setenv("KAFKA_PAYMENTS_TOPIC", "payments.instructions")

	cfg := Load()
	assert.Equal(t, []string{"broker-1:9092", "broker-2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, "payments.instructions", cfg.Kafka.PaymentsTopic)
}

func TestValidate_PanicsOnMissingSecrets(t *testing.T) {
	cfg := Load()
	cfg.DB.Password = ""
	assert.Panics(t, func() { cfg.Validate() })

	cfg.DB.Password = "pw"
	cfg.JWT.Secret = ""
	assert.Panics(t, func() { cfg.Validate() })

	cfg.JWT.Secret = "secret"
	assert.NotPanics(t, func() { cfg.Validate() })
}
