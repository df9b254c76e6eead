package config

import (
	"os"
	"strings"
)

// Config is centralized process configuration.
// Keep infra values here and pass typed config into builders.
type Config struct {
	ServiceName  string
	HTTPPort     string
	PostgresDSN  string
	RedisAddr    string
	KafkaBrokers []string

	// BootstrapAdminID is the sole administrator installed when the access
	// policy starts with no prior role state.
	BootstrapAdminID string

	EnableRoleCache      bool
	EnableOutboxRelay    bool
	OutboxRelayBatchSize int
}

func Load() (Config, error) {
	service := os.Getenv("SERVICE_NAME")
	if service == "" {
		service = "vestra"
	}

	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8080"
	}

	var brokers []string
	for _, value := range strings.Split(os.Getenv("KAFKA_BROKERS"), ",") {
		value = strings.TrimSpace(value)
		if value != "" {
			brokers = append(brokers, value)
		}
	}
	if len(brokers) == 0 {
		brokers = []string{"localhost:9092"}
	}

	admin := strings.TrimSpace(os.Getenv("BOOTSTRAP_ADMIN_ID"))
	if admin == "" {
		admin = "root"
	}

	return Config{
		ServiceName:      service,
		HTTPPort:         port,
		PostgresDSN:      os.Getenv("POSTGRES_DSN"),
		RedisAddr:        strings.TrimSpace(os.Getenv("REDIS_ADDR")),
		KafkaBrokers:     brokers,
		BootstrapAdminID: admin,

		EnableRoleCache:      envBool("ENABLE_ROLE_CACHE", true),
		EnableOutboxRelay:    envBool("ENABLE_OUTBOX_RELAY", true),
		OutboxRelayBatchSize: 100,
	}, nil
}

func envBool(name string, fallback bool) bool {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return fallback
	}
	switch raw {
	case "1", "true", "t", "yes", "y", "on":
		return true
	case "0", "false", "f", "no", "n", "off":
		return false
	default:
		return fallback
	}
}
