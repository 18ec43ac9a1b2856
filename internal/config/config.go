package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	Environment string
	// Storage: "memory" or "sqlite"
	StorageDriver string
	SQLitePath    string
	// JWT Configuration
	JWTSecret       string
	TokenTTLMinutes int
	// Seed passwords for the built-in accounts; an empty value disables the account
	AdminPassword  string
	StaffPassword  string
	ViewerPassword string
	// Redis Configuration (optional - for cache)
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	CacheTTL      int // Cache TTL in seconds
	UseCache      bool
	// Kafka Configuration (optional)
	KafkaBrokers     []string
	KafkaTopicOrders string
	KafkaTopicStock  string
	KafkaClientID    string
	KafkaGroupID     string
	KafkaAcks        string
	KafkaRetries     int
	UseKafka         bool
	// Order lifecycle
	StrictStatusTransitions bool
	IdempotencyTTLSeconds   int
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	// Parse Kafka brokers (comma-separated)
	kafkaBrokersStr := getEnv("KAFKA_BROKERS", "localhost:9093")
	kafkaBrokers := strings.Split(kafkaBrokersStr, ",")
	for i, broker := range kafkaBrokers {
		kafkaBrokers[i] = strings.TrimSpace(broker)
	}

	return &Config{
		Port:          getEnv("PORT", "8080"),
		Environment:   getEnv("ENVIRONMENT", "development"),
		StorageDriver: strings.ToLower(getEnv("STORAGE_DRIVER", "memory")),
		SQLitePath:    getEnv("SQLITE_PATH", "./kitchen.db"),
		// JWT Configuration
		JWTSecret:       getEnv("JWT_SECRET", "your-secret-key-change-in-production-min-32-chars"),
		TokenTTLMinutes: getEnvAsInt("TOKEN_TTL_MINUTES", 24*60),
		AdminPassword:   getEnv("ADMIN_PASSWORD", "admin123"),
		StaffPassword:   getEnv("STAFF_PASSWORD", "staff123"),
		ViewerPassword:  getEnv("VIEWER_PASSWORD", "viewer123"),
		// Redis Configuration
		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvAsInt("REDIS_DB", 0),
		CacheTTL:      getEnvAsInt("CACHE_TTL", 60),
		UseCache:      getEnvAsBool("USE_CACHE", false),
		// Kafka Configuration
		KafkaBrokers:     kafkaBrokers,
		KafkaTopicOrders: getEnv("KAFKA_TOPIC_ORDERS", "kitchen.orders"),
		KafkaTopicStock:  getEnv("KAFKA_TOPIC_STOCK", "kitchen.stock"),
		KafkaClientID:    getEnv("KAFKA_CLIENT_ID", "kitchen-service"),
		KafkaGroupID:     getEnv("KAFKA_GROUP_ID", "kitchen-service-cache"),
		KafkaAcks:        getEnv("KAFKA_ACKS", "all"),
		KafkaRetries:     getEnvAsInt("KAFKA_RETRIES", 3),
		UseKafka:         getEnvAsBool("USE_KAFKA", false),
		// Order lifecycle
		StrictStatusTransitions: getEnvAsBool("STRICT_STATUS_TRANSITIONS", false),
		IdempotencyTTLSeconds:   getEnvAsInt("IDEMPOTENCY_TTL_SECONDS", 24*60*60),
	}
}

func getEnvAsInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	result, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return result
}

func getEnvAsBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	result, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return result
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
