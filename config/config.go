package config

import (
	"context"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

// LoadEnv loads a .env file if one exists next to the binary. Missing files
// are fine; real deployments set the environment directly.
func LoadEnv() {
	_ = godotenv.Load()
}

func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func GetEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// InitRedis connects to Redis using REDIS_HOST/REDIS_PORT/REDIS_PASSWORD.
// Callers that can run without durability should treat an error here as
// non-fatal.
func InitRedis() (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     GetEnv("REDIS_HOST", "localhost") + ":" + GetEnv("REDIS_PORT", "6379"),
		Password: os.Getenv("REDIS_PASSWORD"),
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}

	return client, nil
}

func MustInitRedis() *redis.Client {
	client, err := InitRedis()
	if err != nil {
		logrus.Fatal("Failed to connect to Redis: ", err)
	}
	return client
}

func NewKafkaWriter(topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:     kafka.TCP(os.Getenv("KAFKA_BROKER")),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	}
}

// CartTTL is how long an idle cart survives in its durable slot.
func CartTTL() time.Duration {
	return time.Duration(GetEnvAsInt("CART_TTL_HOURS", 7*24)) * time.Hour
}
