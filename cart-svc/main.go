package main

import (
	"os"

	"github.com/sirupsen/logrus"

	httpapi "restaurant-ordering/cart-svc/api/http"
	"restaurant-ordering/cart-svc/service"
	"restaurant-ordering/cart-svc/storage"
	"restaurant-ordering/config"
)

func main() {
	config.LoadEnv()

	// Durability is best-effort: when Redis is down the carts still work,
	// they just do not survive a restart.
	var newStorage service.StorageFactory
	if client, err := config.InitRedis(); err != nil {
		logrus.Warnf("Warning: Redis unavailable, carts will not be persisted: %v", err)
		newStorage = func(string) service.CartStorage {
			return storage.NewMemoryCartStorage()
		}
	} else {
		defer client.Close()
		ttl := config.CartTTL()
		newStorage = func(sessionID string) service.CartStorage {
			return storage.NewRedisCartStorage(client, sessionID, ttl)
		}
	}

	var publisher service.CartEventPublisher
	if os.Getenv("KAFKA_BROKER") != "" {
		writer := config.NewKafkaWriter("cart-events")
		defer writer.Close()
		publisher = storage.NewKafkaCartEvents(writer)
	}

	qr := service.DefaultQRGenerator{BaseURL: config.GetEnv("PUBLIC_BASE_URL", "http://localhost")}
	carts := service.NewCartService(newStorage, publisher, nil, qr)

	handler := httpapi.NewHandler(carts)
	httpapi.StartServer(":"+config.GetEnv("CART_PORT", "8083"), httpapi.NewRouter(handler))
}
