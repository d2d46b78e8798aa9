package main

import (
	"restaurant-ordering/config"
	httpapi "restaurant-ordering/menu-svc/api/http"
	"restaurant-ordering/menu-svc/service"
	"restaurant-ordering/menu-svc/storage"
)

func main() {
	config.LoadEnv()

	catalog := service.NewCatalogService(storage.NewMemoryCatalog(storage.DefaultMenu()...))

	handler := httpapi.NewHandler(catalog)
	httpapi.StartServer(":"+config.GetEnv("MENU_PORT", "8084"), httpapi.NewRouter(handler))
}
