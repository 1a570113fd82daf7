package main

import (
	"context"
	"os"

	"syncpos/config"
	httpapi "syncpos/internal/api/http"
	"syncpos/internal/service"
	"syncpos/internal/storage"
)

func main() {
	ctx := context.Background()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	db := config.MustInitPostgres()
	defer db.Close()

	kv := storage.NewKVStore(rdb)

	settingsSvc := service.NewSettingsService(kv)
	menuSvc := service.NewMenuService(ctx, kv)
	cartSvc := service.NewCartService(ctx, kv, kv, settingsSvc.TaxPolicy(ctx))

	publisher := storage.NewKafkaSalePublisher(config.NewKafkaWriter("sales"))
	qr := service.DefaultQRGenerator{BaseURL: os.Getenv("BASE_URL")}
	checkoutSvc := service.NewCheckoutService(cartSvc, kv, publisher, qr)

	savedSvc := service.NewSavedOrderService(kv, cartSvc)
	inventorySvc := service.NewInventoryService(kv)
	authSvc := service.NewAuthService(kv)
	reportsSvc := service.NewReportsService(db, rdb)

	handler := httpapi.NewHandler(cartSvc, checkoutSvc, menuSvc, savedSvc,
		inventorySvc, settingsSvc, authSvc, reportsSvc)

	httpapi.StartServer(":"+config.Port("8080"), httpapi.NewRouter(handler))
}
