package main

import (
	"context"

	"syncpos/config"
	"syncpos/internal/service"
	"syncpos/internal/storage"
)

func main() {
	db := config.MustInitPostgres()
	defer db.Close()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	reader := config.NewKafkaReader("sales", "salesworker")
	defer reader.Close()

	store := storage.NewSalesStore(db, rdb)
	inventory := service.NewInventoryService(storage.NewKVStore(rdb))

	consumer := service.NewSalesConsumer(reader, store, inventory)
	consumer.Start(context.Background())
}
