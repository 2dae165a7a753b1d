package main

import (
	"context"

	"coffeehouse-pos/agg-svc/internal/service"
	"coffeehouse-pos/agg-svc/internal/storage"
	"coffeehouse-pos/config"
)

func main() {
	db := config.MustInitPostgres()
	defer db.Close()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	reader := config.NewKafkaReader("orders", "agg-svc-consumer")
	defer reader.Close()

	store := storage.NewStore(db, rdb)
	consumer := service.NewConsumer(reader, store)
	consumer.Start(context.Background())
}
