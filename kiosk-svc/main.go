package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"coffeehouse-pos/config"
	httpapi "coffeehouse-pos/kiosk-svc/internal/api/http"
	"coffeehouse-pos/kiosk-svc/internal/eventbus"
	"coffeehouse-pos/kiosk-svc/internal/service"
	"coffeehouse-pos/kiosk-svc/internal/storage"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func main() {
	db := config.MustInitPostgres()
	defer db.Close()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	kafkaWriter := config.NewKafkaWriter("orders")
	defer kafkaWriter.Close()

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}

	bus := eventbus.New(rdb)
	feed := storage.NewKafkaFeed(kafkaWriter)
	sessions := storage.NewTrackingStore(rdb, 24*time.Hour)

	kiosk := service.NewKioskService(repo, repo, repo, bus, feed)
	tracker := service.NewTracker(repo, sessions, bus)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go tracker.Run(ctx)

	r := mux.NewRouter()
	handler := httpapi.NewHandler(kiosk, tracker)
	handler.RegisterRoutes(r)

	log.Println("Kiosk Service starting on port 8081")
	log.Fatal(http.ListenAndServe(":8081", cors.Default().Handler(r)))
}
