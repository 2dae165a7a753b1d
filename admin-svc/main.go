package main

import (
	"context"
	"log"
	"net/http"

	"coffeehouse-pos/config"

	httpapi "coffeehouse-pos/admin-svc/internal/api/http"
	"coffeehouse-pos/admin-svc/internal/eventbus"
	"coffeehouse-pos/admin-svc/internal/service"
	"coffeehouse-pos/admin-svc/internal/storage"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func main() {
	db := config.MustInitPostgres()
	defer db.Close()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}
	if err := repo.SeedMenuIfEmpty(); err != nil {
		log.Fatal("Failed to seed menu:", err)
	}

	bus := eventbus.New(rdb)

	shopName := config.Getenv("SHOP_NAME", "Golden Bean Coffee House")
	kioskURL := config.Getenv("KIOSK_BASE_URL", "http://localhost:8081")
	adminEmail := config.Getenv("ADMIN_EMAIL", "admin@goldenbean.local")

	menuSvc := service.NewMenuService(repo, bus)
	orderSvc := service.NewOrderService(repo, bus, shopName, kioskURL)
	reportSvc := service.NewReportService(repo, bus)
	dashboard := service.NewDashboard(repo, bus)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go dashboard.Run(ctx)

	r := mux.NewRouter()
	handler := httpapi.NewHandler(menuSvc, orderSvc, reportSvc, dashboard, adminEmail)
	handler.RegisterRoutes(r)

	log.Println("Admin Service starting on port 8082")
	log.Fatal(http.ListenAndServe(":8082", cors.Default().Handler(r)))
}
