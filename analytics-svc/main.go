package main

import (
	httpapi "coffeehouse-pos/analytics-svc/internal/api/http"
	"coffeehouse-pos/analytics-svc/internal/service"
	"coffeehouse-pos/config"
)

func main() {
	db := config.MustInitPostgres()
	defer db.Close()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	svc := service.NewAnalyticsService(db, rdb)
	handler := httpapi.NewHandler(svc)
	httpapi.StartServer(":8083", httpapi.NewRouter(handler))
}
