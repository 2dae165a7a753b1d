package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"coffeehouse-pos/analytics-svc/internal/domain"
	"coffeehouse-pos/analytics-svc/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Analytics service.AnalyticsInterface
}

func NewHandler(svc service.AnalyticsInterface) *Handler {
	return &Handler{Analytics: svc}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}).Methods("GET")
	r.HandleFunc("/api/analytics/top-today", h.getTopToday).Methods("GET")
	r.HandleFunc("/api/analytics/top-alltime", h.getTopAllTime).Methods("GET")
	r.HandleFunc("/api/analytics/revenue", h.getRevenue).Methods("GET")
	r.HandleFunc("/api/analytics/category-sales", h.getCategorySales).Methods("GET")
}

func parseLimit(r *http.Request) int {
	limitStr := r.URL.Query().Get("limit")
	if limitStr == "" {
		return 10
	}
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit < 1 {
		return 10
	}
	return limit
}

func (h *Handler) getTopToday(w http.ResponseWriter, r *http.Request) {
	data, err := h.Analytics.TopToday(parseLimit(r))
	writeList(w, data, err)
}

func (h *Handler) getTopAllTime(w http.ResponseWriter, r *http.Request) {
	data, err := h.Analytics.TopAllTime(parseLimit(r))
	writeList(w, data, err)
}

func (h *Handler) getRevenue(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		http.Error(w, "date must be YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	report, err := h.Analytics.RevenueByDate(date)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(report)
}

func (h *Handler) getCategorySales(w http.ResponseWriter, r *http.Request) {
	data, _ := h.Analytics.CategorySales()
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(data)
}

func writeList(w http.ResponseWriter, data []domain.ItemSales, err error) {
	w.Header().Set("Content-Type", "application/json")
	if err != nil || data == nil {
		json.NewEncoder(w).Encode([]domain.ItemSales{})
		return
	}
	json.NewEncoder(w).Encode(data)
}
