package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"doener-shop/config"
	"doener-shop/services"
)

// Handler is the lightweight status endpoint: it reports whether the shop is
// currently taking orders without touching any backing store.
func Handler(w http.ResponseWriter, r *http.Request) {
	hours := services.DefaultOpeningHours(config.FromEnv().Location())

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	response := map[string]interface{}{
		"status":        "ok",
		"message":       "Döner Shop API",
		"path":          r.URL.Path,
		"opening_hours": hours.Status(time.Now()),
	}

	json.NewEncoder(w).Encode(response)
}
