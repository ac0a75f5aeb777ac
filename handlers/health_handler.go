// handlers/health_handler.go
package handlers

import (
	"net/http"

	"github.com/gewnthar/flightqa/database"
)

// HealthHandler reports liveness and, when a database is configured, whether it answers.
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	if !database.Enabled() {
		respondWithJSON(w, http.StatusOK, map[string]string{"status": "ok", "database": "disabled"})
		return
	}
	if err := database.DB.PingContext(r.Context()); err != nil {
		respondWithJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "error", "message": "database connection error"})
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]string{"status": "ok", "database": "connected"})
}
