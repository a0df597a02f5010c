package app

import (
	"database/sql"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"

	"github.com/adielbeauty/storefront/pkg/httpx"
)

// HealthStatus reports the storefront's backing services
type HealthStatus struct {
	Database string `json:"database"`
	Redis    string `json:"redis"`
	Sessions int    `json:"sessions"`
}

// RegisterHealthCheck registers health check endpoint. The service stays healthy without
// Redis since cart state and sign-in limits fall back to memory.
func (s *Server) RegisterHealthCheck(router *mux.Router, db *sql.DB, redisClient *redis.Client) {
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		status := HealthStatus{Database: "up", Redis: "disabled", Sessions: s.Registry.Len()}

		if redisClient != nil {
			status.Redis = "up"
			if err := redisClient.Ping(r.Context()).Err(); err != nil {
				status.Redis = "down"
			}
		}

		if db == nil || db.PingContext(r.Context()) != nil {
			status.Database = "down"
			httpx.RespondJSON(w, http.StatusServiceUnavailable, httpx.Response{
				Success: false,
				Error:   "Database unavailable",
				Data:    status,
			})
			return
		}

		httpx.RespondJSON(w, http.StatusOK, httpx.Response{
			Success: true,
			Message: "Storefront service is healthy",
			Data:    status,
		})
	}).Methods("GET")
}
