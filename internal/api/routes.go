package api

import (
	"log/slog"
	"net/http"
)

// SetupRoutes configures the HTTP routes for the API
func SetupRoutes(rooms RoomServicer, auth Authorizer, logger *slog.Logger) *http.ServeMux {
	mux := http.NewServeMux()

	// Health check endpoints for Kubernetes
	mux.HandleFunc("/health/live", HealthLiveHandler)
	mux.HandleFunc("/health/ready", NewHealthReadyHandler(rooms, logger))

	// Room status and walk-in actions
	roomHandler := NewRoomHandler(rooms, logger)
	mux.Handle("/api/rooms", roomHandler)
	mux.Handle("/api/rooms/", roomHandler)

	// Room administration
	adminHandler := NewAdminHandler(rooms, logger)
	mux.Handle("/admin/rooms/", auth.RequireAuth(adminHandler.ServeHTTP))

	return mux
}
