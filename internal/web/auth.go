package web

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
)

// AdminPINHeader carries the admin PIN on admin requests
const AdminPINHeader = "X-Admin-PIN"

// PINAuth gates admin routes behind a shared PIN
type PINAuth struct {
	pin    string
	logger *slog.Logger
}

// NewPINAuth creates the admin gate. An empty PIN disables admin access.
func NewPINAuth(pin string, logger *slog.Logger) *PINAuth {
	return &PINAuth{pin: pin, logger: logger}
}

// RequireAuth is a middleware that checks the admin PIN header
func (auth *PINAuth) RequireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if auth.pin == "" {
			auth.logger.Warn("KIOSK_ADMIN_PIN not configured - admin access disabled")
			http.Error(w, "Admin access not configured", http.StatusServiceUnavailable)
			return
		}

		pin := r.Header.Get(AdminPINHeader)
		if pin == "" {
			http.Error(w, "Admin PIN required", http.StatusUnauthorized)
			return
		}

		if subtle.ConstantTimeCompare([]byte(pin), []byte(auth.pin)) != 1 {
			auth.logger.Warn("rejected admin PIN", "path", r.URL.Path, "remote_addr", r.RemoteAddr)
			http.Error(w, "Invalid admin PIN", http.StatusUnauthorized)
			return
		}

		next(w, r)
	}
}
