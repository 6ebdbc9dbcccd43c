// internal/api/router.go
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"rideflow/internal/api/handler"
	"rideflow/internal/auth"
)

// NewRouter sets up and returns a new HTTP router.
func NewRouter(
	authHandler *handler.AuthHandler,
	walletHandler *handler.WalletHandler,
	rideHandler *handler.RideHandler,
	tokens *auth.TokenManager,
	logger *slog.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Global middlewares
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(handler.DefaultTimeout))

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	r.Route("/api", func(r chi.Router) {
		// Public surface
		r.Get("/drivers", rideHandler.ListDrivers)
		r.Post("/signup", authHandler.SignUp)
		r.Post("/login", authHandler.Login)

		// Authenticated surface
		r.Group(func(r chi.Router) {
			r.Use(handler.Authenticator(tokens, logger))

			r.Get("/wallet", walletHandler.GetWallet)
			r.Post("/wallet/topup", walletHandler.TopUp)
			r.Get("/transactions", walletHandler.ListTransactions)

			r.Post("/rides/request", rideHandler.RequestRide)
			r.Get("/rides", rideHandler.ListRides)
			r.Post("/rides/complete/{rideID}", rideHandler.CompleteRide)
			r.Post("/rides/cancel/{rideID}", rideHandler.CancelRide)
		})
	})

	return r
}
