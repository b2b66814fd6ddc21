package routers

import (
	"carelink-service/internal/app/config"
	"carelink-service/internal/app/delivery/http/middlewares"
	"carelink-service/internal/app/services/core/appointments"
	"carelink-service/internal/app/services/core/auth"
	"carelink-service/internal/app/services/core/directory"
	"carelink-service/internal/app/services/core/donorrequests"
	"carelink-service/internal/app/services/core/ratings"
	"carelink-service/internal/pkg/constvars"
	"fmt"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	authController *auth.AuthController,
	directoryController *directory.DirectoryController,
	ratingController *ratings.RatingController,
	appointmentController *appointments.AppointmentController,
	donorRequestController *donorrequests.DonorRequestController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	router.Use(httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second))

	router.Use(middlewares.Logging)

	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(versionPrefix, func(r chi.Router) {
		r.Route("/"+constvars.ResourceAuth, func(r chi.Router) {
			attachAuthRoutes(r, middlewares, authController)
		})

		r.Route("/"+constvars.ResourceClinicians, func(r chi.Router) {
			attachClinicianRoutes(r, middlewares, directoryController, ratingController)
		})

		r.Route("/"+constvars.ResourcePatients, func(r chi.Router) {
			attachPatientRoutes(r, middlewares, directoryController)
		})

		r.Route("/"+constvars.ResourceDonors, func(r chi.Router) {
			attachDonorRoutes(r, middlewares, directoryController)
		})

		r.Route("/"+constvars.ResourceAppointments, func(r chi.Router) {
			attachAppointmentRoutes(r, middlewares, appointmentController)
		})

		r.Route("/"+constvars.ResourceDonorRequests, func(r chi.Router) {
			attachDonorRequestRoutes(r, middlewares, donorRequestController)
		})
	})
}
