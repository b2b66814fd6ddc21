package routers

import (
	"carelink-service/internal/app/delivery/http/middlewares"
	"carelink-service/internal/app/services/core/appointments"
	"carelink-service/internal/pkg/constvars"
	"fmt"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, middlewares *middlewares.Middlewares, appointmentController *appointments.AppointmentController) {
	appointmentPath := fmt.Sprintf("/{%s}", constvars.URLParamAppointmentID)

	router.With(middlewares.Authenticate).Post("/", appointmentController.BookAppointment)
	router.With(middlewares.Authenticate).Get("/", appointmentController.ListAppointments)
	router.With(middlewares.Authenticate).Get(appointmentPath, appointmentController.GetAppointment)
	router.With(middlewares.Authenticate).Put(appointmentPath, appointmentController.UpdateAppointment)
	router.With(middlewares.Authenticate).Delete(appointmentPath, appointmentController.CancelAppointment)
}
