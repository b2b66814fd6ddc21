package routers

import (
	"carelink-service/internal/app/delivery/http/middlewares"
	"carelink-service/internal/app/services/core/donorrequests"
	"carelink-service/internal/pkg/constvars"
	"fmt"

	"github.com/go-chi/chi/v5"
)

func attachDonorRequestRoutes(router chi.Router, middlewares *middlewares.Middlewares, donorRequestController *donorrequests.DonorRequestController) {
	requestPath := fmt.Sprintf("/{%s}", constvars.URLParamDonorRequestID)

	router.With(middlewares.Authenticate).Post("/", donorRequestController.FileDonorRequest)
	router.With(middlewares.Authenticate).Get("/", donorRequestController.ListDonorRequests)
	router.With(middlewares.Authenticate).Get(requestPath, donorRequestController.GetDonorRequest)
	router.With(middlewares.Authenticate).Put(requestPath, donorRequestController.UpdateDonorRequest)
	router.With(middlewares.Authenticate).Delete(requestPath, donorRequestController.WithdrawDonorRequest)
}
