package routers

import (
	"carelink-service/internal/app/delivery/http/middlewares"
	"carelink-service/internal/app/models"
	"carelink-service/internal/app/services/core/directory"
	"carelink-service/internal/app/services/core/ratings"
	"carelink-service/internal/pkg/constvars"
	"fmt"

	"github.com/go-chi/chi/v5"
)

func attachClinicianRoutes(
	router chi.Router,
	middlewares *middlewares.Middlewares,
	directoryController *directory.DirectoryController,
	ratingController *ratings.RatingController,
) {
	entryPath := fmt.Sprintf("/{%s}", constvars.URLParamEntryID)

	router.Get("/", directoryController.ListEntries(models.RoleClinician))
	router.Get(entryPath, directoryController.GetEntry(models.RoleClinician))
	router.With(middlewares.Authenticate).Put(entryPath, directoryController.UpdateEntry(models.RoleClinician))
	router.With(middlewares.Authenticate).Delete(entryPath, directoryController.DeleteEntry(models.RoleClinician))
	router.With(middlewares.Authenticate).Put(entryPath+"/availability", directoryController.SetWeeklyAvailability)
	router.With(middlewares.Authenticate).Post(entryPath+"/ratings", ratingController.SubmitRating)
}
