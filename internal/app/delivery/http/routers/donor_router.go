package routers

import (
	"carelink-service/internal/app/delivery/http/middlewares"
	"carelink-service/internal/app/models"
	"carelink-service/internal/app/services/core/directory"
	"carelink-service/internal/pkg/constvars"
	"fmt"

	"github.com/go-chi/chi/v5"
)

func attachDonorRoutes(router chi.Router, middlewares *middlewares.Middlewares, directoryController *directory.DirectoryController) {
	entryPath := fmt.Sprintf("/{%s}", constvars.URLParamEntryID)

	router.Get("/", directoryController.ListEntries(models.RoleDonor))
	router.Get(entryPath, directoryController.GetEntry(models.RoleDonor))
	router.With(middlewares.Authenticate).Put(entryPath, directoryController.UpdateEntry(models.RoleDonor))
	router.With(middlewares.Authenticate).Delete(entryPath, directoryController.DeleteEntry(models.RoleDonor))
}
