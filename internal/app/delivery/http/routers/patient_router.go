package routers

import (
	"carelink-service/internal/app/delivery/http/middlewares"
	"carelink-service/internal/app/models"
	"carelink-service/internal/app/services/core/directory"
	"carelink-service/internal/pkg/constvars"
	"fmt"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(router chi.Router, middlewares *middlewares.Middlewares, directoryController *directory.DirectoryController) {
	entryPath := fmt.Sprintf("/{%s}", constvars.URLParamEntryID)

	router.Get("/", directoryController.ListEntries(models.RolePatient))
	router.Get(entryPath, directoryController.GetEntry(models.RolePatient))
	router.With(middlewares.Authenticate).Put(entryPath, directoryController.UpdateEntry(models.RolePatient))
	router.With(middlewares.Authenticate).Delete(entryPath, directoryController.DeleteEntry(models.RolePatient))
}
