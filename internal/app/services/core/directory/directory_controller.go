package directory

import (
	"carelink-service/internal/app/config"
	"carelink-service/internal/app/models"
	"carelink-service/internal/pkg/constvars"
	"carelink-service/internal/pkg/dto/requests"
	"carelink-service/internal/pkg/exceptions"
	"carelink-service/internal/pkg/utils"
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// DirectoryController serves the three role-scoped listings (clinicians,
// patients, donors) from one set of handlers. Each handler is built per route
// with the role fixed, so /v1/patients and /v1/donors share all their code.
type DirectoryController struct {
	Log              *zap.Logger
	DirectoryUsecase DirectoryUsecase
	InternalConfig   *config.InternalConfig
}

func NewDirectoryController(logger *zap.Logger, directoryUsecase DirectoryUsecase, internalConfig *config.InternalConfig) *DirectoryController {
	return &DirectoryController{
		Log:              logger,
		DirectoryUsecase: directoryUsecase,
		InternalConfig:   internalConfig,
	}
}

func (ctrl *DirectoryController) ListEntries(role models.Role) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		nameFilter := r.URL.Query().Get("name")

		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		result, err := ctrl.DirectoryUsecase.ListEntries(ctx, role, nameFilter)
		if err != nil {
			if err == context.DeadlineExceeded {
				utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
				return
			}
			utils.BuildErrorResponse(ctrl.Log, w, err)
			return
		}

		utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ListEntriesSuccessMessage, result)
	}
}

func (ctrl *DirectoryController) GetEntry(role models.Role) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entryID := chi.URLParam(r, constvars.URLParamEntryID)
		if err := utils.ValidateURLParamID(entryID); err != nil {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, constvars.URLParamEntryID))
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		result, err := ctrl.DirectoryUsecase.GetEntry(ctx, role, entryID)
		if err != nil {
			if err == context.DeadlineExceeded {
				utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
				return
			}
			utils.BuildErrorResponse(ctrl.Log, w, err)
			return
		}

		utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetEntrySuccessMessage, result)
	}
}

func (ctrl *DirectoryController) UpdateEntry(role models.Role) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entryID := chi.URLParam(r, constvars.URLParamEntryID)
		if err := utils.ValidateURLParamID(entryID); err != nil {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, constvars.URLParamEntryID))
			return
		}

		request := new(requests.UpdateEntry)
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
			return
		}

		if request.ProfilePicture != "" {
			data, ext, err := utils.DecodeBase64Image(request.ProfilePicture)
			if err != nil {
				utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrImageValidation(err))
				return
			}
			if err := utils.ValidateImageFormat(ext, constvars.ImageAllowedProfilePictureFormats); err != nil {
				utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrImageValidation(err))
				return
			}
			if err := utils.ValidateImageSize(data, ctrl.InternalConfig.App.MinioProfilePictureMaxUploadSizeInMB); err != nil {
				utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrImageValidation(err))
				return
			}
			request.ProfilePictureData = data
			request.ProfilePictureExtension = ext
		}

		utils.SanitizeUpdateEntryRequest(request)

		if err := utils.ValidateStruct(request); err != nil {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 20*time.Second)
		defer cancel()

		result, err := ctrl.DirectoryUsecase.UpdateEntry(ctx, role, entryID, request)
		if err != nil {
			if err == context.DeadlineExceeded {
				utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
				return
			}
			utils.BuildErrorResponse(ctrl.Log, w, err)
			return
		}

		utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateEntrySuccessMessage, result)
	}
}

func (ctrl *DirectoryController) DeleteEntry(role models.Role) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entryID := chi.URLParam(r, constvars.URLParamEntryID)
		if err := utils.ValidateURLParamID(entryID); err != nil {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, constvars.URLParamEntryID))
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		if err := ctrl.DirectoryUsecase.DeleteEntry(ctx, role, entryID); err != nil {
			if err == context.DeadlineExceeded {
				utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
				return
			}
			utils.BuildErrorResponse(ctrl.Log, w, err)
			return
		}

		utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteEntrySuccessMessage, nil)
	}
}

func (ctrl *DirectoryController) SetWeeklyAvailability(w http.ResponseWriter, r *http.Request) {
	clinicianID := chi.URLParam(r, constvars.URLParamEntryID)
	if err := utils.ValidateURLParamID(clinicianID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, constvars.URLParamEntryID))
		return
	}

	request := new(requests.SetWeeklyAvailability)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.DirectoryUsecase.SetWeeklyAvailability(ctx, clinicianID, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SetAvailabilitySuccessMessage, result)
}
