package donorrequests

import (
	"carelink-service/internal/app/models"
	"carelink-service/internal/pkg/constvars"
	"carelink-service/internal/pkg/dto/requests"
	"carelink-service/internal/pkg/exceptions"
	"carelink-service/internal/pkg/utils"
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type DonorRequestController struct {
	Log                 *zap.Logger
	DonorRequestUsecase DonorRequestUsecase
}

func NewDonorRequestController(logger *zap.Logger, donorRequestUsecase DonorRequestUsecase) *DonorRequestController {
	return &DonorRequestController{
		Log:                 logger,
		DonorRequestUsecase: donorRequestUsecase,
	}
}

func (ctrl *DonorRequestController) FileDonorRequest(w http.ResponseWriter, r *http.Request) {
	request := new(requests.FileDonorRequest)
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

	result, err := ctrl.DonorRequestUsecase.FileDonorRequest(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.FileDonorRequestSuccessMessage, result)
}

func (ctrl *DonorRequestController) ListDonorRequests(w http.ResponseWriter, r *http.Request) {
	filter := DonorRequestFilter{
		PatientID:      r.URL.Query().Get("patientId"),
		DonorID:        r.URL.Query().Get("donorId"),
		RequestedOrgan: r.URL.Query().Get("requestedOrgan"),
		BloodType:      r.URL.Query().Get("bloodType"),
	}
	if rawStatus := r.URL.Query().Get("status"); rawStatus != "" {
		status, ok := models.ParseDonorRequestStatus(rawStatus)
		if !ok {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInvalidStatus(fmt.Errorf("unknown donor request status %q", rawStatus)))
			return
		}
		filter.Status = status
	}
	if rawBloodOnly := r.URL.Query().Get("bloodOnly"); rawBloodOnly != "" {
		bloodOnly, err := strconv.ParseBool(rawBloodOnly)
		if err != nil {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(fmt.Errorf("bloodOnly must be a boolean, got %q", rawBloodOnly)))
			return
		}
		filter.BloodOnly = &bloodOnly
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.DonorRequestUsecase.ListDonorRequests(ctx, filter)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ListDonorRequestsSuccessMessage, result)
}

func (ctrl *DonorRequestController) GetDonorRequest(w http.ResponseWriter, r *http.Request) {
	requestID := chi.URLParam(r, constvars.URLParamDonorRequestID)
	if err := utils.ValidateURLParamID(requestID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, constvars.URLParamDonorRequestID))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.DonorRequestUsecase.GetDonorRequest(ctx, requestID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetDonorRequestSuccessMessage, result)
}

func (ctrl *DonorRequestController) UpdateDonorRequest(w http.ResponseWriter, r *http.Request) {
	requestID := chi.URLParam(r, constvars.URLParamDonorRequestID)
	if err := utils.ValidateURLParamID(requestID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, constvars.URLParamDonorRequestID))
		return
	}

	request := new(requests.UpdateDonorRequest)
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

	result, err := ctrl.DonorRequestUsecase.UpdateDonorRequest(ctx, requestID, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateDonorRequestSuccessMessage, result)
}

func (ctrl *DonorRequestController) WithdrawDonorRequest(w http.ResponseWriter, r *http.Request) {
	requestID := chi.URLParam(r, constvars.URLParamDonorRequestID)
	if err := utils.ValidateURLParamID(requestID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, constvars.URLParamDonorRequestID))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := ctrl.DonorRequestUsecase.WithdrawDonorRequest(ctx, requestID); err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.WithdrawDonorRequestSuccessMessage, nil)
}
