package ratings

import (
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

type RatingController struct {
	Log           *zap.Logger
	RatingUsecase RatingUsecase
}

func NewRatingController(logger *zap.Logger, ratingUsecase RatingUsecase) *RatingController {
	return &RatingController{
		Log:           logger,
		RatingUsecase: ratingUsecase,
	}
}

func (ctrl *RatingController) SubmitRating(w http.ResponseWriter, r *http.Request) {
	clinicianID := chi.URLParam(r, constvars.URLParamEntryID)
	if err := utils.ValidateURLParamID(clinicianID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, constvars.URLParamEntryID))
		return
	}

	request := new(requests.SubmitRating)
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

	result, err := ctrl.RatingUsecase.SubmitRating(ctx, clinicianID, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SubmitRatingSuccessMessage, result)
}
