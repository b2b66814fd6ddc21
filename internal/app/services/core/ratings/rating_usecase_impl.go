package ratings

import (
	"carelink-service/internal/app/services/core/directory"
	"carelink-service/internal/pkg/constvars"
	"carelink-service/internal/pkg/dto/requests"
	"carelink-service/internal/pkg/dto/responses"
	"carelink-service/internal/pkg/exceptions"
	"context"
	"fmt"
)

type RatingUsecaseImpl struct {
	DirectoryRepository directory.DirectoryRepository
}

func NewRatingUsecase(directoryRepository directory.DirectoryRepository) RatingUsecase {
	return &RatingUsecaseImpl{
		DirectoryRepository: directoryRepository,
	}
}

// SubmitRating records the rater's latest score for a clinician. A rater who
// rates the same clinician twice overwrites their previous score instead of
// stacking a second entry, and the stored mean always reflects the full
// current set.
func (uc *RatingUsecaseImpl) SubmitRating(ctx context.Context, clinicianID string, request *requests.SubmitRating) (*responses.RatingResult, error) {
	if request.Score < constvars.RatingScoreMin || request.Score > constvars.RatingScoreMax {
		return nil, exceptions.ErrInvalidRatingScore(fmt.Errorf("score %d outside [%d,%d]", request.Score, constvars.RatingScoreMin, constvars.RatingScoreMax))
	}

	rater, err := uc.DirectoryRepository.FindByID(ctx, request.RaterID)
	if err != nil {
		return nil, err
	}
	if rater == nil {
		return nil, exceptions.ErrEntryNotExist(fmt.Errorf("rater %s does not exist", request.RaterID))
	}

	// The store applies replace-or-append and the mean recompute in one
	// update, so two raters submitting at once both land.
	updated, err := uc.DirectoryRepository.UpsertRating(ctx, clinicianID, request.RaterID, request.Score)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, exceptions.ErrClinicianNotExist(fmt.Errorf("no clinician with id %s", clinicianID))
	}

	return &responses.RatingResult{
		ClinicianID: updated.ID,
		Rating:      updated.Rating,
		RatedBy:     len(updated.RatedBy),
	}, nil
}
