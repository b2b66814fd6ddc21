package ratings

import (
	"carelink-service/internal/pkg/dto/requests"
	"carelink-service/internal/pkg/dto/responses"
	"context"
)

type RatingUsecase interface {
	SubmitRating(ctx context.Context, clinicianID string, request *requests.SubmitRating) (*responses.RatingResult, error)
}
