package donorrequests

import (
	"carelink-service/internal/app/models"
	"carelink-service/internal/pkg/dto/requests"
	"carelink-service/internal/pkg/dto/responses"
	"context"
)

// DonorRequestFilter narrows a listing. Zero-valued fields are ignored; set
// fields are combined with AND. BloodOnly is a tri-state: nil means both
// kinds, otherwise only blood-only or only organ requests.
type DonorRequestFilter struct {
	PatientID      string
	DonorID        string
	RequestedOrgan string
	BloodType      string
	Status         models.DonorRequestStatus
	BloodOnly      *bool
}

type DonorRequestUsecase interface {
	FileDonorRequest(ctx context.Context, request *requests.FileDonorRequest) (*responses.DonorRequest, error)
	ListDonorRequests(ctx context.Context, filter DonorRequestFilter) ([]responses.DonorRequest, error)
	GetDonorRequest(ctx context.Context, requestID string) (*responses.DonorRequest, error)
	UpdateDonorRequest(ctx context.Context, requestID string, request *requests.UpdateDonorRequest) (*responses.DonorRequest, error)
	WithdrawDonorRequest(ctx context.Context, requestID string) error
}

type DonorRequestRepository interface {
	CreateDonorRequest(ctx context.Context, requestModel *models.DonorRequest) (string, error)
	FindByID(ctx context.Context, requestID string) (*models.DonorRequest, error)
	FindByPatientAndOrgan(ctx context.Context, patientID, requestedOrgan string) (*models.DonorRequest, error)
	FindWithFilter(ctx context.Context, filter DonorRequestFilter) ([]models.DonorRequest, error)
	UpdateDonorRequest(ctx context.Context, requestModel *models.DonorRequest) error
	DeleteByID(ctx context.Context, requestID string) (bool, error)
}
