package donorrequests

import (
	"carelink-service/internal/app/models"
	"carelink-service/internal/app/services/core/directory"
	"carelink-service/internal/app/services/shared/eventqueue"
	"carelink-service/internal/pkg/constvars"
	"carelink-service/internal/pkg/dto/requests"
	"carelink-service/internal/pkg/dto/responses"
	"carelink-service/internal/pkg/exceptions"
	"context"
	"fmt"

	"go.uber.org/zap"
)

type DonorRequestUsecaseImpl struct {
	Log                    *zap.Logger
	DonorRequestRepository DonorRequestRepository
	DirectoryRepository    directory.DirectoryRepository
	EventQueue             eventqueue.EventQueue
}

func NewDonorRequestUsecase(
	logger *zap.Logger,
	donorRequestRepository DonorRequestRepository,
	directoryRepository directory.DirectoryRepository,
	eventQueue eventqueue.EventQueue,
) DonorRequestUsecase {
	return &DonorRequestUsecaseImpl{
		Log:                    logger,
		DonorRequestRepository: donorRequestRepository,
		DirectoryRepository:    directoryRepository,
		EventQueue:             eventQueue,
	}
}

// FileDonorRequest records a patient's solicitation. One request per
// patient+organ pair, counting requests in every status; an empty organ makes
// it a blood-only request and occupies the patient's single blood-only slot
// the same way. BloodOnly is fixed here and never recomputed on update.
func (uc *DonorRequestUsecaseImpl) FileDonorRequest(ctx context.Context, request *requests.FileDonorRequest) (*responses.DonorRequest, error) {
	patient, err := uc.findParticipant(ctx, request.PatientID, models.RolePatient)
	if err != nil {
		return nil, err
	}

	var donor *models.User
	if request.DonorID != "" {
		donor, err = uc.findParticipant(ctx, request.DonorID, models.RoleDonor)
		if err != nil {
			return nil, err
		}
	}

	existing, err := uc.DonorRequestRepository.FindByPatientAndOrgan(ctx, patient.ID, request.RequestedOrgan)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrDonorRequestAlreadyPlaced(fmt.Errorf("patient %s already requested organ %q", patient.ID, request.RequestedOrgan))
	}

	donorRequest := &models.DonorRequest{
		PatientID:      patient.ID,
		RequestedOrgan: request.RequestedOrgan,
		BloodType:      request.BloodType,
		BloodOnly:      request.RequestedOrgan == "",
		Status:         models.DonorRequestStatusPending,
	}
	if donor != nil {
		donorRequest.DonorID = donor.ID
	}

	requestID, err := uc.DonorRequestRepository.CreateDonorRequest(ctx, donorRequest)
	if err != nil {
		return nil, err
	}
	donorRequest.ID = requestID

	uc.publishEvent(ctx, constvars.EventDonorRequestFiled, donorRequest)

	return buildDonorRequestResponse(donorRequest, patient, donor), nil
}

func (uc *DonorRequestUsecaseImpl) ListDonorRequests(ctx context.Context, filter DonorRequestFilter) ([]responses.DonorRequest, error) {
	donorRequests, err := uc.DonorRequestRepository.FindWithFilter(ctx, filter)
	if err != nil {
		return nil, err
	}

	participantIDs := make([]string, 0, len(donorRequests)*2)
	for _, donorRequest := range donorRequests {
		participantIDs = append(participantIDs, donorRequest.PatientID)
		if donorRequest.DonorID != "" {
			participantIDs = append(participantIDs, donorRequest.DonorID)
		}
	}
	participants, err := uc.DirectoryRepository.FindByIDs(ctx, participantIDs)
	if err != nil {
		return nil, err
	}

	result := make([]responses.DonorRequest, 0, len(donorRequests))
	for i := range donorRequests {
		donorRequest := &donorRequests[i]
		result = append(result, *buildDonorRequestResponse(
			donorRequest,
			lookupParticipant(participants, donorRequest.PatientID),
			lookupParticipant(participants, donorRequest.DonorID),
		))
	}
	return result, nil
}

func (uc *DonorRequestUsecaseImpl) GetDonorRequest(ctx context.Context, requestID string) (*responses.DonorRequest, error) {
	donorRequest, err := uc.DonorRequestRepository.FindByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if donorRequest == nil {
		return nil, exceptions.ErrDonorRequestNotExist(fmt.Errorf("no donor request with id %s", requestID))
	}

	participants, err := uc.DirectoryRepository.FindByIDs(ctx, []string{donorRequest.PatientID, donorRequest.DonorID})
	if err != nil {
		return nil, err
	}
	return buildDonorRequestResponse(
		donorRequest,
		lookupParticipant(participants, donorRequest.PatientID),
		lookupParticipant(participants, donorRequest.DonorID),
	), nil
}

func (uc *DonorRequestUsecaseImpl) UpdateDonorRequest(ctx context.Context, requestID string, request *requests.UpdateDonorRequest) (*responses.DonorRequest, error) {
	donorRequest, err := uc.DonorRequestRepository.FindByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if donorRequest == nil {
		return nil, exceptions.ErrDonorRequestNotExist(fmt.Errorf("no donor request with id %s", requestID))
	}

	if request.DonorID != "" && request.DonorID != donorRequest.DonorID {
		donor, err := uc.findParticipant(ctx, request.DonorID, models.RoleDonor)
		if err != nil {
			return nil, err
		}
		donorRequest.DonorID = donor.ID
	}
	// Changing the organ re-keys the request under the uniqueness rule but
	// keeps BloodOnly as it was derived at filing time.
	if request.RequestedOrgan != nil {
		donorRequest.RequestedOrgan = *request.RequestedOrgan
	}
	if request.BloodType != nil {
		donorRequest.BloodType = *request.BloodType
	}
	if request.Status != "" {
		status, ok := models.ParseDonorRequestStatus(request.Status)
		if !ok {
			return nil, exceptions.ErrInvalidStatus(fmt.Errorf("unknown donor request status %q", request.Status))
		}
		donorRequest.Status = status
	}

	if err := uc.DonorRequestRepository.UpdateDonorRequest(ctx, donorRequest); err != nil {
		return nil, err
	}

	participants, err := uc.DirectoryRepository.FindByIDs(ctx, []string{donorRequest.PatientID, donorRequest.DonorID})
	if err != nil {
		return nil, err
	}
	return buildDonorRequestResponse(
		donorRequest,
		lookupParticipant(participants, donorRequest.PatientID),
		lookupParticipant(participants, donorRequest.DonorID),
	), nil
}

func (uc *DonorRequestUsecaseImpl) WithdrawDonorRequest(ctx context.Context, requestID string) error {
	donorRequest, err := uc.DonorRequestRepository.FindByID(ctx, requestID)
	if err != nil {
		return err
	}
	if donorRequest == nil {
		return exceptions.ErrDonorRequestNotExist(fmt.Errorf("no donor request with id %s", requestID))
	}

	deleted, err := uc.DonorRequestRepository.DeleteByID(ctx, requestID)
	if err != nil {
		return err
	}
	if !deleted {
		return exceptions.ErrDonorRequestNotExist(fmt.Errorf("donor request %s vanished before delete", requestID))
	}

	uc.publishEvent(ctx, constvars.EventDonorRequestWithdrew, donorRequest)
	return nil
}

func (uc *DonorRequestUsecaseImpl) findParticipant(ctx context.Context, entryID string, role models.Role) (*models.User, error) {
	user, err := uc.DirectoryRepository.FindByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	if user == nil || user.Role != role {
		if role == models.RoleDonor {
			return nil, exceptions.ErrDonorNotExist(fmt.Errorf("no donor with id %s", entryID))
		}
		return nil, exceptions.ErrPatientNotExist(fmt.Errorf("no patient with id %s", entryID))
	}
	return user, nil
}

func (uc *DonorRequestUsecaseImpl) publishEvent(ctx context.Context, eventType string, donorRequest *models.DonorRequest) {
	err := uc.EventQueue.Publish(ctx, constvars.QueueDonorRequestEvents, eventType, donorRequest)
	if err != nil {
		uc.Log.Warn("failed to publish donor request event",
			zap.String("event", eventType),
			zap.String("requestID", donorRequest.ID),
			zap.Error(err),
		)
	}
}

func lookupParticipant(participants map[string]models.User, entryID string) *models.User {
	if user, ok := participants[entryID]; ok {
		return &user
	}
	return nil
}

func buildDonorRequestResponse(donorRequest *models.DonorRequest, patient, donor *models.User) *responses.DonorRequest {
	return &responses.DonorRequest{
		ID:             donorRequest.ID,
		Patient:        directory.BuildPersonSummary(patient),
		Donor:          directory.BuildPersonSummary(donor),
		RequestedOrgan: donorRequest.RequestedOrgan,
		BloodType:      donorRequest.BloodType,
		BloodOnly:      donorRequest.BloodOnly,
		Status:         string(donorRequest.Status),
		CreatedAt:      donorRequest.CreatedAt,
		UpdatedAt:      donorRequest.UpdatedAt,
	}
}
