package donorrequests

import (
	"carelink-service/internal/app/models"
	"carelink-service/internal/pkg/dto/requests"
	"carelink-service/internal/pkg/exceptions"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeDirectoryRepository struct {
	users map[string]models.User
}

func (f *fakeDirectoryRepository) CreateUser(ctx context.Context, userModel *models.User) (string, error) {
	f.users[userModel.ID] = *userModel
	return userModel.ID, nil
}

func (f *fakeDirectoryRepository) FindByID(ctx context.Context, userID string) (*models.User, error) {
	if user, ok := f.users[userID]; ok {
		return &user, nil
	}
	return nil, nil
}

func (f *fakeDirectoryRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return &user, nil
		}
	}
	return nil, nil
}

func (f *fakeDirectoryRepository) FindByRole(ctx context.Context, role models.Role, nameFilter string) ([]models.User, error) {
	var result []models.User
	for _, user := range f.users {
		if user.Role == role {
			result = append(result, user)
		}
	}
	return result, nil
}

func (f *fakeDirectoryRepository) FindByIDs(ctx context.Context, userIDs []string) (map[string]models.User, error) {
	result := make(map[string]models.User)
	for _, userID := range userIDs {
		if user, ok := f.users[userID]; ok {
			result[userID] = user
		}
	}
	return result, nil
}

func (f *fakeDirectoryRepository) UpdateUser(ctx context.Context, userModel *models.User) error {
	f.users[userModel.ID] = *userModel
	return nil
}

func (f *fakeDirectoryRepository) UpsertRating(ctx context.Context, clinicianID, raterID string, score int) (*models.User, error) {
	user, ok := f.users[clinicianID]
	if !ok || user.Role != models.RoleClinician {
		return nil, nil
	}
	user.ApplyRating(raterID, score)
	f.users[clinicianID] = user
	return &user, nil
}

func (f *fakeDirectoryRepository) DeleteByID(ctx context.Context, userID string) (bool, error) {
	if _, ok := f.users[userID]; !ok {
		return false, nil
	}
	delete(f.users, userID)
	return true, nil
}

type fakeDonorRequestRepository struct {
	requests map[string]models.DonorRequest
	nextID   int
}

func (f *fakeDonorRequestRepository) CreateDonorRequest(ctx context.Context, requestModel *models.DonorRequest) (string, error) {
	for _, existing := range f.requests {
		if existing.PatientID == requestModel.PatientID && existing.RequestedOrgan == requestModel.RequestedOrgan {
			return "", exceptions.ErrDonorRequestAlreadyPlaced(fmt.Errorf("duplicate pair"))
		}
	}
	f.nextID++
	id := fmt.Sprintf("req-%d", f.nextID)
	requestModel.CreatedAt = time.Now().UTC()
	requestModel.UpdatedAt = requestModel.CreatedAt
	f.requests[id] = *requestModel
	return id, nil
}

func (f *fakeDonorRequestRepository) FindByID(ctx context.Context, requestID string) (*models.DonorRequest, error) {
	if request, ok := f.requests[requestID]; ok {
		request.ID = requestID
		return &request, nil
	}
	return nil, nil
}

func (f *fakeDonorRequestRepository) FindByPatientAndOrgan(ctx context.Context, patientID, requestedOrgan string) (*models.DonorRequest, error) {
	for id, request := range f.requests {
		if request.PatientID == patientID && request.RequestedOrgan == requestedOrgan {
			request.ID = id
			return &request, nil
		}
	}
	return nil, nil
}

func (f *fakeDonorRequestRepository) FindWithFilter(ctx context.Context, filter DonorRequestFilter) ([]models.DonorRequest, error) {
	var result []models.DonorRequest
	for id, request := range f.requests {
		if filter.PatientID != "" && request.PatientID != filter.PatientID {
			continue
		}
		if filter.DonorID != "" && request.DonorID != filter.DonorID {
			continue
		}
		if filter.RequestedOrgan != "" && request.RequestedOrgan != filter.RequestedOrgan {
			continue
		}
		if filter.BloodType != "" && request.BloodType != filter.BloodType {
			continue
		}
		if filter.Status != "" && request.Status != filter.Status {
			continue
		}
		if filter.BloodOnly != nil && request.BloodOnly != *filter.BloodOnly {
			continue
		}
		request.ID = id
		result = append(result, request)
	}
	return result, nil
}

func (f *fakeDonorRequestRepository) UpdateDonorRequest(ctx context.Context, requestModel *models.DonorRequest) error {
	requestModel.UpdatedAt = time.Now().UTC()
	f.requests[requestModel.ID] = *requestModel
	return nil
}

func (f *fakeDonorRequestRepository) DeleteByID(ctx context.Context, requestID string) (bool, error) {
	if _, ok := f.requests[requestID]; !ok {
		return false, nil
	}
	delete(f.requests, requestID)
	return true, nil
}

type fakeEventQueue struct {
	published []string
}

func (f *fakeEventQueue) Publish(ctx context.Context, queueName, eventType string, payload interface{}) error {
	f.published = append(f.published, eventType)
	return nil
}

func newTestUsecase() (DonorRequestUsecase, *fakeDonorRequestRepository, *fakeEventQueue) {
	directoryRepository := &fakeDirectoryRepository{users: map[string]models.User{
		"patient-1": {ID: "patient-1", Name: "Pat", Role: models.RolePatient},
		"patient-2": {ID: "patient-2", Name: "Paula", Role: models.RolePatient},
		"donor-1":   {ID: "donor-1", Name: "Dana", Role: models.RoleDonor},
		"clin-1":    {ID: "clin-1", Name: "Dr. Carter", Role: models.RoleClinician},
	}}
	donorRequestRepository := &fakeDonorRequestRepository{requests: map[string]models.DonorRequest{}}
	eventQueue := &fakeEventQueue{}
	usecase := NewDonorRequestUsecase(zap.NewNop(), donorRequestRepository, directoryRepository, eventQueue)
	return usecase, donorRequestRepository, eventQueue
}

func TestFileDonorRequest(t *testing.T) {
	ctx := context.Background()

	t.Run("Files Organ Request As Pending", func(t *testing.T) {
		usecase, _, eventQueue := newTestUsecase()

		result, err := usecase.FileDonorRequest(ctx, &requests.FileDonorRequest{
			PatientID:      "patient-1",
			RequestedOrgan: "kidney",
			BloodType:      "O+",
		})

		require.NoError(t, err)
		assert.Equal(t, "pending", result.Status)
		assert.False(t, result.BloodOnly)
		assert.Equal(t, "patient-1", result.Patient.ID)
		assert.Len(t, eventQueue.published, 1)
	})

	t.Run("Empty Organ Makes Blood Only Request", func(t *testing.T) {
		usecase, _, _ := newTestUsecase()

		result, err := usecase.FileDonorRequest(ctx, &requests.FileDonorRequest{
			PatientID: "patient-1",
			BloodType: "AB-",
		})

		require.NoError(t, err)
		assert.True(t, result.BloodOnly)
		assert.Empty(t, result.RequestedOrgan)
	})

	t.Run("Duplicate Pair Conflicts Regardless Of Status", func(t *testing.T) {
		usecase, _, _ := newTestUsecase()

		first, err := usecase.FileDonorRequest(ctx, &requests.FileDonorRequest{
			PatientID:      "patient-1",
			RequestedOrgan: "kidney",
		})
		require.NoError(t, err)

		// Even a rejected request keeps blocking the pair.
		_, err = usecase.UpdateDonorRequest(ctx, first.ID, &requests.UpdateDonorRequest{Status: "rejected"})
		require.NoError(t, err)

		_, err = usecase.FileDonorRequest(ctx, &requests.FileDonorRequest{
			PatientID:      "patient-1",
			RequestedOrgan: "kidney",
		})

		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, 409, customErr.StatusCode)
	})

	t.Run("Same Organ For Different Patients Allowed", func(t *testing.T) {
		usecase, _, _ := newTestUsecase()

		_, err := usecase.FileDonorRequest(ctx, &requests.FileDonorRequest{PatientID: "patient-1", RequestedOrgan: "liver"})
		require.NoError(t, err)

		_, err = usecase.FileDonorRequest(ctx, &requests.FileDonorRequest{PatientID: "patient-2", RequestedOrgan: "liver"})
		assert.NoError(t, err)
	})

	t.Run("Organ And Blood Only Slots Are Distinct", func(t *testing.T) {
		usecase, _, _ := newTestUsecase()

		_, err := usecase.FileDonorRequest(ctx, &requests.FileDonorRequest{PatientID: "patient-1", RequestedOrgan: "kidney"})
		require.NoError(t, err)

		_, err = usecase.FileDonorRequest(ctx, &requests.FileDonorRequest{PatientID: "patient-1", BloodType: "O-"})
		assert.NoError(t, err)
	})

	t.Run("Unknown Patient Rejected", func(t *testing.T) {
		usecase, _, _ := newTestUsecase()

		_, err := usecase.FileDonorRequest(ctx, &requests.FileDonorRequest{PatientID: "ghost", RequestedOrgan: "kidney"})

		assert.Error(t, err)
	})

	t.Run("Clinician Cannot Stand In As Donor", func(t *testing.T) {
		usecase, _, _ := newTestUsecase()

		_, err := usecase.FileDonorRequest(ctx, &requests.FileDonorRequest{
			PatientID:      "patient-1",
			DonorID:        "clin-1",
			RequestedOrgan: "kidney",
		})

		assert.Error(t, err)
	})
}

func TestUpdateDonorRequest(t *testing.T) {
	ctx := context.Background()

	t.Run("Blood Only Flag Survives Organ Change", func(t *testing.T) {
		usecase, _, _ := newTestUsecase()

		filed, err := usecase.FileDonorRequest(ctx, &requests.FileDonorRequest{PatientID: "patient-1", BloodType: "O+"})
		require.NoError(t, err)
		require.True(t, filed.BloodOnly)

		organ := "kidney"
		updated, err := usecase.UpdateDonorRequest(ctx, filed.ID, &requests.UpdateDonorRequest{RequestedOrgan: &organ})

		require.NoError(t, err)
		assert.Equal(t, "kidney", updated.RequestedOrgan)
		assert.True(t, updated.BloodOnly, "bloodOnly is fixed at filing time")
	})

	t.Run("Assigns Donor", func(t *testing.T) {
		usecase, _, _ := newTestUsecase()

		filed, err := usecase.FileDonorRequest(ctx, &requests.FileDonorRequest{PatientID: "patient-1", RequestedOrgan: "kidney"})
		require.NoError(t, err)

		updated, err := usecase.UpdateDonorRequest(ctx, filed.ID, &requests.UpdateDonorRequest{DonorID: "donor-1", Status: "matched"})

		require.NoError(t, err)
		assert.Equal(t, "donor-1", updated.Donor.ID)
		assert.Equal(t, "matched", updated.Status)
	})

	t.Run("Unknown Status Rejected", func(t *testing.T) {
		usecase, _, _ := newTestUsecase()

		filed, err := usecase.FileDonorRequest(ctx, &requests.FileDonorRequest{PatientID: "patient-1", RequestedOrgan: "kidney"})
		require.NoError(t, err)

		_, err = usecase.UpdateDonorRequest(ctx, filed.ID, &requests.UpdateDonorRequest{Status: "granted"})

		assert.Error(t, err)
	})

	t.Run("Missing Request Not Found", func(t *testing.T) {
		usecase, _, _ := newTestUsecase()

		_, err := usecase.UpdateDonorRequest(ctx, "req-404", &requests.UpdateDonorRequest{Status: "matched"})

		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, 404, customErr.StatusCode)
	})
}

func TestListDonorRequests(t *testing.T) {
	ctx := context.Background()

	t.Run("Blood Only Filter", func(t *testing.T) {
		usecase, _, _ := newTestUsecase()

		_, err := usecase.FileDonorRequest(ctx, &requests.FileDonorRequest{PatientID: "patient-1", RequestedOrgan: "kidney"})
		require.NoError(t, err)
		_, err = usecase.FileDonorRequest(ctx, &requests.FileDonorRequest{PatientID: "patient-1", BloodType: "O+"})
		require.NoError(t, err)

		bloodOnly := true
		result, err := usecase.ListDonorRequests(ctx, DonorRequestFilter{BloodOnly: &bloodOnly})

		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.True(t, result[0].BloodOnly)
	})

	t.Run("Filters Compose With AND", func(t *testing.T) {
		usecase, _, _ := newTestUsecase()

		_, err := usecase.FileDonorRequest(ctx, &requests.FileDonorRequest{PatientID: "patient-1", RequestedOrgan: "kidney"})
		require.NoError(t, err)
		_, err = usecase.FileDonorRequest(ctx, &requests.FileDonorRequest{PatientID: "patient-2", RequestedOrgan: "kidney"})
		require.NoError(t, err)

		result, err := usecase.ListDonorRequests(ctx, DonorRequestFilter{
			PatientID:      "patient-2",
			RequestedOrgan: "kidney",
		})

		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, "patient-2", result[0].Patient.ID)
	})
}

func TestWithdrawDonorRequest(t *testing.T) {
	ctx := context.Background()

	t.Run("Withdraw Frees The Pair", func(t *testing.T) {
		usecase, _, eventQueue := newTestUsecase()

		filed, err := usecase.FileDonorRequest(ctx, &requests.FileDonorRequest{PatientID: "patient-1", RequestedOrgan: "kidney"})
		require.NoError(t, err)

		require.NoError(t, usecase.WithdrawDonorRequest(ctx, filed.ID))
		assert.Contains(t, eventQueue.published, "donor_request.withdrawn")

		_, err = usecase.FileDonorRequest(ctx, &requests.FileDonorRequest{PatientID: "patient-1", RequestedOrgan: "kidney"})
		assert.NoError(t, err, "withdrawn request no longer blocks a new filing")
	})

	t.Run("Missing Request Not Found", func(t *testing.T) {
		usecase, _, _ := newTestUsecase()

		err := usecase.WithdrawDonorRequest(ctx, "req-404")

		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, 404, customErr.StatusCode)
	})
}
