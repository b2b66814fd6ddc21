package directory

import (
	"carelink-service/internal/app/config"
	"carelink-service/internal/app/models"
	"carelink-service/internal/pkg/dto/requests"
	"carelink-service/internal/pkg/exceptions"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
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

type fakeStorage struct {
	uploads int
}

func (f *fakeStorage) UploadBase64Image(ctx context.Context, encodedImageData []byte, fileName, fileExtension string) (string, error) {
	f.uploads++
	return "https://cdn.test/" + fileName, nil
}

func newTestUsecase() (DirectoryUsecase, *fakeDirectoryRepository, *fakeStorage) {
	repo := &fakeDirectoryRepository{users: map[string]models.User{
		"clin-1": {
			ID:             "clin-1",
			Name:           "Dr. Carter",
			Email:          "carter@clinic.test",
			Role:           models.RoleClinician,
			Specialization: "Cardiology",
			Rating:         4.5,
			RatedBy: []models.Rating{
				{RaterID: "patient-1", Score: 4},
				{RaterID: "patient-2", Score: 5},
			},
		},
		"patient-1": {
			ID:    "patient-1",
			Name:  "Pat",
			Email: "pat@home.test",
			Role:  models.RolePatient,
			Phone: "555-0100",
		},
		"donor-1": {ID: "donor-1", Name: "Dana", Email: "dana@home.test", Role: models.RoleDonor},
	}}
	storage := &fakeStorage{}
	usecase := NewDirectoryUsecase(repo, storage, &config.InternalConfig{})
	return usecase, repo, storage
}

func TestListEntries(t *testing.T) {
	ctx := context.Background()

	t.Run("Role Scoped", func(t *testing.T) {
		usecase, _, _ := newTestUsecase()

		result, err := usecase.ListEntries(ctx, models.RoleClinician, "")

		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, "Dr. Carter", result[0].Name)
		assert.Equal(t, 4.5, result[0].Rating)
	})
}

func TestGetEntry(t *testing.T) {
	ctx := context.Background()

	t.Run("Wrong Role Reads As Not Found", func(t *testing.T) {
		usecase, _, _ := newTestUsecase()

		_, err := usecase.GetEntry(ctx, models.RoleDonor, "patient-1")

		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, 404, customErr.StatusCode)
	})

	t.Run("Exposes Rating Entries", func(t *testing.T) {
		usecase, _, _ := newTestUsecase()

		result, err := usecase.GetEntry(ctx, models.RoleClinician, "clin-1")

		require.NoError(t, err)
		require.Len(t, result.RatedBy, 2)
		assert.Equal(t, "patient-1", result.RatedBy[0].RaterID)
	})
}

func TestUpdateEntry(t *testing.T) {
	ctx := context.Background()

	t.Run("Omitted Fields Keep Their Values", func(t *testing.T) {
		usecase, repo, _ := newTestUsecase()

		result, err := usecase.UpdateEntry(ctx, models.RolePatient, "patient-1", &requests.UpdateEntry{
			Name: "Patricia",
		})

		require.NoError(t, err)
		assert.Equal(t, "Patricia", result.Name)
		assert.Equal(t, "555-0100", result.Phone, "unsupplied phone keeps its value")
		assert.Equal(t, "pat@home.test", repo.users["patient-1"].Email)
	})

	t.Run("Explicit Empty Clears A Pointer Field", func(t *testing.T) {
		usecase, _, _ := newTestUsecase()

		empty := ""
		result, err := usecase.UpdateEntry(ctx, models.RolePatient, "patient-1", &requests.UpdateEntry{
			Phone: &empty,
		})

		require.NoError(t, err)
		assert.Empty(t, result.Phone)
	})

	t.Run("Email Collision Conflicts", func(t *testing.T) {
		usecase, _, _ := newTestUsecase()

		_, err := usecase.UpdateEntry(ctx, models.RolePatient, "patient-1", &requests.UpdateEntry{
			Email: "dana@home.test",
		})

		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, 409, customErr.StatusCode)
	})

	t.Run("Uploads Profile Picture", func(t *testing.T) {
		usecase, _, storage := newTestUsecase()

		result, err := usecase.UpdateEntry(ctx, models.RolePatient, "patient-1", &requests.UpdateEntry{
			ProfilePictureData:      []byte{0x89, 0x50},
			ProfilePictureExtension: ".png",
		})

		require.NoError(t, err)
		assert.Equal(t, 1, storage.uploads)
		assert.Contains(t, result.ProfilePicture, "https://cdn.test/")
	})

	t.Run("Schedule Update Refused For Non Clinicians", func(t *testing.T) {
		usecase, _, _ := newTestUsecase()

		_, err := usecase.UpdateEntry(ctx, models.RolePatient, "patient-1", &requests.UpdateEntry{
			WeeklyAvailability: []requests.AvailabilityWindow{
				{Day: "Monday", Start: "09:00 AM", End: "05:00 PM"},
			},
		})

		assert.Error(t, err)
	})
}

func TestSetWeeklyAvailability(t *testing.T) {
	ctx := context.Background()

	t.Run("Stores And Echoes Display Form", func(t *testing.T) {
		usecase, repo, _ := newTestUsecase()

		result, err := usecase.SetWeeklyAvailability(ctx, "clin-1", &requests.SetWeeklyAvailability{
			Windows: []requests.AvailabilityWindow{
				{Day: "Monday", Start: "09:00 AM", End: "12:00 PM"},
				{Day: "Monday", Start: "01:00 PM", End: "05:00 PM"},
			},
		})

		require.NoError(t, err)
		require.Len(t, result.WeeklySchedule, 2)
		assert.Equal(t, "09:00 AM", result.WeeklySchedule[0].Start)
		assert.Len(t, repo.users["clin-1"].WeeklySchedule, 2)
	})

	t.Run("Invalid Batch Leaves Prior Schedule Intact", func(t *testing.T) {
		usecase, repo, _ := newTestUsecase()

		_, err := usecase.SetWeeklyAvailability(ctx, "clin-1", &requests.SetWeeklyAvailability{
			Windows: []requests.AvailabilityWindow{
				{Day: "Monday", Start: "09:00 AM", End: "12:00 PM"},
			},
		})
		require.NoError(t, err)

		_, err = usecase.SetWeeklyAvailability(ctx, "clin-1", &requests.SetWeeklyAvailability{
			Windows: []requests.AvailabilityWindow{
				{Day: "Monday", Start: "09:00 AM", End: "12:00 PM"},
				{Day: "Monday", Start: "11:00 AM", End: "02:00 PM"},
			},
		})

		require.Error(t, err)
		assert.Len(t, repo.users["clin-1"].WeeklySchedule, 1, "failed batch must not change the stored schedule")
	})

	t.Run("Patients Have No Schedule", func(t *testing.T) {
		usecase, _, _ := newTestUsecase()

		_, err := usecase.SetWeeklyAvailability(ctx, "patient-1", &requests.SetWeeklyAvailability{
			Windows: []requests.AvailabilityWindow{
				{Day: "Monday", Start: "09:00 AM", End: "12:00 PM"},
			},
		})

		assert.Error(t, err)
	})
}

func TestDeleteEntry(t *testing.T) {
	ctx := context.Background()

	t.Run("Removes The Entry", func(t *testing.T) {
		usecase, repo, _ := newTestUsecase()

		require.NoError(t, usecase.DeleteEntry(ctx, models.RoleDonor, "donor-1"))
		_, exists := repo.users["donor-1"]
		assert.False(t, exists)
	})

	t.Run("Wrong Role Not Found", func(t *testing.T) {
		usecase, repo, _ := newTestUsecase()

		err := usecase.DeleteEntry(ctx, models.RoleClinician, "donor-1")

		require.Error(t, err)
		_, exists := repo.users["donor-1"]
		assert.True(t, exists)
	})
}
