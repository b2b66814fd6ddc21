package ratings

import (
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

func newTestUsecase() RatingUsecase {
	return NewRatingUsecase(&fakeDirectoryRepository{users: map[string]models.User{
		"clin-1":    {ID: "clin-1", Name: "Dr. Carter", Role: models.RoleClinician},
		"patient-1": {ID: "patient-1", Name: "Pat", Role: models.RolePatient},
		"patient-2": {ID: "patient-2", Name: "Paula", Role: models.RolePatient},
	}})
}

func TestSubmitRating(t *testing.T) {
	ctx := context.Background()

	t.Run("First Rating Sets The Mean", func(t *testing.T) {
		usecase := newTestUsecase()

		result, err := usecase.SubmitRating(ctx, "clin-1", &requests.SubmitRating{RaterID: "patient-1", Score: 4})

		require.NoError(t, err)
		assert.Equal(t, 4.0, result.Rating)
		assert.Equal(t, 1, result.RatedBy)
	})

	t.Run("Repeat Rating Overwrites", func(t *testing.T) {
		usecase := newTestUsecase()

		_, err := usecase.SubmitRating(ctx, "clin-1", &requests.SubmitRating{RaterID: "patient-1", Score: 5})
		require.NoError(t, err)

		result, err := usecase.SubmitRating(ctx, "clin-1", &requests.SubmitRating{RaterID: "patient-1", Score: 1})

		require.NoError(t, err)
		assert.Equal(t, 1.0, result.Rating)
		assert.Equal(t, 1, result.RatedBy, "the rater still counts once")
	})

	t.Run("Mean Over Multiple Raters", func(t *testing.T) {
		usecase := newTestUsecase()

		_, err := usecase.SubmitRating(ctx, "clin-1", &requests.SubmitRating{RaterID: "patient-1", Score: 5})
		require.NoError(t, err)

		result, err := usecase.SubmitRating(ctx, "clin-1", &requests.SubmitRating{RaterID: "patient-2", Score: 2})

		require.NoError(t, err)
		assert.Equal(t, 3.5, result.Rating)
		assert.Equal(t, 2, result.RatedBy)
	})

	t.Run("Score Out Of Range Rejected", func(t *testing.T) {
		usecase := newTestUsecase()

		for _, score := range []int{0, 6, -1} {
			_, err := usecase.SubmitRating(ctx, "clin-1", &requests.SubmitRating{RaterID: "patient-1", Score: score})
			require.Error(t, err)
			customErr, ok := err.(*exceptions.CustomError)
			require.True(t, ok)
			assert.Equal(t, 400, customErr.StatusCode)
		}
	})

	t.Run("Unknown Rater Rejected", func(t *testing.T) {
		usecase := newTestUsecase()

		_, err := usecase.SubmitRating(ctx, "clin-1", &requests.SubmitRating{RaterID: "ghost", Score: 3})

		assert.Error(t, err)
	})

	t.Run("Rating A Patient Not Found", func(t *testing.T) {
		usecase := newTestUsecase()

		_, err := usecase.SubmitRating(ctx, "patient-2", &requests.SubmitRating{RaterID: "patient-1", Score: 3})

		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, 404, customErr.StatusCode)
	})
}
