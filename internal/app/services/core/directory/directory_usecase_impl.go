package directory

import (
	"carelink-service/internal/app/config"
	"carelink-service/internal/app/models"
	"carelink-service/internal/app/services/core/availability"
	"carelink-service/internal/app/services/shared/storage"
	"carelink-service/internal/pkg/dto/requests"
	"carelink-service/internal/pkg/dto/responses"
	"carelink-service/internal/pkg/exceptions"
	"carelink-service/internal/pkg/utils"
	"context"
	"fmt"
)

type DirectoryUsecaseImpl struct {
	DirectoryRepository DirectoryRepository
	Storage             storage.Storage
	InternalConfig      *config.InternalConfig
}

func NewDirectoryUsecase(
	directoryRepository DirectoryRepository,
	storageService storage.Storage,
	internalConfig *config.InternalConfig,
) DirectoryUsecase {
	return &DirectoryUsecaseImpl{
		DirectoryRepository: directoryRepository,
		Storage:             storageService,
		InternalConfig:      internalConfig,
	}
}

func (uc *DirectoryUsecaseImpl) ListEntries(ctx context.Context, role models.Role, nameFilter string) ([]responses.DirectoryEntry, error) {
	users, err := uc.DirectoryRepository.FindByRole(ctx, role, nameFilter)
	if err != nil {
		return nil, err
	}

	entries := make([]responses.DirectoryEntry, 0, len(users))
	for i := range users {
		entries = append(entries, *buildDirectoryEntryResponse(&users[i]))
	}
	return entries, nil
}

func (uc *DirectoryUsecaseImpl) GetEntry(ctx context.Context, role models.Role, entryID string) (*responses.DirectoryEntry, error) {
	user, err := uc.findEntryWithRole(ctx, role, entryID)
	if err != nil {
		return nil, err
	}
	return buildDirectoryEntryResponse(user), nil
}

func (uc *DirectoryUsecaseImpl) UpdateEntry(ctx context.Context, role models.Role, entryID string, request *requests.UpdateEntry) (*responses.DirectoryEntry, error) {
	user, err := uc.findEntryWithRole(ctx, role, entryID)
	if err != nil {
		return nil, err
	}

	if request.Name != "" {
		user.Name = request.Name
	}
	if request.Email != "" && request.Email != user.Email {
		if err := utils.ValidateEmail(request.Email); err != nil {
			return nil, exceptions.ErrEmailValidation(err)
		}
		existing, err := uc.DirectoryRepository.FindByEmail(ctx, request.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != user.ID {
			return nil, exceptions.ErrEmailAlreadyExist(fmt.Errorf("email %s taken by entry %s", request.Email, existing.ID))
		}
		user.Email = request.Email
	}
	if request.Gender != nil {
		user.Gender = *request.Gender
	}
	if request.Phone != nil {
		user.Phone = *request.Phone
	}
	if request.EmergencyNumber != nil {
		user.EmergencyNumber = *request.EmergencyNumber
	}
	if request.BloodType != nil {
		user.BloodType = *request.BloodType
	}
	if request.Specialization != nil {
		user.Specialization = *request.Specialization
	}
	if request.SelectedOrgans != nil {
		user.SelectedOrgans = request.SelectedOrgans
	}

	if len(request.ProfilePictureData) > 0 {
		objectName := utils.GenerateProfilePictureObjectName(user.ID, request.ProfilePictureExtension)
		objectURL, err := uc.Storage.UploadBase64Image(ctx, request.ProfilePictureData, objectName, request.ProfilePictureExtension)
		if err != nil {
			return nil, err
		}
		user.ProfilePicture = objectURL
	}

	if request.WeeklyAvailability != nil {
		if user.Role != models.RoleClinician {
			return nil, exceptions.ErrClinicianNotExist(fmt.Errorf("entry %s is a %s, only clinicians carry a weekly schedule", user.ID, user.Role))
		}
		schedule, err := availability.EncodeWeeklySchedule(request.WeeklyAvailability)
		if err != nil {
			return nil, err
		}
		user.WeeklySchedule = schedule
	}

	if err := uc.DirectoryRepository.UpdateUser(ctx, user); err != nil {
		return nil, err
	}
	return buildDirectoryEntryResponse(user), nil
}

func (uc *DirectoryUsecaseImpl) DeleteEntry(ctx context.Context, role models.Role, entryID string) error {
	if _, err := uc.findEntryWithRole(ctx, role, entryID); err != nil {
		return err
	}
	// Deleting an entry never cascades: appointments and donor requests keep
	// their references and listings simply skip unresolved ones.
	deleted, err := uc.DirectoryRepository.DeleteByID(ctx, entryID)
	if err != nil {
		return err
	}
	if !deleted {
		return roleNotExistError(role, fmt.Errorf("entry %s vanished before delete", entryID))
	}
	return nil
}

func (uc *DirectoryUsecaseImpl) SetWeeklyAvailability(ctx context.Context, clinicianID string, request *requests.SetWeeklyAvailability) (*responses.DirectoryEntry, error) {
	user, err := uc.findEntryWithRole(ctx, models.RoleClinician, clinicianID)
	if err != nil {
		return nil, err
	}

	// The whole batch validates before anything is stored: one bad window
	// rejects the request and the prior schedule stays untouched.
	schedule, err := availability.EncodeWeeklySchedule(request.Windows)
	if err != nil {
		return nil, err
	}
	user.WeeklySchedule = schedule

	if err := uc.DirectoryRepository.UpdateUser(ctx, user); err != nil {
		return nil, err
	}
	return buildDirectoryEntryResponse(user), nil
}

// findEntryWithRole resolves an entry and enforces that it carries the role
// the route addressed. An entry reached through the wrong role collection is
// reported as not found, not as a different error, so the routes never leak
// which IDs exist under other roles.
func (uc *DirectoryUsecaseImpl) findEntryWithRole(ctx context.Context, role models.Role, entryID string) (*models.User, error) {
	user, err := uc.DirectoryRepository.FindByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	if user == nil || user.Role != role {
		return nil, roleNotExistError(role, fmt.Errorf("no %s entry with id %s", role, entryID))
	}
	return user, nil
}

func roleNotExistError(role models.Role, err error) error {
	switch role {
	case models.RoleClinician:
		return exceptions.ErrClinicianNotExist(err)
	case models.RolePatient:
		return exceptions.ErrPatientNotExist(err)
	case models.RoleDonor:
		return exceptions.ErrDonorNotExist(err)
	default:
		return exceptions.ErrEntryNotExist(err)
	}
}

func buildDirectoryEntryResponse(user *models.User) *responses.DirectoryEntry {
	ratedBy := make([]responses.RatingEntry, 0, len(user.RatedBy))
	for _, entry := range user.RatedBy {
		ratedBy = append(ratedBy, responses.RatingEntry{RaterID: entry.RaterID, Score: entry.Score})
	}
	return &responses.DirectoryEntry{
		ID:              user.ID,
		Name:            user.Name,
		Email:           user.Email,
		Role:            string(user.Role),
		Gender:          user.Gender,
		Phone:           user.Phone,
		EmergencyNumber: user.EmergencyNumber,
		ProfilePicture:  user.ProfilePicture,
		BloodType:       user.BloodType,
		SelectedOrgans:  user.SelectedOrgans,
		Specialization:  user.Specialization,
		Rating:          user.Rating,
		RatedBy:         ratedBy,
		WeeklySchedule:  availability.DecodeWeeklySchedule(user.WeeklySchedule),
		CreatedAt:       user.CreatedAt,
		UpdatedAt:       user.UpdatedAt,
	}
}

// BuildPersonSummary is the projection appointments and donor requests use
// when they resolve participant references.
func BuildPersonSummary(user *models.User) *responses.PersonSummary {
	if user == nil {
		return nil
	}
	return &responses.PersonSummary{
		ID:             user.ID,
		Name:           user.Name,
		Email:          user.Email,
		Specialization: user.Specialization,
		ProfilePicture: user.ProfilePicture,
	}
}
