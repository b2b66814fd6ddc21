package directory

import (
	"carelink-service/internal/app/models"
	"carelink-service/internal/pkg/dto/requests"
	"carelink-service/internal/pkg/dto/responses"
	"context"
)

type DirectoryUsecase interface {
	ListEntries(ctx context.Context, role models.Role, nameFilter string) ([]responses.DirectoryEntry, error)
	GetEntry(ctx context.Context, role models.Role, entryID string) (*responses.DirectoryEntry, error)
	UpdateEntry(ctx context.Context, role models.Role, entryID string, request *requests.UpdateEntry) (*responses.DirectoryEntry, error)
	DeleteEntry(ctx context.Context, role models.Role, entryID string) error
	SetWeeklyAvailability(ctx context.Context, clinicianID string, request *requests.SetWeeklyAvailability) (*responses.DirectoryEntry, error)
}

type DirectoryRepository interface {
	CreateUser(ctx context.Context, userModel *models.User) (userID string, err error)
	FindByID(ctx context.Context, userID string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByRole(ctx context.Context, role models.Role, nameFilter string) ([]models.User, error)
	FindByIDs(ctx context.Context, userIDs []string) (map[string]models.User, error)
	UpdateUser(ctx context.Context, userModel *models.User) error
	UpsertRating(ctx context.Context, clinicianID, raterID string, score int) (*models.User, error)
	DeleteByID(ctx context.Context, userID string) (bool, error)
}
