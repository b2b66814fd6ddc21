package auth

import (
	"carelink-service/internal/app/config"
	"carelink-service/internal/app/models"
	"carelink-service/internal/app/services/core/directory"
	"carelink-service/internal/app/services/shared/redis"
	"carelink-service/internal/pkg/dto/requests"
	"carelink-service/internal/pkg/dto/responses"
	"carelink-service/internal/pkg/exceptions"
	"carelink-service/internal/pkg/utils"
	"context"
	"fmt"
	"time"
)

type AuthUsecaseImpl struct {
	DirectoryRepository directory.DirectoryRepository
	RedisRepository     redis.RedisRepository
	InternalConfig      *config.InternalConfig
}

func NewAuthUsecase(
	directoryRepository directory.DirectoryRepository,
	redisRepository redis.RedisRepository,
	internalConfig *config.InternalConfig,
) AuthUsecase {
	return &AuthUsecaseImpl{
		DirectoryRepository: directoryRepository,
		RedisRepository:     redisRepository,
		InternalConfig:      internalConfig,
	}
}

func (uc *AuthUsecaseImpl) Register(ctx context.Context, request *requests.Register) (*responses.Register, error) {
	role, ok := models.ParseRole(request.Role)
	if !ok {
		return nil, exceptions.ErrInvalidRoleType(fmt.Errorf("unknown role %q", request.Role))
	}

	existing, err := uc.DirectoryRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrEmailAlreadyExist(fmt.Errorf("email %s already registered", request.Email))
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	user := &models.User{
		Name:           request.Name,
		Email:          request.Email,
		Password:       hashedPassword,
		Role:           role,
		BloodType:      request.BloodType,
		Specialization: request.Specialization,
		SelectedOrgans: request.SelectedOrgans,
	}

	userID, err := uc.DirectoryRepository.CreateUser(ctx, user)
	if err != nil {
		return nil, err
	}

	return &responses.Register{
		ID:    userID,
		Name:  user.Name,
		Email: user.Email,
		Role:  string(user.Role),
	}, nil
}

func (uc *AuthUsecaseImpl) Login(ctx context.Context, request *requests.Login) (*responses.Login, error) {
	user, err := uc.DirectoryRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	// The same error for an unknown email and a wrong password, so login
	// responses never confirm which emails are registered.
	if user == nil || !utils.CheckPasswordHash(request.Password, user.Password) {
		return nil, exceptions.ErrInvalidCredentials(fmt.Errorf("credentials rejected for %s", request.Email))
	}

	sessionExp := time.Duration(uc.InternalConfig.App.SessionExpTimeInHour) * time.Hour
	session := &models.Session{
		SessionID: utils.GenerateSessionID(),
		UserID:    user.ID,
		Email:     user.Email,
		Role:      user.Role,
	}
	if err := uc.RedisRepository.CreateSession(ctx, session, sessionExp); err != nil {
		return nil, err
	}

	jwtExp := time.Duration(uc.InternalConfig.JWT.ExpTimeInHour) * time.Hour
	token, err := utils.GenerateJWT(session.SessionID, uc.InternalConfig.JWT.Secret, jwtExp)
	if err != nil {
		return nil, err
	}

	return &responses.Login{
		Token: token,
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  string(user.Role),
	}, nil
}

func (uc *AuthUsecaseImpl) Logout(ctx context.Context, sessionID string) error {
	return uc.RedisRepository.DeleteSession(ctx, sessionID)
}
