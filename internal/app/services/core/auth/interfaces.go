package auth

import (
	"carelink-service/internal/pkg/dto/requests"
	"carelink-service/internal/pkg/dto/responses"
	"context"
)

type AuthUsecase interface {
	Register(ctx context.Context, request *requests.Register) (*responses.Register, error)
	Login(ctx context.Context, request *requests.Login) (*responses.Login, error)
	Logout(ctx context.Context, sessionID string) error
}
