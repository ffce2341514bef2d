package contracts

import (
	"context"

	"slotly-service/internal/app/models"
	"slotly-service/internal/pkg/dto/requests"
	"slotly-service/internal/pkg/dto/responses"
)

type AuthUsecase interface {
	SetPassword(ctx context.Context, request *requests.SetPassword) (*responses.SetPassword, error)
	Login(ctx context.Context, request *requests.Login) (*responses.Login, error)
	Logout(ctx context.Context, sessionData string) error
}

type UserRepository interface {
	CreateUser(ctx context.Context, userModel *models.User) (userID string, err error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, userID string) (*models.User, error)
	FindByCustomerID(ctx context.Context, customerID string) (*models.User, error)
	UpdateUser(ctx context.Context, userModel *models.User) error
}
