package auth

import (
	"context"
	"errors"
	"sync"

	"slotly-service/internal/app/config"
	"slotly-service/internal/app/contracts"
	"slotly-service/internal/app/models"
	"slotly-service/internal/pkg/constvars"
	"slotly-service/internal/pkg/dto/requests"
	"slotly-service/internal/pkg/dto/responses"
	"slotly-service/internal/pkg/exceptions"
	"slotly-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type authUsecase struct {
	UserRepository        contracts.UserRepository
	DoctorRepository      contracts.DoctorRepository
	SessionService        contracts.SessionService
	PaymentGatewayService contracts.PaymentGatewayService
	InternalConfig        *config.InternalConfig
	Log                   *zap.Logger
}

var (
	authUsecaseInstance contracts.AuthUsecase
	onceAuthUsecase     sync.Once
)

func NewAuthUsecase(
	userRepository contracts.UserRepository,
	doctorRepository contracts.DoctorRepository,
	sessionService contracts.SessionService,
	paymentGatewayService contracts.PaymentGatewayService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AuthUsecase {
	onceAuthUsecase.Do(func() {
		authUsecaseInstance = &authUsecase{
			UserRepository:        userRepository,
			DoctorRepository:      doctorRepository,
			SessionService:        sessionService,
			PaymentGatewayService: paymentGatewayService,
			InternalConfig:        internalConfig,
			Log:                   logger,
		}
	})
	return authUsecaseInstance
}

func (uc *authUsecase) SetPassword(ctx context.Context, request *requests.SetPassword) (*responses.SetPassword, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.SetPassword called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	customer, err := uc.PaymentGatewayService.GetCustomer(ctx, request.CustomerID)
	if err != nil {
		uc.Log.Error("authUsecase.SetPassword error retrieving customer",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		uc.Log.Error("authUsecase.SetPassword error hashing password",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrHashPassword(err)
	}

	user, err := uc.UserRepository.FindByCustomerID(ctx, request.CustomerID)
	if err != nil {
		return nil, err
	}

	doctorID := ""
	doctor, err := uc.DoctorRepository.FindByCustomerID(ctx, request.CustomerID)
	if err == nil && doctor != nil {
		doctorID = doctor.ID
	}

	if user != nil {
		user.Email = customer.Email
		user.Password = hashedPassword
		user.DoctorID = doctorID
		user.SetUpdatedAt()
		err = uc.UserRepository.UpdateUser(ctx, user)
		if err != nil {
			uc.Log.Error("authUsecase.SetPassword error updating user",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, err
		}
	} else {
		newUser := &models.User{
			CustomerID: request.CustomerID,
			Email:      customer.Email,
			Password:   hashedPassword,
			DoctorID:   doctorID,
		}
		newUser.SetCreatedAtUpdatedAt()
		_, err = uc.UserRepository.CreateUser(ctx, newUser)
		if err != nil {
			uc.Log.Error("authUsecase.SetPassword error creating user",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, err
		}
	}

	uc.Log.Info("authUsecase.SetPassword succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return &responses.SetPassword{CustomerID: request.CustomerID}, nil
}

func (uc *authUsecase) Login(ctx context.Context, request *requests.Login) (*responses.Login, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	user, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrInvalidEmailOrPassword(errors.New("user not found"))
	}

	if !utils.CheckPasswordHash(request.Password, user.Password) {
		return nil, exceptions.ErrInvalidEmailOrPassword(errors.New("password mismatch"))
	}

	doctorID := user.DoctorID
	if doctorID == "" {
		doctor, err := uc.DoctorRepository.FindByCustomerID(ctx, user.CustomerID)
		if err == nil && doctor != nil {
			doctorID = doctor.ID
		}
	}

	session := &models.Session{
		SessionID:  utils.GenerateSessionID(),
		UserID:     user.ID,
		Email:      user.Email,
		CustomerID: user.CustomerID,
		DoctorID:   doctorID,
	}
	err = uc.SessionService.CreateSession(ctx, session)
	if err != nil {
		uc.Log.Error("authUsecase.Login error creating session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	token, err := utils.GenerateSessionJWT(session.SessionID, uc.InternalConfig.JWT.Secret, uc.InternalConfig.JWT.ExpTimeInHour)
	if err != nil {
		uc.Log.Error("authUsecase.Login error generating token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrTokenGenerate(err)
	}

	uc.Log.Info("authUsecase.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return &responses.Login{
		Token:      token,
		CustomerID: user.CustomerID,
		Email:      user.Email,
	}, nil
}

func (uc *authUsecase) Logout(ctx context.Context, sessionData string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Logout called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		uc.Log.Error("authUsecase.Logout error parsing session data",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	err = uc.SessionService.DeleteSession(ctx, session.SessionID)
	if err != nil {
		uc.Log.Error("authUsecase.Logout error deleting session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	uc.Log.Info("authUsecase.Logout succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return nil
}
