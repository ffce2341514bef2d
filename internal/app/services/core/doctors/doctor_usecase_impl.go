package doctors

import (
	"context"
	"errors"
	"mime/multipart"
	"strings"
	"sync"
	"time"

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

type doctorUsecase struct {
	DoctorRepository   contracts.DoctorRepository
	UserRepository     contracts.UserRepository
	ReferralRepository contracts.ReferralRepository
	MinioStorage       contracts.Storage
	InternalConfig     *config.InternalConfig
	Log                *zap.Logger
}

var (
	doctorUsecaseInstance contracts.DoctorUsecase
	onceDoctorUsecase     sync.Once
)

func NewDoctorUsecase(
	doctorRepository contracts.DoctorRepository,
	userRepository contracts.UserRepository,
	referralRepository contracts.ReferralRepository,
	minioStorage contracts.Storage,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.DoctorUsecase {
	onceDoctorUsecase.Do(func() {
		doctorUsecaseInstance = &doctorUsecase{
			DoctorRepository:   doctorRepository,
			UserRepository:     userRepository,
			ReferralRepository: referralRepository,
			MinioStorage:       minioStorage,
			InternalConfig:     internalConfig,
			Log:                logger,
		}
	})
	return doctorUsecaseInstance
}

func (uc *doctorUsecase) SaveDoctor(ctx context.Context, request *requests.SaveDoctor) (*responses.Doctor, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("doctorUsecase.SaveDoctor called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	link := strings.ToLower(strings.TrimSpace(request.Link))
	existingByLink, err := uc.DoctorRepository.FindByLink(ctx, link)
	if err != nil {
		return nil, err
	}
	if existingByLink != nil && existingByLink.CustomerID != request.CustomerID {
		return nil, exceptions.ErrLinkAlreadyTaken(errors.New("link owned by another doctor"))
	}

	doctor, err := uc.DoctorRepository.FindByCustomerID(ctx, request.CustomerID)
	if err != nil {
		return nil, err
	}

	if doctor != nil {
		doctor.Name = request.Name
		doctor.Specialty = request.Specialty
		doctor.Link = link
		doctor.About = request.About
		doctor.Email = request.Email
		doctor.SetUpdatedAt()
		err = uc.DoctorRepository.UpdateDoctor(ctx, doctor)
		if err != nil {
			uc.Log.Error("doctorUsecase.SaveDoctor error updating doctor",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, err
		}
	} else {
		doctor = &models.Doctor{
			CustomerID: request.CustomerID,
			Name:       request.Name,
			Specialty:  request.Specialty,
			Link:       link,
			About:      request.About,
			Email:      request.Email,
		}
		doctor.SetCreatedAtUpdatedAt()
		doctorID, err := uc.DoctorRepository.CreateDoctor(ctx, doctor)
		if err != nil {
			uc.Log.Error("doctorUsecase.SaveDoctor error creating doctor",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, err
		}
		doctor.ID = doctorID
	}

	uc.Log.Info("doctorUsecase.SaveDoctor succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctor.ID),
	)
	return uc.buildDoctorResponse(ctx, doctor), nil
}

func (uc *doctorUsecase) GetDoctorByLink(ctx context.Context, link string) (*responses.Doctor, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("doctorUsecase.GetDoctorByLink called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	doctor, err := uc.DoctorRepository.FindByLink(ctx, strings.ToLower(strings.TrimSpace(link)))
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotFound(errors.New("no doctor for link"))
	}
	return uc.buildDoctorResponse(ctx, doctor), nil
}

func (uc *doctorUsecase) GetDoctorByCustomerID(ctx context.Context, customerID string) (*responses.Doctor, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("doctorUsecase.GetDoctorByCustomerID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	doctor, err := uc.DoctorRepository.FindByCustomerID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotFound(errors.New("no doctor for customer"))
	}
	return uc.buildDoctorResponse(ctx, doctor), nil
}

func (uc *doctorUsecase) TrialSignup(ctx context.Context, request *requests.TrialSignup) (*responses.TrialSignup, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("doctorUsecase.TrialSignup called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	existingUser, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if existingUser != nil {
		return nil, exceptions.ErrEmailAlreadyExist(nil)
	}

	link := strings.ToLower(strings.TrimSpace(request.Link))
	existingByLink, err := uc.DoctorRepository.FindByLink(ctx, link)
	if err != nil {
		return nil, err
	}
	if existingByLink != nil {
		return nil, exceptions.ErrLinkAlreadyTaken(errors.New("link owned by another doctor"))
	}

	trialCustomerID, err := utils.GenerateTrialCustomerID()
	if err != nil {
		uc.Log.Error("doctorUsecase.TrialSignup error generating trial customer ID",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrGenerateCustomerID(err)
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	doctor := &models.Doctor{
		CustomerID: trialCustomerID,
		Name:       request.Name,
		Specialty:  request.Specialty,
		Link:       link,
		Email:      request.Email,
	}
	doctor.SetCreatedAtUpdatedAt()
	doctorID, err := uc.DoctorRepository.CreateDoctor(ctx, doctor)
	if err != nil {
		uc.Log.Error("doctorUsecase.TrialSignup error creating doctor",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	doctor.ID = doctorID

	user := &models.User{
		CustomerID: trialCustomerID,
		Email:      request.Email,
		Password:   hashedPassword,
		DoctorID:   doctorID,
	}
	user.SetCreatedAtUpdatedAt()
	_, err = uc.UserRepository.CreateUser(ctx, user)
	if err != nil {
		uc.Log.Error("doctorUsecase.TrialSignup error creating user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("doctorUsecase.TrialSignup succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)
	return &responses.TrialSignup{
		Doctor:     *uc.buildDoctorResponse(ctx, doctor),
		CustomerID: trialCustomerID,
	}, nil
}

func (uc *doctorUsecase) UploadDoctorPhoto(ctx context.Context, doctorID string, file multipart.File, fileHeader *multipart.FileHeader) (*responses.Doctor, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("doctorUsecase.UploadDoctorPhoto called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)

	doctor, err := uc.DoctorRepository.FindByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotFound(errors.New("no doctor for id"))
	}

	err = utils.ValidateImage(fileHeader, uc.InternalConfig.Minio.PhotoMaxUploadSizeInMB)
	if err != nil {
		return nil, exceptions.ErrImageValidation(err)
	}

	fileHeader.Filename = utils.GenerateUniqueFilename(fileHeader.Filename)
	objectName, err := uc.MinioStorage.UploadFile(ctx, file, fileHeader, uc.InternalConfig.Minio.BucketName)
	if err != nil {
		uc.Log.Error("doctorUsecase.UploadDoctorPhoto error uploading photo",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	doctor.PhotoObject = objectName
	doctor.SetUpdatedAt()
	err = uc.DoctorRepository.UpdateDoctor(ctx, doctor)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("doctorUsecase.UploadDoctorPhoto succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingObjectNameKey, objectName),
	)
	return uc.buildDoctorResponse(ctx, doctor), nil
}

func (uc *doctorUsecase) SaveReferral(ctx context.Context, request *requests.SaveReferral) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("doctorUsecase.SaveReferral called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	referral := &models.Referral{
		Name:      request.Name,
		Email:     request.Email,
		Specialty: request.Specialty,
		Message:   request.Message,
	}
	referral.SetCreatedAtUpdatedAt()
	_, err := uc.ReferralRepository.CreateReferral(ctx, referral)
	if err != nil {
		uc.Log.Error("doctorUsecase.SaveReferral error creating referral",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	uc.Log.Info("doctorUsecase.SaveReferral succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return nil
}

func (uc *doctorUsecase) buildDoctorResponse(ctx context.Context, doctor *models.Doctor) *responses.Doctor {
	response := &responses.Doctor{
		ID:         doctor.ID,
		CustomerID: doctor.CustomerID,
		Name:       doctor.Name,
		Specialty:  doctor.Specialty,
		Link:       doctor.Link,
		About:      doctor.About,
		Email:      doctor.Email,
	}

	if doctor.IsTrial() {
		now := time.Now()
		expired := doctor.TrialExpired(now)
		remaining := doctor.TrialDaysRemaining(now)
		response.TrialExpired = &expired
		response.TrialDaysRemaining = &remaining
	}

	if doctor.PhotoObject != "" {
		expiry := time.Duration(uc.InternalConfig.Minio.PreSignedUrlObjectExpiryTimeInHours) * time.Hour
		photoURL, err := uc.MinioStorage.GetObjectUrlWithExpiryTime(ctx, uc.InternalConfig.Minio.BucketName, doctor.PhotoObject, expiry)
		if err != nil {
			requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
			uc.Log.Warn("doctorUsecase.buildDoctorResponse error building photo URL",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingObjectNameKey, doctor.PhotoObject),
				zap.Error(err),
			)
		} else {
			response.PhotoURL = photoURL
		}
	}

	return response
}
