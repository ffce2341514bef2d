package contracts

import (
	"context"
	"mime/multipart"

	"slotly-service/internal/app/models"
	"slotly-service/internal/pkg/dto/requests"
	"slotly-service/internal/pkg/dto/responses"
)

type DoctorUsecase interface {
	SaveDoctor(ctx context.Context, request *requests.SaveDoctor) (*responses.Doctor, error)
	GetDoctorByLink(ctx context.Context, link string) (*responses.Doctor, error)
	GetDoctorByCustomerID(ctx context.Context, customerID string) (*responses.Doctor, error)
	TrialSignup(ctx context.Context, request *requests.TrialSignup) (*responses.TrialSignup, error)
	UploadDoctorPhoto(ctx context.Context, doctorID string, file multipart.File, fileHeader *multipart.FileHeader) (*responses.Doctor, error)
	SaveReferral(ctx context.Context, request *requests.SaveReferral) error
}

type DoctorRepository interface {
	CreateDoctor(ctx context.Context, doctorModel *models.Doctor) (doctorID string, err error)
	FindByID(ctx context.Context, doctorID string) (*models.Doctor, error)
	FindByCustomerID(ctx context.Context, customerID string) (*models.Doctor, error)
	FindByLink(ctx context.Context, link string) (*models.Doctor, error)
	UpdateDoctor(ctx context.Context, doctorModel *models.Doctor) error
}

type ReferralRepository interface {
	CreateReferral(ctx context.Context, referralModel *models.Referral) (referralID string, err error)
}
