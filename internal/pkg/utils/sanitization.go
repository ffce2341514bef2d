package utils

import (
	"strings"

	"slotly-service/internal/pkg/dto/requests"
)

func SanitizeGenerateScheduleRequest(input *requests.GenerateSchedule) {
	input.Text = strings.TrimSpace(input.Text)
	input.DoctorID = strings.TrimSpace(input.DoctorID)
}

func SanitizeSaveDoctorRequest(input *requests.SaveDoctor) {
	input.CustomerID = strings.TrimSpace(input.CustomerID)
	input.Name = strings.TrimSpace(input.Name)
	input.Specialty = strings.TrimSpace(input.Specialty)
	input.About = strings.TrimSpace(input.About)
	input.Link = strings.ToLower(strings.TrimSpace(input.Link))
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
}

func SanitizeTrialSignupRequest(input *requests.TrialSignup) {
	input.Name = strings.TrimSpace(input.Name)
	input.Specialty = strings.TrimSpace(input.Specialty)
	input.Link = strings.ToLower(strings.TrimSpace(input.Link))
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
}

func SanitizeSaveReferralRequest(input *requests.SaveReferral) {
	input.Name = strings.TrimSpace(input.Name)
	input.Specialty = strings.TrimSpace(input.Specialty)
	input.Message = strings.TrimSpace(input.Message)
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
}

func SanitizeBookAppointmentRequest(input *requests.BookAppointment) {
	input.DoctorID = strings.TrimSpace(input.DoctorID)
	input.Date = strings.TrimSpace(input.Date)
	input.Time = strings.TrimSpace(input.Time)
	input.PatientName = strings.TrimSpace(input.PatientName)
	input.PatientPhone = strings.TrimSpace(input.PatientPhone)
	input.Notes = strings.TrimSpace(input.Notes)
	input.PatientEmail = strings.ToLower(strings.TrimSpace(input.PatientEmail))
}

func SanitizeSetPasswordRequest(input *requests.SetPassword) {
	input.CustomerID = strings.TrimSpace(input.CustomerID)
	input.Password = strings.TrimSpace(input.Password)
}

func SanitizeLoginRequest(input *requests.Login) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.Password = strings.TrimSpace(input.Password)
}

func SanitizeCreateCheckoutSessionRequest(input *requests.CreateCheckoutSession) {
	input.SuccessURL = strings.TrimSpace(input.SuccessURL)
	input.CancelURL = strings.TrimSpace(input.CancelURL)
}
