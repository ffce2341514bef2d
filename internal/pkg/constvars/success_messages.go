package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Schedule messages
	GenerateScheduleSuccess = "schedule processed successfully"

	// Doctor messages
	DoctorSavedSuccess       = "doctor profile saved successfully"
	DoctorFetchedSuccess     = "doctor profile fetched successfully"
	DoctorPhotoUploadSuccess = "doctor photo uploaded successfully"
	TrialSignupSuccess       = "trial account created successfully"
	ReferralSavedSuccess     = "referral saved successfully"

	// Slot messages
	SlotsFetchedSuccess = "available slots fetched successfully"

	// Appointment messages
	AppointmentCreatedSuccess  = "appointment booked successfully"
	AppointmentsFetchedSuccess = "appointments fetched successfully"

	// Auth messages
	SetPasswordSuccess = "password set successfully"
	LoginSuccess       = "successfully login"
	LogoutSuccess      = "successfully logout"

	// Payment messages
	CheckoutSessionCreatedSuccess = "checkout session created successfully"
	CheckoutSessionFetchedSuccess = "checkout session fetched successfully"
	SubscriptionFetchedSuccess    = "subscription status fetched successfully"
)
