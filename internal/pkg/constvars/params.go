package constvars

const (
	URLParamDoctorID          = "doctor_id"
	URLParamCustomerID        = "customer_id"
	URLParamCheckoutSessionID = "checkout_session_id"
)

const (
	URLQueryParamLink       = "link"
	URLQueryParamDoctorID   = "doctor_id"
	URLQueryParamDate       = "date"
	URLQueryParamCustomerID = "customer_id"
)

const (
	FormFieldDoctorPhoto = "photo"
)
