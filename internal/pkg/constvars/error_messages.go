package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"alphanum": "must contain only alphanumeric characters",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"eqfield":  "must match %s",
	"password": "must be at least 8 characters long, contain at least one special character, and one uppercase letter",
	"numeric":  "must be a number",
	"oneof":    "must be one of [%s]",
	"gt":       "must be greater than %s",
	"gte":      "must be greater than or equal to %s",
	"datetime": "must match the expected date format",
	"url":      "must be a valid URL",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":     true,
	"max":     true,
	"eqfield": true,
	"oneof":   true,
	"gt":      true,
	"gte":     true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientInvalidEmailOrPassword        = "invalid email or password"
	ErrClientEmailAlreadyExists            = "email already used"

	// Schedule generation
	ErrClientScheduleTextTooShort = "please describe your working hours in a bit more detail"
	ErrClientScheduleOffTopic     = "that doesn't look like a work schedule, please describe your working hours"
	ErrClientScheduleIncomplete   = "we couldn't understand your schedule, please mention the days, start and end time, and appointment length"
	ErrClientNoSlotsGenerated     = "no available slots could be generated from this schedule"
	ErrClientExtractionFailed     = "we couldn't process your schedule right now, please try again"

	// Doctors
	ErrClientDoctorNotFound      = "doctor not found"
	ErrClientLinkAlreadyTaken    = "this booking link is already taken"
	ErrClientTrialExpired        = "your trial period has expired"
	ErrClientPhotoTooLarge       = "the photo you uploaded is too large"
	ErrClientInvalidPhotoFormat  = "the photo you uploaded does not meet the specified standards"
	ErrClientCustomerIDNotLinked = "no doctor profile is linked to this account"

	// Booking
	ErrClientSlotNotFound      = "this slot is not available"
	ErrClientSlotAlreadyBooked = "this slot has just been booked by someone else"
	ErrClientBookingContention = "this slot is being booked right now, please try another one"

	// Payments
	ErrClientPaymentGatewayFailed = "payment service is unavailable right now, please try again"
	ErrClientCustomerNotFound     = "customer not found"
)

// Error messages for developers
const (
	ErrDevInvalidInput             = "invalid input"
	ErrDevCannotParseJSON          = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON        = "cannot convert struct or other data types to JSON"
	ErrDevCannotParseTime          = "cannot parse time into the given format"
	ErrDevCannotParseDate          = "cannot parse the requested date"
	ErrDevCannotParseMultipartForm = "cannot parse multipart form body"
	ErrDevInvalidFormat            = "invalid %s format"
	ErrDevBuildRequest             = "encountering error while building request DTO"
	ErrDevCreateHTTPRequest        = "failed to create HTTP request"
	ErrDevSendHTTPRequest          = "failed to send HTTP request"
	ErrDevFailedToHashPassword     = "failed to hash password"
	ErrDevInvalidCredentials       = "invalid credentials"
	ErrDevURLParamValidationFailed = "parameter %s validation failed"

	// Schedule generation
	ErrDevScheduleTextTooShort    = "schedule text shorter than minimum length"
	ErrDevScheduleOffTopic        = "schedule text matched off-topic denylist keyword %q"
	ErrDevScheduleMissingFields   = "extracted schedule missing required fields: %s"
	ErrDevScheduleNoSlots         = "generation produced zero slots"
	ErrDevExtractionRequestFailed = "schedule extraction request failed"
	ErrDevExtractionBadPayload    = "schedule extraction returned unparsable payload"
	ErrDevExtractionRateLimited   = "schedule extraction rate limiter rejected the request"

	// Usecase messages
	ErrDevEmailAlreadyExists = "email already exists"
	ErrDevUserNotExists      = "user not exists in our system"
	ErrDevDoctorNotExists    = "doctor not exists in our system"
	ErrDevLinkAlreadyTaken   = "booking link already belongs to another doctor"
	ErrDevGenerateCustomerID = "failed to generate trial customer identifier"
	ErrDevSlotNotAvailable   = "slot not found with status available"
	ErrDevBookingLockDenied  = "booking lock held by a concurrent request"

	// Validation messages
	ErrDevValidationFailed      = "validation failed"
	ErrDevInvalidRequestPayload = "invalid request payload"
	ErrDevMissingRequiredFields = "missing required fields"
	ErrDevImageValidationFailed = "image validation failed"

	// Authentication messages
	ErrDevAuthSigningMethod         = "unexpected signing method"
	ErrDevAuthTokenInvalidOrExpired = "invalid or expired token"
	ErrDevAuthTokenMissing          = "token missing"
	ErrDevAuthInvalidSession        = "invalid session"
	ErrDevAuthGenerateToken         = "failed to generate token"

	// Database messages
	ErrDevDBFailedToInsertDocument   = "failed to insert document into database"
	ErrDevDBFailedToUpdateDocument   = "failed to update document into database"
	ErrDevDBFailedToFindDocument     = "failed when do find document on database"
	ErrDevDBFailedToDeleteDocument   = "failed when do delete document on database"
	ErrDevDBFailedToIterateDocuments = "failed when iterating documents from database"
	ErrDevDBStringNotObjectID        = "given ID is not valid object ID"

	// Redis messages
	ErrDevRedisSetData    = "failed to SET data into redis"
	ErrDevRedisGetData    = "failed to GET data from redis"
	ErrDevRedisGetNoData  = "failed to GET data from redis, there is no data associated with key %s"
	ErrDevRedisDeleteData = "failed to DELETE data from redis"
	ErrDevRedisSetNX      = "failed to SETNX data into redis"
	ErrDevRedisUnlock     = "failed to release redis lock"

	// RabbitMQ messages
	ErrDevRabbitMQPublishMessage = "failed to publish message to queue %s"
	ErrDevRabbitMQDeclareQueue   = "failed to declare queue %s"

	// Minio messages
	ErrDevMinioFailedToCreateObject = "failed to create object into minio storage with bucket name '%s'"

	// Payment gateway messages
	ErrDevPaymentGatewayRequest   = "payment gateway request failed"
	ErrDevPaymentGatewayDecode    = "failed to decode payment gateway response"
	ErrDevPaymentCustomerNotFound = "customer does not exist on the payment gateway"

	// Calendar messages
	ErrDevCalendarSerialize = "failed to serialize appointments calendar"

	// Server messages
	ErrDevServerDeadlineExceeded = "deadline exceeded"
	ErrDevServerParseSessionData = "failed to parse session data"
	ErrDevMissingRequestID       = "request ID missing from context"
)
