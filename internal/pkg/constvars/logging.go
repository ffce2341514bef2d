package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingDataKey           = "data"
	LoggingSessionDataKey    = "session_data"
	LoggingQueryParamsKey    = "query_params"
	LoggingResponseKey       = "response"
	LoggingRequestKey        = "request"
	LoggingResponseLengthKey = "response_length"
	LoggingMethodKey         = "method"
	LoggingEndpointKey       = "endpoint"
	LoggingRemoteAddrKey     = "remote_addr"
	LoggingUserAgentKey      = "user_agent"
	LoggingQueryKey          = "query"
	LoggingStatusCodeKey     = "status_code"
	LoggingDurationKey       = "duration"
	LoggingSuccessKey        = "success"
	LoggingDoctorIDKey       = "doctor_id"
	LoggingCustomerIDKey     = "customer_id"
	LoggingSlotDateKey       = "slot_date"
	LoggingSlotTimeKey       = "slot_time"
	LoggingTotalSlotsKey     = "total_slots"

	LoggingRedisKey              = "redis_key"
	LoggingLockValueKey          = "lock_value"
	LoggingLockExpirationTimeKey = "lock_expiration_time"
	LoggingLockStoredValueKey    = "lock_stored_value"
	LoggingLockExpectedValueKey  = "lock_expected_value"
	LoggingQueueNameKey          = "queue_name"
	LoggingObjectNameKey         = "object_name"
	LoggingSessionIDKey          = "session_id"
	LoggingAppointmentIDKey      = "appointment_id"
	LoggingCheckoutSessionIDKey  = "checkout_session_id"
	LoggingSubscriptionStatusKey = "subscription_status"
	LoggingTotalAppointmentsKey  = "total_appointments"
)
