package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_SESSION_DATA_KEY         ContextKey = "session_data"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "SLOTLY_SVC_"
)

const (
	MongoCollectionDoctors      = "doctors"
	MongoCollectionUsers        = "users"
	MongoCollectionSlots        = "slots"
	MongoCollectionAppointments = "appointments"
	MongoCollectionReferrals    = "referrals"
)

const (
	// TrialCustomerIDPrefix marks doctor accounts created without a Stripe customer.
	TrialCustomerIDPrefix = "trial_"
	TrialPeriodDays       = 7
)

const (
	SlotStatusAvailable = "available"
	SlotStatusBooked    = "booked"

	DefaultSlotDurationMinutes = 30
)

const (
	// SlotBreakStrategyJump resumes enumeration exactly at the end of the
	// overlapped break. SlotBreakStrategySkip steps over it one slot length
	// at a time.
	SlotBreakStrategyJump = "jump"
	SlotBreakStrategySkip = "skip"
)

const (
	// BookingLockKeyFormat is keyed by doctor ID, date and time so two patients
	// racing for the same slot contend on the same lock.
	BookingLockKeyFormat = "booking_lock:%s:%s:%s"
	SessionKeyFormat     = "session:%s"
)

const (
	SubscriptionStatusActive   = "active"
	SubscriptionStatusTrialing = "trialing"
	SubscriptionStatusNone     = "none"
	SubscriptionStatusExpired  = "expired"
)
