package config

type InternalConfig struct {
	App        App
	JWT        AppJWT
	Minio      AppMinio
	RabbitMQ   AppRabbitMQ
	Extraction AppExtraction
	Stripe     AppStripe
}

type App struct {
	Env                            string
	Port                           string
	Version                        string
	Address                        string
	Timezone                       string
	EndpointPrefix                 string
	MaxRequests                    int
	ShutdownTimeoutInSeconds       int
	MaxTimeRequestsPerSeconds      int
	RequestBodyLimitInMegabyte     int
	LoginSessionExpiredTimeInHours int
	// SlotHorizonDays is the rolling window of days slots are generated for.
	SlotHorizonDays int
	// SlotBreakStrategy selects how the generator resumes after a break
	// window: "jump" continues at the break end, "skip" keeps the original
	// grid and drops overlapping candidates.
	SlotBreakStrategy string
	// SlotWorkerCronSpec defines the cron expression for the slot maintenance
	// worker (e.g., "@daily").
	SlotWorkerCronSpec string
}

type AppJWT struct {
	Secret        string
	ExpTimeInHour int
}

type AppMinio struct {
	BucketName                          string
	PhotoMaxUploadSizeInMB              int64
	PreSignedUrlObjectExpiryTimeInHours int
}

type AppRabbitMQ struct {
	BookingQueue string
}

// AppExtraction configures the LLM-backed schedule extraction client.
type AppExtraction struct {
	BaseUrl              string
	ApiKey               string
	Model                string
	TimeoutInSeconds     int
	MaxRequestsPerMinute int
	CacheSize            int
}

type AppStripe struct {
	ApiKey           string
	BaseUrl          string
	PriceID          string
	TimeoutInSeconds int
}
