package config

import (
	"slotly-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "slotly"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", "customRedisPass"),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "defaultPassword"),
		},
		Minio: Minio{
			Port:     utils.GetEnvString("MINIO_PORT", "9000"),
			Host:     utils.GetEnvString("MINIO_HOST", "localhost"),
			Username: utils.GetEnvString("MINIO_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MINIO_PASSWORD", "defaultPassword"),
			UseSSL:   utils.GetEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                            utils.GetEnvString("APP_ENV", "development"),
			Port:                           utils.GetEnvString("APP_PORT", ":8080"),
			Version:                        utils.GetEnvString("APP_VERSION", "v1.0"),
			Address:                        utils.GetEnvString("APP_ADDRESS", "localhost"),
			Timezone:                       utils.GetEnvString("APP_TIMEZONE", "UTC"),
			EndpointPrefix:                 utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			MaxRequests:                    utils.GetEnvInt("APP_MAX_REQUEST", 10),
			ShutdownTimeoutInSeconds:       utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			MaxTimeRequestsPerSeconds:      utils.GetEnvInt("APP_MAX_TIME_REQUESTS_PER_SECONDS", 10),
			RequestBodyLimitInMegabyte:     utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 6),
			LoginSessionExpiredTimeInHours: utils.GetEnvInt("APP_LOGIN_SESSION_EXPIRED_TIME_IN_HOURS", 1),
			SlotHorizonDays:                utils.GetEnvInt("SLOT_HORIZON_DAYS", 90),
			SlotBreakStrategy:              utils.GetEnvString("SLOT_BREAK_STRATEGY", "jump"),
			SlotWorkerCronSpec:             utils.GetEnvString("SLOT_WORKER_CRON_SPEC", "@daily"),
		},
		JWT: AppJWT{
			Secret:        utils.GetEnvString("JWT_SECRET", "anyjwt"),
			ExpTimeInHour: utils.GetEnvInt("JWT_EXP_TIME_IN_HOUR", 1),
		},
		Minio: AppMinio{
			BucketName:                          utils.GetEnvString("MINIO_BUCKET_NAME", "doctor-photos"),
			PhotoMaxUploadSizeInMB:              utils.GetEnvInt64("MINIO_PHOTO_UPLOAD_MAX_SIZE_IN_MB", 2),
			PreSignedUrlObjectExpiryTimeInHours: utils.GetEnvInt("MINIO_PRESIGNED_URL_OBJECT_EXPIRY_TIME_IN_HOURS", 24),
		},
		RabbitMQ: AppRabbitMQ{
			BookingQueue: utils.GetEnvString("RABBITMQ_BOOKING_QUEUE", "booking-events"),
		},
		Extraction: AppExtraction{
			BaseUrl:              utils.GetEnvString("EXTRACTION_BASE_URL", "https://api.openai.com/v1"),
			ApiKey:               utils.GetEnvString("EXTRACTION_API_KEY", ""),
			Model:                utils.GetEnvString("EXTRACTION_MODEL", "gpt-4o-mini"),
			TimeoutInSeconds:     utils.GetEnvInt("EXTRACTION_TIMEOUT_IN_SECONDS", 30),
			MaxRequestsPerMinute: utils.GetEnvInt("EXTRACTION_MAX_REQUESTS_PER_MINUTE", 60),
			CacheSize:            utils.GetEnvInt("EXTRACTION_CACHE_SIZE", 256),
		},
		Stripe: AppStripe{
			ApiKey:           utils.GetEnvString("STRIPE_API_KEY", ""),
			BaseUrl:          utils.GetEnvString("STRIPE_BASE_URL", "https://api.stripe.com/v1"),
			PriceID:          utils.GetEnvString("STRIPE_PRICE_ID", ""),
			TimeoutInSeconds: utils.GetEnvInt("STRIPE_TIMEOUT_IN_SECONDS", 15),
		},
	}
}
