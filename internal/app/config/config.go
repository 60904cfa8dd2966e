package config

import (
	"sync"

	"medibook-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

var (
	driverConfig       *DriverConfig
	internalConfig     *InternalConfig
	onceDriverConfig   sync.Once
	onceInternalConfig sync.Once
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	onceDriverConfig.Do(func() {
		driverConfig = &DriverConfig{
			MongoDB: MongoDB{
				Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
				Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
				DbName:   utils.GetEnvString("MONGODB_DB_NAME", "medibook"),
				Username: utils.GetEnvString("MONGODB_USERNAME", ""),
				Password: utils.GetEnvString("MONGODB_PASSWORD", ""),
			},
			Redis: Redis{
				Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
				Port:     utils.GetEnvString("REDIS_PORT", "6379"),
				Password: utils.GetEnvString("REDIS_PASSWORD", ""),
			},
			Minio: Minio{
				Host:       utils.GetEnvString("MINIO_HOST", "localhost"),
				Port:       utils.GetEnvString("MINIO_PORT", "9000"),
				Username:   utils.GetEnvString("MINIO_ROOT_USER", ""),
				Password:   utils.GetEnvString("MINIO_ROOT_PASSWORD", ""),
				BucketName: utils.GetEnvString("MINIO_BUCKET_NAME", "medibook"),
				UseSSL:     utils.GetEnvBool("MINIO_USE_SSL", false),
			},
			RabbitMQ: RabbitMQ{
				Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
				Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
				Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
				Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
			},
			Logger: Logger{
				Level:               utils.GetEnvString("LOGGER_LEVEL", "info"),
				OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILE_NAME", "medibook.log"),
				OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILE_NAME", "medibook-error.log"),
			},
		}
	})
	return driverConfig
}

func NewInternalConfig() *InternalConfig {
	onceInternalConfig.Do(func() {
		internalConfig = &InternalConfig{
			App: App{
				Env:                                  utils.GetEnvString("APP_ENV", "development"),
				Port:                                 utils.GetEnvString("APP_PORT", "8080"),
				Version:                              utils.GetEnvString("APP_VERSION", "v1"),
				EndpointPrefix:                       utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
				MaxRequests:                          utils.GetEnvInt("APP_MAX_REQUESTS_PER_MINUTE", 100),
				ShutdownTimeout:                      utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT_IN_SECOND", 10),
				AuthMaxRequestsPerMinute:             utils.GetEnvInt("APP_AUTH_MAX_REQUESTS_PER_MINUTE", 10),
				AuthBlockTimeInMinute:                utils.GetEnvInt("APP_AUTH_BLOCK_TIME_IN_MINUTE", 5),
				SessionExpTimeInHour:                 utils.GetEnvInt("APP_SESSION_EXP_TIME_IN_HOUR", 24),
				NotificationQueue:                    utils.GetEnvString("APP_NOTIFICATION_QUEUE", "medibook.notifications"),
				MinioProfilePictureMaxUploadSizeInMB: int64(utils.GetEnvInt("MINIO_PROFILE_PICTURE_MAX_UPLOAD_SIZE_IN_MB", 5)),
			},
			JWT: JWT{
				Secret:        utils.GetEnvString("JWT_SECRET", ""),
				ExpTimeInHour: utils.GetEnvInt("JWT_EXP_TIME_IN_HOUR", 24),
			},
			PaymentGateway: PaymentGateway{
				BaseUrl:     utils.GetEnvString("PAYMENT_GATEWAY_BASE_URL", "https://api.razorpay.com/v1"),
				KeyID:       utils.GetEnvString("PAYMENT_GATEWAY_KEY_ID", ""),
				KeySecret:   utils.GetEnvString("PAYMENT_GATEWAY_KEY_SECRET", ""),
				Currency:    utils.GetEnvString("PAYMENT_GATEWAY_CURRENCY", "INR"),
				CallbackKey: utils.GetEnvString("PAYMENT_GATEWAY_CALLBACK_KEY", ""),
			},
		}
	})
	return internalConfig
}
