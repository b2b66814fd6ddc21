package config

import (
	"carelink-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "carelink"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		Minio: Minio{
			Host:       utils.GetEnvString("MINIO_HOST", "localhost"),
			Port:       utils.GetEnvString("MINIO_PORT", "9000"),
			Username:   utils.GetEnvString("MINIO_USERNAME", "defaultUsername"),
			Password:   utils.GetEnvString("MINIO_PASSWORD", "defaultPassword"),
			BucketName: utils.GetEnvString("MINIO_BUCKET_NAME", "carelink"),
			UseSSL:     utils.GetEnvBool("MINIO_USE_SSL", false),
		},
		RabbitMQ: RabbitMQ{
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "defaultPassword"),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                                  utils.GetEnvString("APP_ENV", "development"),
			Port:                                 utils.GetEnvString("APP_PORT", ":8080"),
			Version:                              utils.GetEnvString("APP_VERSION", "v1"),
			ShutdownTimeout:                      utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			MaxRequests:                          utils.GetEnvInt("APP_MAX_REQUEST", 10),
			SessionExpTimeInHour:                 utils.GetEnvInt("APP_SESSION_EXP_TIME_IN_HOUR", 72),
			MinioProfilePictureMaxUploadSizeInMB: utils.GetEnvInt64("APP_MINIO_PROFILE_PICTURE_UPLOAD_MAX_SIZE_IN_MB", 2),
		},
		JWT: JWT{
			Secret:        utils.GetEnvString("JWT_SECRET", "anyjwt"),
			ExpTimeInHour: utils.GetEnvInt("JWT_EXP_TIME_IN_HOUR", 72),
		},
	}
}
