package config

type (
	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		Minio    Minio
		RabbitMQ RabbitMQ
		Logger   Logger
	}
	MongoDB struct {
		Host     string
		Port     string
		Username string
		Password string
		DbName   string
	}
	Redis struct {
		Host     string
		Port     string
		Password string
	}
	Minio struct {
		Host       string
		Port       string
		Username   string
		Password   string
		BucketName string
		UseSSL     bool
	}
	RabbitMQ struct {
		Host     string
		Port     string
		Username string
		Password string
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)

type (
	InternalConfig struct {
		App App
		JWT JWT
	}
	App struct {
		Env                                  string
		Port                                 string
		Version                              string
		ShutdownTimeout                      int
		MaxRequests                          int
		SessionExpTimeInHour                 int
		MinioProfilePictureMaxUploadSizeInMB int64
	}
	JWT struct {
		Secret        string
		ExpTimeInHour int
	}
)
