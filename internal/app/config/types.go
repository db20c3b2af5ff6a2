package config

type (
	InternalConfig struct {
		App        App
		Analysis   Analysis
		Generation Generation
		JWT        JWT
	}

	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		RabbitMQ RabbitMQ
		Minio    Minio
		OpenAI   OpenAI
		Logger   Logger
	}

	App struct {
		Env                        string
		Port                       string
		Version                    string
		Address                    string
		EndpointPrefix             string
		MaxRequests                int
		ShutdownTimeout            int
		MaxTimeRequestsPerSeconds  int
		RequestBodyLimitInMegabyte int
	}

	// Analysis bounds the document analysis orchestration.
	Analysis struct {
		ExtractionTimeoutInSecond int
		PerDocumentWaitInSecond   int
	}

	// Generation bounds care plan option generation.
	Generation struct {
		DeadlineInSecond int
		OptionCount      int
	}

	MongoDB struct {
		Port     string
		Host     string
		DbName   string
		Username string
		Password string
	}

	Redis struct {
		Host     string
		Port     string
		Password string
	}

	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}

	Minio struct {
		Port       string
		Host       string
		Username   string
		Password   string
		UseSSL     bool
		BucketName string
	}

	OpenAI struct {
		APIKey            string
		Model             string
		RequestsPerMinute int
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}

	JWT struct {
		Secret string
	}
)
