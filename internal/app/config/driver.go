package config

type DriverConfig struct {
	Redis    Redis
	Logger   Logger
	RabbitMQ RabbitMQ
}

type Redis struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type Logger struct {
	Level               string
	OutputFileName      string
	OutputErrorFileName string
}

type RabbitMQ struct {
	Port     string
	Host     string
	Username string
	Password string
}
