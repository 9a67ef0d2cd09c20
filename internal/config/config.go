package config

type Config struct {
	Environment Environment
	Log         Log
	HTTP        HTTPServer
	BaseURL     string `env:"BASE_URL"`
	ClientURL   string `env:"CLIENT_URL"`
	DatabaseURL string `env:"DATABASE_URL"`
	JWTSecret   string `env:"JWT_SECRET_KEY"`

	Sslcommerz Sslcommerz `envPrefix:"SSLCOMMERZ_"`
}

type Sslcommerz struct {
	BaseApiURL    string `env:"BASE_API_URL" envDefault:"https://sandbox.sslcommerz.com"`
	StoreID       string `env:"STORE_ID"`
	StorePassword string `env:"STORE_PASSWORD"`
}

type Environment struct {
	Name string `env:"ENVIRONMENT" envDefault:"development"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type HTTPServer struct {
	Host string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port string `env:"HTTP_PORT" envDefault:"4000"`
}
