package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"ordertrack/cmd"
	"ordertrack/internal/adapters/out/rabbitmq"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB, err := gorm.Open(postgres.Open(postgresDSN(configs)), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	amqpClient, err := rabbitmq.NewClient(configs.AmqpURL)
	if err != nil {
		log.Fatalf("Error connecting to rabbitmq: %v", err)
	}
	defer func() {
		_ = amqpClient.Close()
	}()

	channel, err := amqpClient.Channel()
	if err != nil {
		log.Fatalf("Error opening rabbitmq channel: %v", err)
	}

	publisher := rabbitmq.NewOrderPublisher(channel, logger)
	subscriber := rabbitmq.NewOrderSubscriber(amqpClient, logger)

	app := cmd.NewCompositionRoot(configs, gormDB, publisher, subscriber, logger)

	jobManager := app.CreateJobManager(staleThreshold(configs))
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:       goDotEnvVariable("HTTP_PORT"),
		DBHost:         goDotEnvVariable("DB_HOST"),
		DBPort:         goDotEnvVariable("DB_PORT"),
		DBUser:         goDotEnvVariable("DB_USER"),
		DBPassword:     goDotEnvVariable("DB_PASSWORD"),
		DBName:         goDotEnvVariable("DB_NAME"),
		DBSslMode:      goDotEnvVariable("DB_SSLMODE"),
		AmqpURL:        goDotEnvVariable("AMQP_URL"),
		JWTSecret:      goDotEnvVariable("JWT_SECRET"),
		StaleThreshold: goDotEnvVariable("STALE_THRESHOLD"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func postgresDSN(config cmd.Config) string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		config.DBHost, config.DBPort, config.DBUser, config.DBPassword, config.DBName, config.DBSslMode)
}

func staleThreshold(config cmd.Config) time.Duration {
	if config.StaleThreshold == "" {
		return 5 * time.Minute
	}

	threshold, err := time.ParseDuration(config.StaleThreshold)
	if err != nil {
		log.Fatalf("Error parsing STALE_THRESHOLD: %v", err)
	}
	return threshold
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	app.CreateHTTPServer().RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
