package main

import (
	"fmt"
	"os"

	"parcelflow/cmd"
	apphttp "parcelflow/internal/adapters/in/http"
	"parcelflow/internal/adapters/out/postgres/auditrepo"
	"parcelflow/internal/adapters/out/postgres/deliveryrepo"
	"parcelflow/internal/adapters/out/postgres/paymentrepo"
	"parcelflow/internal/adapters/out/postgres/profilerepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	db, err := openDatabase(configs)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	app, err := cmd.NewCompositionRoot(configs, db)
	if err != nil {
		log.Fatalf("Failed to build application: %v", err)
	}
	defer func() {
		if closeErr := app.Close(); closeErr != nil {
			log.Warnf("Failed to close application resources: %v", closeErr)
		}
	}()

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:     goDotEnvVariable("HTTP_PORT"),
		DBHost:       goDotEnvVariable("DB_HOST"),
		DBPort:       goDotEnvVariable("DB_PORT"),
		DBUser:       goDotEnvVariable("DB_USER"),
		DBPassword:   goDotEnvVariable("DB_PASSWORD"),
		DBName:       goDotEnvVariable("DB_NAME"),
		DBSslMode:    goDotEnvVariable("DB_SSLMODE"),
		AmqpURL:      goDotEnvVariable("AMQP_URL"),
		AmqpExchange: goDotEnvVariable("AMQP_EXCHANGE"),
		JWTSecret:    goDotEnvVariable("JWT_SECRET"),
		FeePerKgRate: goDotEnvVariable("FEE_PER_KG_RATE"),
		FeeCurrency:  goDotEnvVariable("FEE_CURRENCY"),
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

func openDatabase(configs cmd.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	if err = db.AutoMigrate(
		&deliveryrepo.DeliveryDTO{},
		&deliveryrepo.StatusUpdateDTO{},
		&profilerepo.ProfileDTO{},
		&paymentrepo.PaymentDTO{},
		&auditrepo.EntryDTO{},
	); err != nil {
		return nil, err
	}

	return db, nil
}

func startWebServer(app *cmd.CompositionRoot, configs cmd.Config) {
	e := echo.New()

	server := app.CreateHTTPServer()
	auth := apphttp.NewAuthMiddleware(configs.JWTSecret, app.Logger())
	server.RegisterRoutes(e, auth)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}
