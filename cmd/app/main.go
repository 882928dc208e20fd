package main

import (
	"fmt"
	"os"

	"partner/cmd"
	httpadapter "partner/internal/adapters/in/http"
	"partner/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

func main() {
	configs := getConfigs()

	app, err := cmd.NewCompositionRoot(configs)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	jobManager := jobs.NewJobManager(
		app.CreateFetchOrdersCommandHandler(),
		app.PartnerID(),
		app.Logger(),
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:             goDotEnvVariable("HTTP_PORT"),
		PartnerID:            goDotEnvVariable("PARTNER_ID"),
		AssignmentAPIBaseURL: goDotEnvVariable("ASSIGNMENT_API_BASE_URL"),
		AssignmentAPITimeout: goDotEnvVariable("ASSIGNMENT_API_TIMEOUT"),
		DBHost:               goDotEnvVariable("DB_HOST"),
		DBPort:               goDotEnvVariable("DB_PORT"),
		DBUser:               goDotEnvVariable("DB_USER"),
		DBPassword:           goDotEnvVariable("DB_PASSWORD"),
		DBName:               goDotEnvVariable("DB_NAME"),
		DBSslMode:            goDotEnvVariable("DB_SSLMODE"),
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

func startWebServer(app *cmd.CompositionRoot, port string) {
	server, err := httpadapter.NewServer(
		app.PartnerID(),
		app.CreateFetchOrdersCommandHandler(),
		app.CreateAcceptOrderCommandHandler(),
		app.CreateRejectOrderCommandHandler(),
		app.CreateUpdateOrderStatusCommandHandler(),
		app.CreateAddNewOrderCommandHandler(),
		app.CreateGetAllOrdersQueryHandler(),
		app.CreateGetActiveOrdersQueryHandler(),
		app.CreateGetCompletedOrdersQueryHandler(),
		app.CreateGetOperationStateQueryHandler(),
	)
	if err != nil {
		log.Fatalf("Failed to create HTTP server: %v", err)
	}

	e := echo.New()
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
