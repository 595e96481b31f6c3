package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"amo/cmd"
	httpin "amo/internal/adapters/in/http"
	"amo/internal/adapters/out/identity"
	"amo/internal/adapters/out/postgres/assetrepo"
	"amo/internal/adapters/out/postgres/assignmentrepo"
	"amo/internal/adapters/out/postgres/categoryrepo"
	"amo/internal/adapters/out/postgres/requestrepo"
	"amo/internal/core/ports"
	"amo/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	db := openDatabase(configs)
	migrateSchema(db)

	app := cmd.NewCompositionRoot(configs, db)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	var directory ports.UserDirectory
	if configs.UserDirectoryURL != "" {
		client, err := identity.NewClient(configs.UserDirectoryURL)
		if err != nil {
			log.Fatalf("Error creating user directory client: %v", err)
		}
		directory = client
	}

	jobManager := jobs.NewJobManager(app.CreateAssetReportQueryHandler(), configs.ReportLocations, logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, directory, logger, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:         goDotEnvVariable("HTTP_PORT"),
		DBHost:           goDotEnvVariable("DB_HOST"),
		DBPort:           goDotEnvVariable("DB_PORT"),
		DBUser:           goDotEnvVariable("DB_USER"),
		DBPassword:       goDotEnvVariable("DB_PASSWORD"),
		DBName:           goDotEnvVariable("DB_NAME"),
		DBSslMode:        goDotEnvVariable("DB_SSLMODE"),
		UserDirectoryURL: goDotEnvVariable("USER_DIRECTORY_URL"),
		ReportLocations:  strings.Fields(goDotEnvVariable("REPORT_LOCATIONS")),
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

func openDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	// TranslateError turns driver duplicate-key errors into
	// gorm.ErrDuplicatedKey, which the repositories map to conflicts.
	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	return db
}

func migrateSchema(db *gorm.DB) {
	err := db.AutoMigrate(
		&categoryrepo.CategoryDTO{},
		&assetrepo.AssetDTO{},
		&assignmentrepo.AssignmentDTO{},
		&requestrepo.ReturnRequestDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database schema: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, directory ports.UserDirectory, logger *slog.Logger, port string) {
	server := httpin.NewServer(httpin.Handlers{
		CreateAsset:         app.CreateCreateAssetCommandHandler(),
		UpdateAsset:         app.CreateUpdateAssetCommandHandler(),
		SetAssetState:       app.CreateSetAssetStateCommandHandler(),
		DeleteAsset:         app.CreateDeleteAssetCommandHandler(),
		CreateAssignment:    app.CreateCreateAssignmentCommandHandler(),
		UpdateAssignment:    app.CreateUpdateAssignmentCommandHandler(),
		AcceptAssignment:    app.CreateAcceptAssignmentCommandHandler(),
		DeleteAssignment:    app.CreateDeleteAssignmentCommandHandler(),
		CreateReturnRequest: app.CreateCreateReturnRequestCommandHandler(),
		AcceptReturnRequest: app.CreateAcceptReturnRequestCommandHandler(),
		CancelReturnRequest: app.CreateCancelReturnRequestCommandHandler(),
		FindAssets:          app.CreateFindAssetsQueryHandler(),
		FindAssignments:     app.CreateFindAssignmentsQueryHandler(),
		FindReturnRequests:  app.CreateFindReturnRequestsQueryHandler(),
		AssignmentHistory:   app.CreateAssignmentHistoryQueryHandler(),
		MyAssignments:       app.CreateMyAssignmentsQueryHandler(),
		AssetReport:         app.CreateAssetReportQueryHandler(),
		FilterOptions:       app.CreateFilterOptionsQueryHandler(),
	}, directory, logger)

	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
