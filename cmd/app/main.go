package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"docflow/cmd"
	adapterhttp "docflow/internal/adapters/in/http"
	"docflow/internal/adapters/out/objectstore"
	"docflow/internal/adapters/out/postgres/auditrepo"
	"docflow/internal/adapters/out/postgres/docverrepo"
	"docflow/internal/adapters/out/postgres/orderrepo"
	"docflow/internal/generated/servers"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoswagger "github.com/swaggo/echo-swagger"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	connectionString := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode,
	)

	waitForDatabase(connectionString)

	gormDB, err := gorm.Open(gormpostgres.Open(connectionString), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&docverrepo.VersionDTO{},
		&auditrepo.EventDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	artifacts, err := objectstore.NewMinioStore(
		ctx,
		configs.MinioEndpoint,
		configs.MinioAccessKey,
		configs.MinioSecretKey,
		configs.MinioBucket,
		configs.MinioUseSSL,
	)
	if err != nil {
		log.Fatalf("Error connecting to object storage: %v", err)
	}

	root := cmd.NewCompositionRoot(configs, gormDB, artifacts, logger)
	defer root.Close()

	go root.GenerationWorker().Run(ctx)

	consumer := root.CreatePaymentConsumer()
	defer consumer.Close()
	go consumer.Run(ctx)

	jobManager := root.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(ctx, root, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	generationTimeout, err := time.ParseDuration(goDotEnvVariable("GENERATION_TIMEOUT"))
	if err != nil {
		log.Fatalf("Error parsing GENERATION_TIMEOUT: %v", err)
	}

	config := cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),

		KafkaBrokers:               strings.Split(goDotEnvVariable("KAFKA_BROKERS"), ","),
		KafkaConsumerGroup:         goDotEnvVariable("KAFKA_CONSUMER_GROUP"),
		KafkaPaymentConfirmedTopic: goDotEnvVariable("KAFKA_PAYMENT_CONFIRMED_TOPIC"),
		KafkaOrderStatusTopic:      goDotEnvVariable("KAFKA_ORDER_STATUS_TOPIC"),

		MinioEndpoint:  goDotEnvVariable("MINIO_ENDPOINT"),
		MinioAccessKey: goDotEnvVariable("MINIO_ACCESS_KEY"),
		MinioSecretKey: goDotEnvVariable("MINIO_SECRET_KEY"),
		MinioBucket:    goDotEnvVariable("MINIO_BUCKET"),
		MinioUseSSL:    goDotEnvVariable("MINIO_USE_SSL") == "true",

		DocgenBaseURL: goDotEnvVariable("DOCGEN_BASE_URL"),

		GenerationTimeout:   generationTimeout,
		GenerationWorkers:   intEnvVariable("GENERATION_WORKERS"),
		GenerationQueueSize: intEnvVariable("GENERATION_QUEUE_SIZE"),
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

func intEnvVariable(key string) int {
	value, err := strconv.Atoi(goDotEnvVariable(key))
	if err != nil {
		log.Fatalf("Error parsing %s: %v", key, err)
	}
	return value
}

// waitForDatabase blocks until the database accepts connections, so the
// service can start before the database in a compose stack.
func waitForDatabase(connectionString string) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		log.Fatalf("Error opening database: %v", err)
	}
	defer db.Close()

	for attempt := 1; attempt <= 30; attempt++ {
		if err = db.Ping(); err == nil {
			return
		}
		time.Sleep(time.Second)
	}
	log.Fatalf("Database did not become ready: %v", err)
}

func startWebServer(ctx context.Context, root *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.Use(middleware.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	e.GET("/openapi.json", func(c echo.Context) error {
		swagger, err := servers.GetSwagger()
		if err != nil {
			return c.String(http.StatusInternalServerError, err.Error())
		}
		return c.JSON(http.StatusOK, swagger)
	})
	e.GET("/swagger/*", echoswagger.EchoWrapHandler(echoswagger.URL("/openapi.json")))

	server := adapterhttp.NewServer(
		root.CreateStartGenerationCommandHandler(),
		root.CreateApproveVersionCommandHandler(),
		root.CreateRequestRegenerationCommandHandler(),
		root.CreateRequestClientInputCommandHandler(),
		root.CreateSubmitClientResponseCommandHandler(),
		root.CreateDeliverOrderCommandHandler(),
		root.CreateProcessPendingDeliveriesCommandHandler(),
		root.CreateOverrideTransitionCommandHandler(),
		root.CreateCancelOrderCommandHandler(),
		root.CreateArchiveOrderCommandHandler(),
		root.CreateSetPriorityCommandHandler(),
		root.CreateAddNoteCommandHandler(),
		root.CreateReopenVersionsCommandHandler(),
		root.CreateListOrdersQueryHandler(),
		root.CreateGetOrderQueryHandler(),
		root.CreateGetTimelineQueryHandler(),
		root.CreateGetDocumentVersionsQueryHandler(),
		root.CreateGetPipelineQueryHandler(),
	)
	servers.RegisterHandlersWithBaseURL(e, server, "/api/v1")

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			e.Logger.Errorf("Error shutting down server: %v", err)
		}
	}()

	if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && err != http.ErrServerClosed {
		e.Logger.Fatal(err)
	}
}
