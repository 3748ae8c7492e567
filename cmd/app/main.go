package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"picking/cmd"
	httpadapter "picking/internal/adapters/in/http"
	"picking/internal/adapters/out/postgres"
	"picking/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	configs := getConfigs(logger)

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode,
	)
	gormDB, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	if err = postgres.Migrate(gormDB); err != nil {
		logger.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	app := cmd.NewCompositionRoot(configs, gormDB, logger)

	jobManager := jobs.NewJobManager(
		app.CreateRecomputeGapMetricsCommandHandler(),
		configs.GapMetricsRowLimit,
		app.CreateRecomputeRanksCommandHandler(),
		logger,
	)
	if err = jobManager.StartAll(); err != nil {
		logger.Error("Failed to start background jobs", "error", err)
		os.Exit(1)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs(logger *slog.Logger) cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		logger.Info("No .env file found, relying on process environment")
	}

	return cmd.Config{
		HTTPPort:   envString("HTTP_PORT", "8080"),
		DBHost:     envString("DB_HOST", "localhost"),
		DBPort:     envString("DB_PORT", "5432"),
		DBUser:     envString("DB_USER", "postgres"),
		DBPassword: envString("DB_PASSWORD", "postgres"),
		DBName:     envString("DB_NAME", "picking"),
		DBSslMode:  envString("DB_SSLMODE", "disable"),

		MaxLinesPerTask:    envInt("MAX_LINES_PER_TASK", 35),
		LockTimeoutSec:     envInt("LOCK_TIMEOUT_SEC", 30),
		GapMetricsRowLimit: envInt("GAP_METRICS_ROW_LIMIT", 500),

		NormSecondsPerUnit: envFloat("NORM_SECONDS_PER_UNIT", 18.0),
		PositionPoints:     envFloat("POSITION_POINTS", 1.0),
		UnitPoints:         envFloat("UNIT_POINTS", 0.25),
	}
}

func envString(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func envInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		slog.Warn("Invalid integer in environment, using fallback", "key", key, "value", raw)
		return fallback
	}
	return value
}

func envFloat(key string, fallback float64) float64 {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		slog.Warn("Invalid float in environment, using fallback", "key", key, "value", raw)
		return fallback
	}
	return value
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	server := httpadapter.NewServer(httpadapter.Dependencies{
		IngestShipment:           app.CreateIngestShipmentCommandHandler(),
		AcquireLock:              app.CreateAcquireLockCommandHandler(),
		HeartbeatLock:            app.CreateHeartbeatLockCommandHandler(),
		ReleaseLock:              app.CreateReleaseLockCommandHandler(),
		AdminResetTask:           app.CreateAdminResetTaskCommandHandler(),
		MarkTaskCollected:        app.CreateMarkTaskCollectedCommandHandler(),
		ConfirmTask:              app.CreateConfirmTaskCommandHandler(),
		ReassignTasks:            app.CreateReassignTasksCommandHandler(),
		RecomputeGapMetrics:      app.CreateRecomputeGapMetricsCommandHandler(),
		RecomputeRanks:           app.CreateRecomputeRanksCommandHandler(),
		RecomputeTodayEfficiency: app.CreateRecomputeTodayEfficiencyCommandHandler(),
		HardDeleteShipment:       app.CreateHardDeleteShipmentCommandHandler(),

		GetOperatorPerformance: app.CreateGetOperatorPerformanceQueryHandler(),
		GetZoneActiveTasks:     app.CreateGetZoneActiveTasksQueryHandler(),
		GetPositionDifficulty:  app.CreateGetPositionDifficultyQueryHandler(),
		GetShipmentProgress:    app.CreateGetShipmentProgressQueryHandler(),
	})
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
