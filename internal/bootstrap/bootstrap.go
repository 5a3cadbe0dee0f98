package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campusops/ssis/internal/app/controllers"
	"github.com/campusops/ssis/internal/app/migrations"
	"github.com/campusops/ssis/internal/app/repositories"
	"github.com/campusops/ssis/internal/app/routes"
	"github.com/campusops/ssis/internal/app/services"
	"github.com/campusops/ssis/internal/config"
	"github.com/campusops/ssis/internal/db"
	pkgAuth "github.com/campusops/ssis/internal/pkg/auth"
	"github.com/campusops/ssis/internal/pkg/filestorage"
	"github.com/campusops/ssis/internal/pkg/helpers"
	"github.com/campusops/ssis/internal/pkg/logger"
	"github.com/campusops/ssis/internal/pkg/oauth"
	"github.com/campusops/ssis/internal/seed"
)

// Dependencies holds the wired application components
type Dependencies struct {
	Repos             *repositories.Repositories
	JWTService        *pkgAuth.JWTService
	FileStorage       *filestorage.LocalStorage
	GoogleClient      *oauth.GoogleClient
	AuthService       services.AuthService
	CollegeService    services.CollegeService
	ProgramService    services.ProgramService
	StudentService    services.StudentService
	Sweeper           *services.BlocklistSweeper
	AuthController    *controllers.AuthController
	CollegeController *controllers.CollegeController
	ProgramController *controllers.ProgramController
	StudentController *controllers.StudentController
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger
func LoadConfigAndSetupLogger() (*config.Config, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	logger.Configure(logger.Config{
		Level:  logger.LogLevel(strings.ToLower(cfg.Logging.Level)),
		Pretty: strings.ToLower(cfg.Logging.Format) == "text",
	})
	logger.Info().Str("level", cfg.Logging.Level).Str("format", cfg.Logging.Format).Msg("Logger configured")

	return cfg, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds default data.
func SetupDatabase(cfg *config.Config) (*pgxpool.Pool, error) {
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	migrationsDir := filepath.Join("internal", "app", "migrations", "sql")
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		dbPool.Close()
		return nil, fmt.Errorf("migrations directory not found at %s", migrationsDir)
	}

	migrator := migrations.NewMigrator(dbPool)
	if err := migrator.ApplyDirectory(ctx, migrationsDir); err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	if err := seed.CreateDefaultData(ctx, dbPool); err != nil {
		logger.Error().Err(err).Msg("Failed to seed default data, proceeding anyway")
	}

	return dbPool, nil
}

// BuildDependencies wires repositories, services and controllers
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool) (*Dependencies, error) {
	deps := &Dependencies{}

	deps.Repos = repositories.NewRepositories(dbPool)

	baseURL := "http://localhost:" + cfg.Server.Port
	storage, err := filestorage.NewLocalStorage(cfg.Server.StoragePath, baseURL+"/uploads")
	if err != nil {
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}
	deps.FileStorage = storage

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.GoogleClient = oauth.NewGoogleClient(oauth.GoogleConfig{
		ClientID:     cfg.OAuth.GoogleClientID,
		ClientSecret: cfg.OAuth.GoogleClientSecret,
		RedirectURL:  cfg.OAuth.RedirectURL,
	})

	deps.AuthService = services.NewAuthService(
		deps.Repos.UserRepository,
		deps.Repos.BlocklistRepository,
		deps.JWTService,
	)
	deps.CollegeService = services.NewCollegeService(deps.Repos.CollegeRepository)
	deps.ProgramService = services.NewProgramService(deps.Repos.ProgramRepository)
	deps.StudentService = services.NewStudentService(deps.Repos.StudentRepository, deps.FileStorage)

	deps.Sweeper = services.NewBlocklistSweeper(
		deps.Repos.BlocklistRepository,
		helpers.ParseDuration(cfg.Blocklist.Retention, 8*time.Hour),
		helpers.ParseDuration(cfg.Blocklist.CleanupInterval, time.Hour),
	)

	deps.AuthController = controllers.NewAuthController(deps.AuthService, deps.GoogleClient, cfg.Frontend.URL)
	deps.CollegeController = controllers.NewCollegeController(deps.CollegeService)
	deps.ProgramController = controllers.NewProgramController(deps.ProgramService)
	deps.StudentController = controllers.NewStudentController(deps.StudentService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes
func SetupRouter(cfg *config.Config, deps *Dependencies) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	router := gin.Default()

	routes.SetupRouter(router,
		deps.AuthController,
		deps.CollegeController,
		deps.ProgramController,
		deps.StudentController,
		deps.JWTService,
		deps.AuthService,
	)

	return router
}
