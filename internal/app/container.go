package app

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/nekogravitycat/bulkstay-backend/internal/api"
	"github.com/nekogravitycat/bulkstay-backend/internal/auth"
	"github.com/nekogravitycat/bulkstay-backend/internal/booking"
	"github.com/nekogravitycat/bulkstay-backend/internal/catalog"
	"github.com/nekogravitycat/bulkstay-backend/internal/mockstore"
	"github.com/nekogravitycat/bulkstay-backend/internal/pkg/storage"
	"github.com/nekogravitycat/bulkstay-backend/internal/property"
	"github.com/nekogravitycat/bulkstay-backend/internal/user"
	"github.com/nekogravitycat/bulkstay-backend/internal/wizard"
)

const filesURL = "/files"

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	// DBPool selects the postgres repositories; nil uses the seeded memory store.
	DBPool       *pgxpool.Pool
	LatencyScale float64
	JWTSecret    string
	JWTTTL       time.Duration
	BcryptCost   int
	UploadDir    string
	RateLimit    int
	TaxRate      float64
	Logger       *zap.Logger
	Now          func() time.Time
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router     *gin.Engine
	JWTManager *auth.JWTManager
	Wizards    *wizard.Registry
}

type repositories struct {
	users      user.Repository
	packages   catalog.Repository
	properties property.Repository
	bookings   booking.Repository
}

func newRepositories(cfg Config, hasher auth.PasswordHasher) (repositories, error) {
	if cfg.DBPool != nil {
		return repositories{
			users:      user.NewPgxRepository(cfg.DBPool),
			packages:   catalog.NewPgxRepository(cfg.DBPool),
			properties: property.NewPgxRepository(cfg.DBPool),
			bookings:   booking.NewPgxRepository(cfg.DBPool),
		}, nil
	}

	latency := mockstore.NewLatency(cfg.LatencyScale)
	users, err := user.Seed(hasher)
	if err != nil {
		return repositories{}, err
	}
	return repositories{
		users:      user.NewMemoryRepository(latency, users),
		packages:   catalog.NewMemoryRepository(latency, catalog.Seed()),
		properties: property.NewMemoryRepository(latency, property.Seed()),
		bookings:   booking.NewMemoryRepository(latency, booking.Seed()),
	}, nil
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) (*Container, error) {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	// Init Components
	passwordHasher := auth.NewBcryptPasswordHasherWithCost(cfg.BcryptCost)
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)

	repos, err := newRepositories(cfg, passwordHasher)
	if err != nil {
		return nil, fmt.Errorf("failed to build repositories: %w", err)
	}

	files, err := storage.NewLocalStorage(cfg.UploadDir, filesURL)
	if err != nil {
		return nil, err
	}
	thumbnails := storage.NewImageProcessor(480, 320)

	// User Module
	userService := user.NewService(repos.users, passwordHasher)

	// Catalog Module
	catalogService := catalog.NewService(repos.packages)

	// Property Module
	propertyService := property.NewService(repos.properties, files, thumbnails)

	// Booking Module
	bookingService := booking.NewService(repos.bookings, userService, catalogService, propertyService)

	// Wizard Module
	registry := wizard.NewRegistry()
	wizardDeps := wizard.Deps{
		Users:      userService,
		Properties: propertyService,
		Bookings:   bookingService,
		Latency:    mockstore.NewLatency(cfg.LatencyScale),
		Now:        cfg.Now,
		TaxRate:    cfg.TaxRate,
	}

	// API Router Config
	routerParams := api.Config{
		IsProduction:    cfg.IsProduction,
		ProdOrigins:     cfg.ProdOrigins,
		Logger:          cfg.Logger,
		RateLimit:       cfg.RateLimit,
		FilesDir:        files.BasePath(),
		FilesURL:        filesURL,
		Now:             cfg.Now,
		UserService:     userService,
		CatalogService:  catalogService,
		PropertyService: propertyService,
		BookingService:  bookingService,
		WizardRegistry:  registry,
		WizardDeps:      wizardDeps,
		JWTManager:      jwtManager,
	}

	// Router
	router := api.NewRouter(routerParams)

	return &Container{
		Router:     router,
		JWTManager: jwtManager,
		Wizards:    registry,
	}, nil
}
