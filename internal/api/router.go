package api

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nekogravitycat/bulkstay-backend/internal/auth"
	"github.com/nekogravitycat/bulkstay-backend/internal/booking"
	bookingHttp "github.com/nekogravitycat/bulkstay-backend/internal/booking/http"
	calendarHttp "github.com/nekogravitycat/bulkstay-backend/internal/calendar/http"
	"github.com/nekogravitycat/bulkstay-backend/internal/catalog"
	catalogHttp "github.com/nekogravitycat/bulkstay-backend/internal/catalog/http"
	"github.com/nekogravitycat/bulkstay-backend/internal/property"
	propertyHttp "github.com/nekogravitycat/bulkstay-backend/internal/property/http"
	"github.com/nekogravitycat/bulkstay-backend/internal/user"
	userHttp "github.com/nekogravitycat/bulkstay-backend/internal/user/http"
	"github.com/nekogravitycat/bulkstay-backend/internal/wizard"
	wizardHttp "github.com/nekogravitycat/bulkstay-backend/internal/wizard/http"
)

type Config struct {
	IsProduction bool
	ProdOrigins  string
	Logger       *zap.Logger
	RateLimit    int // requests per minute per IP, 0 disables
	FilesDir     string
	FilesURL     string
	Now          func() time.Time

	UserService     user.Service
	CatalogService  catalog.Service
	PropertyService property.Service
	BookingService  booking.Service
	WizardRegistry  *wizard.Registry
	WizardDeps      wizard.Deps
	JWTManager      *auth.JWTManager
}

// NewRouter initializes the HTTP router engine.
// It is responsible for assembling middleware (CORS, Logger, Auth) and registering routes for various modules.
func NewRouter(cfg Config) *gin.Engine {
	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	r := gin.New()

	// Global Middleware:
	// - RequestLogger: one zap line per request.
	// - Recovery: Captures panics to prevent server crashes and returns a 500 error.
	r.Use(RequestLogger(logger), gin.Recovery())

	// Configure CORS (Cross-Origin Resource Sharing).
	config := cors.DefaultConfig()
	if cfg.IsProduction && cfg.ProdOrigins != "" {
		config.AllowOrigins = strings.Split(cfg.ProdOrigins, ",")
	} else {
		config.AllowOrigins = []string{
			"http://localhost:3000", // Web client
			"http://localhost:8081", // Swagger
		}
	}
	config.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(config))

	r.Use(RateLimit(cfg.RateLimit))

	// Uploaded listing photos and thumbnails.
	if cfg.FilesDir != "" && cfg.FilesURL != "" {
		r.Static(cfg.FilesURL, cfg.FilesDir)
	}

	// authMiddleware: Validates if the request contains a valid JWT.
	authMiddleware := auth.AuthRequired(cfg.JWTManager)
	optionalAuth := auth.OptionalAuth(cfg.JWTManager)
	// hostMiddleware: Further checks that the token belongs to a host.
	hostMiddleware := auth.RequireRole(string(user.RoleHost))

	// Initialize HTTP Handlers for each module (injecting Service dependencies).
	userHandler := userHttp.NewHandler(cfg.UserService, cfg.JWTManager)
	catalogHandler := catalogHttp.NewHandler(cfg.CatalogService)
	propertyHandler := propertyHttp.NewHandler(cfg.PropertyService)
	bookingHandler := bookingHttp.NewHandler(cfg.BookingService, cfg.PropertyService, cfg.Now)
	calendarHandler := calendarHttp.NewHandler(cfg.Now)
	wizardHandler := wizardHttp.NewHandler(
		cfg.WizardRegistry,
		cfg.WizardDeps,
		cfg.CatalogService,
		cfg.PropertyService,
		cfg.UserService,
		cfg.JWTManager,
	)

	// Register API routes under /v1
	v1 := r.Group("/v1")
	{
		userHttp.RegisterRoutes(v1, userHandler, authMiddleware)
		catalogHttp.RegisterRoutes(v1, catalogHandler)
		propertyHttp.RegisterRoutes(v1, propertyHandler, authMiddleware, hostMiddleware)
		bookingHttp.RegisterRoutes(v1, bookingHandler, authMiddleware, hostMiddleware)
		calendarHttp.RegisterRoutes(v1, calendarHandler)
		wizardHttp.RegisterRoutes(v1, wizardHandler, optionalAuth)
	}

	return r
}
