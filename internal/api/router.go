package api

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/advertomedia/room-booking-backend/internal/auth"
	"github.com/advertomedia/room-booking-backend/internal/booking"
	bookingHttp "github.com/advertomedia/room-booking-backend/internal/booking/http"
	"github.com/advertomedia/room-booking-backend/internal/file"
	fileHttp "github.com/advertomedia/room-booking-backend/internal/file/http"
	"github.com/advertomedia/room-booking-backend/internal/room"
	roomHttp "github.com/advertomedia/room-booking-backend/internal/room/http"
	"github.com/advertomedia/room-booking-backend/internal/user"
	userHttp "github.com/advertomedia/room-booking-backend/internal/user/http"
)

// Config holds the services and settings the router needs.
type Config struct {
	IsProduction   bool
	ProdOrigins    string
	UpcomingLimit  int
	UserService    user.Service
	BookingService booking.Service
	RoomService    room.Service
	FileService    file.Service
	JWTManager     *auth.JWTManager
}

// NewRouter initializes the HTTP router engine.
// It assembles middleware (CORS, Logger, Auth) and registers routes for the
// user, booking, room and file modules.
func NewRouter(cfg Config) *gin.Engine {
	r := gin.New()

	// Global Middleware:
	// - Logger: Logs request information to the console.
	// - Recovery: Captures panics to prevent server crashes and returns a 500 error.
	r.Use(gin.Logger(), gin.Recovery())

	registerValidators()

	// Configure CORS (Cross-Origin Resource Sharing).
	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction && cfg.ProdOrigins != "" {
		corsConfig.AllowOrigins = strings.Split(cfg.ProdOrigins, ",")
	} else {
		corsConfig.AllowOrigins = []string{
			"http://localhost:5173", // Vite dev server
			"http://localhost:8081", // Swagger
		}
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// authMiddleware: Validates if the request contains a valid JWT.
	authMiddleware := auth.AuthRequired(cfg.JWTManager)

	// Initialize HTTP Handlers for each module (injecting Service dependencies).
	userHandler := userHttp.NewHandler(cfg.UserService, cfg.FileService, cfg.JWTManager)
	bookingHandler := bookingHttp.NewHandler(cfg.BookingService, cfg.UserService, cfg.UpcomingLimit)
	roomHandler := roomHttp.NewHandler(cfg.RoomService)
	fileHandler := fileHttp.NewHandler(cfg.FileService)

	// Register API routes under /v1
	v1 := r.Group("/v1")
	{
		userHttp.RegisterRoutes(v1, userHandler, authMiddleware)
		bookingHttp.RegisterRoutes(v1, bookingHandler, authMiddleware)
		roomHttp.RegisterRoutes(v1, roomHandler, authMiddleware)
		fileHttp.RegisterRoutes(v1, fileHandler, authMiddleware)
	}

	return r
}
