package app

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/advertomedia/room-booking-backend/internal/api"
	"github.com/advertomedia/room-booking-backend/internal/auth"
	"github.com/advertomedia/room-booking-backend/internal/booking"
	"github.com/advertomedia/room-booking-backend/internal/file"
	"github.com/advertomedia/room-booking-backend/internal/pkg/storage"
	"github.com/advertomedia/room-booking-backend/internal/room"
	"github.com/advertomedia/room-booking-backend/internal/user"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction  bool
	ProdOrigins   string
	DBPool        *pgxpool.Pool
	JWTSecret     string
	JWTTTL        time.Duration
	BcryptCost    int
	StoragePath   string
	UpcomingLimit int
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router     *gin.Engine
	JWTManager *auth.JWTManager
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) (*Container, error) {
	// Init Components
	passwordHasher := auth.NewBcryptPasswordHasherWithCost(cfg.BcryptCost)
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)

	store, err := storage.NewLocalStorage(cfg.StoragePath)
	if err != nil {
		return nil, fmt.Errorf("failed to init storage: %w", err)
	}

	// User Module
	userRepo := user.NewPgxRepository(cfg.DBPool)
	userService := user.NewService(userRepo, passwordHasher)

	// Booking Module
	bookingRepo := booking.NewPgxRepository(cfg.DBPool)
	bookingService := booking.NewService(bookingRepo)

	// Room Module
	roomService := room.NewService(bookingService)

	// File Module
	fileRepo := file.NewRepository(cfg.DBPool)
	fileService := file.NewService(fileRepo, store)

	// Router
	router := api.NewRouter(api.Config{
		IsProduction:   cfg.IsProduction,
		ProdOrigins:    cfg.ProdOrigins,
		UpcomingLimit:  cfg.UpcomingLimit,
		UserService:    userService,
		BookingService: bookingService,
		RoomService:    roomService,
		FileService:    fileService,
		JWTManager:     jwtManager,
	})

	return &Container{
		Router:     router,
		JWTManager: jwtManager,
	}, nil
}
