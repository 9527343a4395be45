package main

import (
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/sefazor/ourwedding-backend/internal/config"
	"github.com/sefazor/ourwedding-backend/internal/handler"
	"github.com/sefazor/ourwedding-backend/internal/middleware"
	"github.com/sefazor/ourwedding-backend/internal/repository"
	"github.com/sefazor/ourwedding-backend/internal/service"
	"github.com/sefazor/ourwedding-backend/pkg/database"
	"github.com/sefazor/ourwedding-backend/pkg/email"
	"github.com/sefazor/ourwedding-backend/pkg/qrcode"
	"github.com/sefazor/ourwedding-backend/pkg/realtime"
	"github.com/sefazor/ourwedding-backend/pkg/storage"
	"github.com/sefazor/ourwedding-backend/pkg/utils"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	zapLogger := newLogger()
	defer zapLogger.Sync()

	cfg := config.LoadConfig()

	// Database
	db := database.NewDatabase()
	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	codeRepo := repository.NewLoginCodeRepository(db)
	weddingRepo := repository.NewWeddingRepository(db)
	guestRepo := repository.NewGuestRepository(db)
	photoRepo := repository.NewPhotoRepository(db)
	storyRepo := repository.NewLoveStoryRepository(db)

	// Prune expired login codes in the background.
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			if err := codeRepo.DeleteExpired(time.Now()); err != nil {
				zapLogger.Warn("login code cleanup failed", zap.Error(err))
			}
		}
	}()

	// Object storage
	r2Storage, err := storage.NewCloudflareStorage(cfg)
	if err != nil {
		log.Fatal("Failed to initialize R2 storage:", err)
	}

	// Email service
	emailService := email.NewEmailService(zapLogger)

	// Realtime change feed
	hub := realtime.NewHub()

	// QR codes for public pages
	qrService := qrcode.NewQRService(cfg.PublicBase)

	// Services
	authService := service.NewAuthService(userRepo, codeRepo, emailService, zapLogger)
	weddingService := service.NewWeddingService(weddingRepo, photoRepo, r2Storage, qrService, cfg)
	photoService := service.NewPhotoService(photoRepo, weddingRepo, r2Storage, hub, cfg, zapLogger)
	rsvpService := service.NewRSVPService(guestRepo, photoRepo, weddingRepo, photoService, hub, zapLogger)
	storyService := service.NewLoveStoryService(storyRepo, weddingRepo)
	publicService := service.NewPublicService(weddingRepo, storyRepo, photoRepo, photoService)

	// Validator
	validator := utils.NewValidator()

	// Handlers
	authHandler := handler.NewAuthHandler(authService, validator)
	weddingHandler := handler.NewWeddingHandler(weddingService, validator)
	rsvpHandler := handler.NewRSVPHandler(rsvpService, validator)
	photoHandler := handler.NewPhotoHandler(photoService, validator)
	storyHandler := handler.NewLoveStoryHandler(storyService, validator)
	publicHandler := handler.NewPublicHandler(publicService, hub, qrService)

	// Router
	app := fiber.New(fiber.Config{
		BodyLimit: 25 * 1024 * 1024,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.FrontendURL + ", http://localhost:5173",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, DELETE",
		AllowCredentials: true,
	}))
	app.Use(logger.New())
	app.Use(limiter.New(limiter.Config{
		Max:        60,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
	}))

	api := app.Group("/api")

	// Public auth routes
	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/otp/request", authHandler.RequestLoginCode)
	auth.Post("/otp/verify", authHandler.VerifyLoginCode)

	// Public guest-facing routes
	api.Get("/w/:slug", publicHandler.GetPublicPage)
	api.Post("/w/:slug/rsvp", rsvpHandler.SubmitRSVP)
	api.Post("/w/:slug/photos", photoHandler.UploadGuestPhoto)
	api.Post("/w/:slug/gallery", photoHandler.PublicGallery)
	api.Get("/w/:slug/stream", publicHandler.StreamChanges)
	api.Get("/w/:slug/qr", publicHandler.GetQR)

	// Protected routes
	api.Use(middleware.AuthMiddleware())
	{
		user := api.Group("/user")
		user.Get("/profile", authHandler.GetMyProfile)

		weddings := api.Group("/weddings")
		weddings.Post("/", weddingHandler.CreateWedding)
		weddings.Get("/", weddingHandler.GetUserWeddings)
		weddings.Get("/:id", weddingHandler.GetWedding)
		weddings.Put("/:id", weddingHandler.UpdateWedding)
		weddings.Delete("/:id", weddingHandler.DeactivateWedding)
		weddings.Post("/:id/cover", weddingHandler.UploadCoverPhoto)
		weddings.Get("/:id/qr", weddingHandler.GetWeddingQR)

		// RSVP moderation
		weddings.Get("/:id/guests", rsvpHandler.ListGuests)
		guests := api.Group("/guests")
		guests.Put("/:id/approve", rsvpHandler.ApproveGuest)
		guests.Put("/:id/decline", rsvpHandler.DeclineGuest)
		guests.Delete("/:id", rsvpHandler.DeleteGuest)

		// Photo moderation
		weddings.Get("/:id/photos", photoHandler.ListForModeration)
		photos := api.Group("/photos")
		photos.Put("/:id/status", photoHandler.SetApprovalStatus)
		photos.Delete("/:id", photoHandler.DeletePhoto)

		// Love story timeline
		weddings.Get("/:id/story", storyHandler.ListEvents)
		weddings.Post("/:id/story", storyHandler.CreateEvent)
		story := api.Group("/story")
		story.Put("/:id", storyHandler.UpdateEvent)
		story.Delete("/:id", storyHandler.DeleteEvent)
		story.Put("/:id/move", storyHandler.MoveEvent)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	zapLogger.Info("starting server", zap.String("port", port))
	log.Fatal(app.Listen(":" + port))
}

func newLogger() *zap.Logger {
	if os.Getenv("GO_ENV") == "production" {
		l, err := zap.NewProduction()
		if err != nil {
			log.Fatal("Failed to initialize logger:", err)
		}
		return l
	}
	l, err := zap.NewDevelopment()
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	return l
}
