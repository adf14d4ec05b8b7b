package main

import (
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/streadway/amqp"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"bodima/internal/config"
	"bodima/internal/handlers"
	"bodima/internal/middleware"
	"bodima/internal/models"
	"bodima/internal/repositories"
	"bodima/internal/services"
	"bodima/pkg/mailer"
	"bodima/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// --- Database ---
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to access database pool: %v", err)
	}
	// Bounded pool; requests queue for a connection when it is exhausted.
	sqlDB.SetMaxOpenConns(cfg.Database.PoolSize)
	sqlDB.SetMaxIdleConns(cfg.Database.PoolSize)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	if err := db.AutoMigrate(
		&models.User{}, &models.University{}, &models.Boarding{},
		&models.Room{}, &models.Booking{}, &models.Payment{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// --- RabbitMQ ---
	mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL})
	if err != nil {
		log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
	}
	defer mqClient.Close()

	// --- Mailer ---
	// Missing SMTP credentials are not fatal at startup; the email endpoint
	// reports a configuration error per request instead.
	var contactSender services.ContactSender
	if m, err := mailer.New(mailer.Config{
		Host:     cfg.Mail.Host,
		Port:     cfg.Mail.Port,
		Username: cfg.Mail.Username,
		Password: cfg.Mail.Password,
		Inbox:    cfg.Mail.Inbox,
	}); err != nil {
		log.Printf("Warning: mailer not configured: %v", err)
	} else {
		contactSender = m
	}

	app := newApp(cfg, db, mqClient, contactSender)

	// --- RabbitMQ Consumer ---
	go func() {
		log.Println("Starting RabbitMQ consumer for bookings...")
		messageHandler := func(msg amqp.Delivery) error {
			log.Printf("Received Booking Event (Tag: %d): %s", msg.DeliveryTag, string(msg.Body))
			return nil
		}
		if consumerErr := mqClient.ConsumeBookingEvents(messageHandler); consumerErr != nil {
			log.Printf("Failed to start RabbitMQ consumer: %v", consumerErr)
		}
	}()

	// --- Start HTTP Server ---
	log.Printf("Starting server on port %s", cfg.Server.Port)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(cfg.Server.Port); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}
	log.Println("Server gracefully stopped")
}

// newApp wires repositories, services and handlers into a Fiber app.
func newApp(cfg *config.Config, db *gorm.DB, publisher services.EventPublisher, contactSender services.ContactSender) *fiber.App {
	// --- Repositories ---
	userRepo := repositories.NewGORMUserRepository(db)
	universityRepo := repositories.NewGORMUniversityRepository(db)
	boardingRepo := repositories.NewGORMBoardingRepository(db)
	roomRepo := repositories.NewGORMRoomRepository(db)
	bookingRepo := repositories.NewGORMBookingRepository(db)
	paymentRepo := repositories.NewGORMPaymentRepository(db)

	// --- Services ---
	authService := services.NewAuthService(userRepo, cfg.Auth)
	userService := services.NewUserService(userRepo)
	universityService := services.NewUniversityService(universityRepo)
	boardingService := services.NewBoardingService(boardingRepo, universityRepo)
	roomService := services.NewRoomService(roomRepo, boardingRepo)
	bookingService := services.NewBookingService(bookingRepo, roomRepo, userRepo, publisher)
	paymentService := services.NewPaymentService(paymentRepo, bookingRepo)
	emailService := services.NewEmailService(contactSender)

	// --- Handlers ---
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	universityHandler := handlers.NewUniversityHandler(universityService)
	boardingHandler := handlers.NewBoardingHandler(boardingService)
	roomHandler := handlers.NewRoomHandler(roomService)
	bookingHandler := handlers.NewBookingHandler(bookingService)
	paymentHandler := handlers.NewPaymentHandler(paymentService)
	emailHandler := handlers.NewEmailHandler(emailService)

	app := fiber.New()

	// --- Middleware ---
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Join(cfg.Server.AllowedOrigins, ","),
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Accept,Authorization,Content-Type",
		AllowCredentials: true,
	}))

	// --- API Routes ---
	api := app.Group("/api")

	users := api.Group("/users")
	authHandler.RegisterRoutes(users)
	// User CRUD is guarded by default; AUTH_PROTECT_USER_ROUTES=false leaves
	// it open to any caller.
	if cfg.Auth.ProtectUserRoutes {
		userHandler.RegisterRoutes(users, middleware.AuthRequired(authService))
	} else {
		log.Println("Warning: user CRUD routes are unprotected (AUTH_PROTECT_USER_ROUTES=false)")
		userHandler.RegisterRoutes(users)
	}

	universityHandler.RegisterRoutes(api.Group("/universities"))
	boardingHandler.RegisterRoutes(api.Group("/boarding"))
	roomHandler.RegisterRoutes(api.Group("/room"))
	bookingHandler.RegisterRoutes(api.Group("/book"))
	paymentHandler.RegisterRoutes(api.Group("/payments"))

	emailHandler.RegisterRoutes(app)

	// --- Health Check Endpoint ---
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	return app
}
