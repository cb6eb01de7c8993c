package api

import (
	"os"

	"github.com/BrickByte/lms_service/config"
	"github.com/BrickByte/lms_service/infra/queue"
	"github.com/BrickByte/lms_service/internal/api/rest/handlers"
	"github.com/BrickByte/lms_service/internal/apperr"
	"github.com/BrickByte/lms_service/internal/domain"
	"github.com/BrickByte/lms_service/internal/helper"
	"github.com/BrickByte/lms_service/internal/repository"
	"github.com/BrickByte/lms_service/internal/services"
	"github.com/BrickByte/lms_service/pkg/cloudinary"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func StartServer(cfg config.Config) {
	app := fiber.New(fiber.Config{
		ErrorHandler: apperr.ErrorHandler,
	})

	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.FrontendURL,
		AllowHeaders:     "Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		AllowCredentials: true,
	}))

	// ---------- DB ----------
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DatabaseDSN,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	if err != nil {
		log.Fatal().Err(err).Msg("database connection error")
	}
	log.Info().Msg("database connected")

	if err := db.AutoMigrate(
		&domain.User{},
		&domain.TodoItem{},
		&domain.Lead{},
	); err != nil {
		log.Fatal().Err(err).Msg("migration error")
	}
	log.Info().Msg("migration successful")

	// avatar uploads are staged here before the Cloudinary push
	if err := os.MkdirAll("uploads", 0o755); err != nil {
		log.Fatal().Err(err).Msg("cannot create uploads dir")
	}

	// ---------- Infra ----------
	kafkaProducer := queue.NewProducer(
		cfg.KafkaBroker,
		cfg.KafkaTopic,
		cfg.KafkaUsername,
		cfg.KafkaPassword,
	)

	cld, err := cloudinary.New(cfg.CloudinaryURL)
	if err != nil {
		log.Fatal().Err(err).Msg("cloudinary init error")
	}
	up := cloudinary.NewCloudinaryUploader(cld)

	mailer := services.NewMailService(
		cfg.SMTPHost,
		cfg.SMTPPort,
		cfg.SMTPUsername,
		cfg.SMTPPassword,
		cfg.MailFrom,
		cfg.MailFromName,
	)

	authHelper := helper.SetupAuth(cfg.JWTSecret)

	// ---------- Repositories ----------
	userRepo := repository.NewUserRepository(db)
	leadRepo := repository.NewLeadRepository(db)

	// ---------- Services ----------
	userSvc := services.NewUserService(userRepo, authHelper, up, mailer, kafkaProducer)
	leadSvc := services.NewLeadService(leadRepo, kafkaProducer)

	// ---------- Handlers ----------
	secureCookies := cfg.Env == "prod"
	userHandler := handlers.NewUserHandler(userSvc, authHelper, secureCookies)
	userHandler.SetupRoutes(app)
	leadHandler := handlers.NewLeadHandler(leadSvc)
	leadHandler.SetupRoutes(app)

	// ---------- Health ----------
	app.Get("/ping", func(c *fiber.Ctx) error {
		return c.SendString("pong")
	})

	// ---------- Listen ----------
	addr := cfg.ServerPort
	log.Info().Str("addr", addr).Msg("listening")
	log.Fatal().Err(app.Listen(addr)).Msg("server stopped")
}
