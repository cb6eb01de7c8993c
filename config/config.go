package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Env         string
	ServerPort  string
	DatabaseDSN string
	FrontendURL string

	JWTSecret string

	CloudinaryURL string

	KafkaBroker   string
	KafkaTopic    string
	KafkaUsername string
	KafkaPassword string

	SMTPHost     string
	SMTPPort     string
	SMTPUsername string
	SMTPPassword string
	MailFrom     string
	MailFromName string
}

func LoadConfig() Config {
	if os.Getenv("ENV") != "prod" {
		if err := godotenv.Overload(); err != nil {
			log.Warn().Err(err).Msg("env file not found or could not be loaded")
		}
	}

	return Config{
		Env:         os.Getenv("ENV"),
		ServerPort:  os.Getenv("SERVER_PORT"),
		DatabaseDSN: os.Getenv("DATABASE_DSN"),
		FrontendURL: os.Getenv("FRONTEND_URL"),

		JWTSecret: os.Getenv("JWT_SECRET"),

		CloudinaryURL: os.Getenv("CLOUDINARY_URL"),

		KafkaBroker:   os.Getenv("KAFKA_BROKER"),
		KafkaTopic:    os.Getenv("KAFKA_TOPIC"),
		KafkaUsername: os.Getenv("KAFKA_USERNAME"),
		KafkaPassword: os.Getenv("KAFKA_PASSWORD"),

		SMTPHost:     os.Getenv("SMTP_HOST"),
		SMTPPort:     os.Getenv("SMTP_PORT"),
		SMTPUsername: os.Getenv("SMTP_USERNAME"),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),
		MailFrom:     os.Getenv("MAIL_FROM"),
		MailFromName: os.Getenv("MAIL_FROM_NAME"),
	}
}
