package mail_fx

import (
	"log"
	"os"
	"strconv"

	"go.uber.org/fx"

	"gravecare/internal/services"
)

var Module = fx.Provide(
	provideMailService)

func provideMailService() services.IMailService {
	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil {
		port = 587
	}

	mailer, err := services.NewSMTPMailService(services.SMTPConfig{
		Host:       os.Getenv("SMTP_HOST"),
		Port:       port,
		Username:   os.Getenv("SMTP_USERNAME"),
		Password:   os.Getenv("SMTP_PASSWORD"),
		From:       os.Getenv("SMTP_FROM"),
		FromName:   "GraveCare",
		AppName:    "GraveCare",
		AdminEmail: os.Getenv("ADMIN_ALERT_EMAIL"),
	})
	if err != nil {
		log.Fatalf("Error creating mail service: %v", err)
	}
	return mailer
}
