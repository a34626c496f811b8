package main

import (
	"net/smtp"
	"strings"

	log "github.com/sirupsen/logrus"

	"tajobs/internal/config"
	"tajobs/internal/database"
	"tajobs/internal/mailer"
	"tajobs/internal/server"
)

func main() {
	cfg := config.Load()

	db, err := database.Connect(cfg.DSN)
	if err != nil {
		log.Fatalf("DB connect error: %v", err)
	}

	if err := database.RunMigrations(db, "migrations"); err != nil {
		log.Fatalf("migrations error: %v", err)
	}

	var auth smtp.Auth
	if cfg.SMTPUser != "" {
		host := cfg.SMTPAddr
		if i := strings.IndexByte(host, ':'); i >= 0 {
			host = host[:i]
		}
		auth = smtp.PlainAuth("", cfg.SMTPUser, cfg.SMTPPass, host)
	}
	mail := mailer.NewSMTPMailer(cfg.SMTPAddr, cfg.SMTPFrom, auth)

	srv := server.NewServer(db, mail, cfg)
	if err := srv.Run(); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
