// Command token issues a signed caller token for the notes API.
//
//	token -token-sign-key secret -subject alice -staff
package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/MKhiriev/go-notes/internal/config"
	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/internal/service"
	"github.com/MKhiriev/go-notes/models"
)

func main() {
	log := logger.NewLogger("go-notes-token")

	var subject string
	var staff bool
	cfg, err := config.GetStructuredConfig(func(fs *flag.FlagSet) {
		fs.StringVar(&subject, "subject", "", "Token subject (caller name)")
		fs.BoolVar(&staff, "staff", false, "Issue a staff token")
	})
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}

	if cfg.App.TokenSignKey == "" {
		log.Fatal().Msg("token sign key is not configured")
	}
	if subject == "" {
		log.Fatal().Msg("-subject is required")
	}

	caller := models.Caller{Subject: subject, Role: models.RoleUser}
	if staff {
		caller.Role = models.RoleStaff
	}

	token, err := service.NewAuthService(cfg.App, log).CreateToken(context.Background(), caller)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating token")
	}

	fmt.Println(token.SignedString)
}
