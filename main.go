package main

import (
	"log"
	"time"

	"reviewhub/cmd"
	"reviewhub/internal/data/repository"
	"reviewhub/internal/wire"
	"reviewhub/pkg/database"
	"reviewhub/pkg/mailer"
	"reviewhub/pkg/token"
	"reviewhub/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	repos := repository.NewRepository(db, logger)

	signer := token.NewJWTSigner(
		config.JWT.Secret,
		time.Duration(config.JWT.ExpiryHours)*time.Hour,
	)

	// In debug mode confirmation codes go to the log instead of SMTP.
	var mail mailer.Mailer
	if config.App.Debug {
		mail = mailer.NewLogMailer(logger)
	} else {
		mail = mailer.NewSMTPMailer(config.Email)
	}

	app := wire.Wiring(repos, config, signer, mail, logger)

	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
