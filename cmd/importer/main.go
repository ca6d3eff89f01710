package main

import (
	"context"
	"flag"
	"log"

	"reviewhub/internal/importer"
	"reviewhub/pkg/database"
	"reviewhub/pkg/utils"

	"go.uber.org/zap"
)

// Loads the CSV seed files into the database. Row failures are logged
// and skipped so a partial seed set still imports.
func main() {
	dir := flag.String("dir", "", "directory with CSV seed files (defaults to CSV_DIR)")
	flag.Parse()

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

	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	seedDir := config.Import.Dir
	if *dir != "" {
		seedDir = *dir
	}

	imp := importer.NewImporter(db, logger)

	summary, err := imp.Run(context.Background(), seedDir)
	if err != nil {
		logger.Fatal("Import aborted", zap.Error(err))
	}

	for _, result := range summary.Files {
		if result.Skipped {
			continue
		}
		logger.Info("Import result",
			zap.String("file", result.File),
			zap.Int("attempted", result.Attempted),
			zap.Int("succeeded", result.Succeeded),
			zap.Int("failed", result.Failed))
	}
}
