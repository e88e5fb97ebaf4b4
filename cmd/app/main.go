package main

import (
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"

	"atlas/cmd"
)

func main() {
	configs := getConfigs()

	app := cmd.NewCompositionRoot(
		configs,
	)

	// The board owns the terminal, so job logs go to a file instead of
	// stderr.
	logFile, err := os.OpenFile(configs.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Fatalf("Error opening log file %s: %v", configs.LogFile, err)
	}
	defer logFile.Close()
	logger := slog.New(slog.NewTextHandler(logFile, nil))

	if configs.DemoJobsEnabled == "true" {
		jobManager := app.CreateJobManager(logger)
		if err := jobManager.StartAll(); err != nil {
			log.Fatalf("Error starting jobs: %v", err)
		}
		defer jobManager.StopAll()
	}

	startBoard(app)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		DemoJobsEnabled: goDotEnvVariable("DEMO_JOBS_ENABLED", "true"),
		LogFile:         goDotEnvVariable("LOG_FILE", "atlas.log"),
	}
	return config
}

func goDotEnvVariable(key string, fallback string) string {
	_ = godotenv.Load(".env")
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func startBoard(app cmd.CompositionRoot) {
	program := tea.NewProgram(app.CreateBoard(), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		log.Fatalf("Error running board: %v", err)
	}
}
