package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/campuslink/campuslink/internal/pkg/logger"
	"github.com/campuslink/campuslink/internal/server"
)

// @title CampusLink API
// @version 1.0
// @description Campus directory API for hostels, news, events, jobs, roommates and the student spotlight

// @contact.name API Support
// @contact.email support@campuslink.app

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

func main() {
	// .env is optional; real deployments configure through the environment
	_ = godotenv.Load()

	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
