package main

import (
	"event-portal/core/logger"
	"event-portal/core/server"
)

// @title Event Portal API
// @version 1.0
// @description Backend-for-frontend of the event portal: page view models and session-aware actions over the event API.

// @host localhost:7070
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Portal session token. Example: "Bearer {token}"

func main() {
	if err := server.Run(); err != nil {
		logger.Error("run server error", err)
	}
}
