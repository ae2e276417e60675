// @title           Job Application Tracker API
// @version         1.0
// @description     Owner-scoped CRUD for job applications and reminders.
// @host            localhost:5000
// @BasePath        /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Identity provider token: "Bearer <token>"

package main

import (
	"log"

	"jobtracker_backend/internal/app"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment and config file")
	}
	app.Run()
}
