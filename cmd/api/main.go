package main

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/gvormbrock/user-registry-backend/internal/config"
	"github.com/gvormbrock/user-registry-backend/internal/country"
	"github.com/gvormbrock/user-registry-backend/internal/middleware"
	"github.com/gvormbrock/user-registry-backend/internal/user"
)

// main wires the in-memory variant for local development; no database
// required.
func main() {
	cfg := config.Load()

	app := fiber.New()
	app.Use(middleware.Timing)

	countryRepo := country.NewInMemoryRepository([]country.Country{
		{Name: "France", Code: "fr"},
		{Name: "England", Code: "en"},
		{Name: "Germany", Code: "de"},
		{Name: "Spain", Code: "es"},
		{Name: "Italy", Code: "it"},
	})
	countryService := country.NewService(countryRepo)

	userRepo := user.NewInMemoryRepository(nil)
	userService := user.NewService(userRepo, countryService)
	userHandler := user.NewHandler(userService)
	userHandler.RegisterRoutes(app)

	log.Printf("starting server on %s", cfg.Addr)
	if err := app.Listen(cfg.Addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
