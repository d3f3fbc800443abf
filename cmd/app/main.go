package main

import (
	"database/sql"
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/gvormbrock/user-registry-backend/internal/config"
	"github.com/gvormbrock/user-registry-backend/internal/country"
	"github.com/gvormbrock/user-registry-backend/internal/middleware"
	"github.com/gvormbrock/user-registry-backend/internal/user"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	app := fiber.New()
	setupCORS(app)
	app.Use(middleware.Timing)

	db := mustOpenDB()
	defer db.Close()

	ensureSchema(db)

	countryRepo := country.NewPostgresRepository(db)
	countryService := country.NewService(countryRepo)

	userRepo := user.NewPostgresRepository(db)
	userService := user.NewService(userRepo, countryService)
	userHandler := user.NewHandler(userService)
	userHandler.RegisterRoutes(app)

	log.Printf("starting server on %s", cfg.Addr)
	if err := app.Listen(cfg.Addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func setupCORS(app *fiber.App) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))
}

func mustOpenDB() *sql.DB {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		panic("DATABASE_URL is not set")
	}

	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		panic(err)
	}

	if err := db.Ping(); err != nil {
		panic(err)
	}

	return db
}

// ensureSchema creates the tables when missing and seeds the country
// reference data. Countries are never written through the API.
func ensureSchema(db *sql.DB) {
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS countries (
        id BIGSERIAL PRIMARY KEY,
        name TEXT NOT NULL UNIQUE,
        country_code VARCHAR(2) NOT NULL UNIQUE
    )`); err != nil {
		panic(err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS users (
        id BIGSERIAL PRIMARY KEY,
        gender TEXT,
        name TEXT NOT NULL,
        birthday DATE NOT NULL,
        country_id BIGINT NOT NULL REFERENCES countries(id),
        phone_number TEXT
    )`); err != nil {
		panic(err)
	}

	if _, err := db.Exec(`INSERT INTO countries (name, country_code)
        VALUES ('France', 'fr'), ('England', 'en'), ('Germany', 'de'), ('Spain', 'es'), ('Italy', 'it')
        ON CONFLICT (country_code) DO NOTHING`); err != nil {
		panic(err)
	}
}
