package main

import (
	"database/sql"
	"flag"
	"log"
	"route-solver-service/internal/adapters/repositories"
	"route-solver-service/internal/config"
	"route-solver-service/internal/platform/db"
	"strings"

	"github.com/joho/godotenv"
)

// dbtool initializes the depot schema and loads the depot seed file.
// It targets DATABASE_URL (Postgres) unless -sqlite is given.
func main() {
	sqlitePath := flag.String("sqlite", "", "initialize this SQLite file instead of DATABASE_URL")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	seedPath := config.Get("SEED_PATH", "data/seeds/depots.json")

	if *sqlitePath != "" {
		conn, err := db.OpenSqlite(*sqlitePath)
		if err != nil {
			log.Fatal(err)
		}
		defer conn.Close()

		initAndSeed(conn, seedPath, repositories.InitSchema, repositories.SeedFromJSON)
		return
	}

	databaseURL := config.Get("DATABASE_URL", "")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	conn, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	initAndSeed(conn, seedPath, repositories.InitPostgresSchema, repositories.SeedPostgresFromJSON)
}

func initAndSeed(conn *sql.DB, seedPath string, initFn func(*sql.DB) error, seedFn func(*sql.DB, string) error) {
	log.Println("Initializing database schema...")
	if err := initFn(conn); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")

	log.Printf("Seeding depots from %s...", seedPath)
	if err := seedFn(conn, seedPath); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
	log.Println("Seeding complete.")
}
