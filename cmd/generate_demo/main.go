// Command generate_demo creates a demo database with a sample game catalog.
// Usage: go run cmd/generate_demo/main.go [-db path/to/demo.db]
package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"gorm.io/gorm/logger"

	"github.com/mrlokans/gamesreviewer/internal/database"
	"github.com/mrlokans/gamesreviewer/internal/demo"
	"github.com/mrlokans/gamesreviewer/internal/services"
)

const defaultDemoDatabasePath = "./demo/demo.db"

func main() {
	dbPath := flag.String("db", defaultDemoDatabasePath, "path to the demo database file")
	flag.Parse()

	log.Printf("Generating demo database at %s...", *dbPath)

	// Delete existing demo database to start fresh
	if err := os.Remove(*dbPath); err != nil && !os.IsNotExist(err) {
		log.Fatalf("Failed to remove existing demo database: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(*dbPath), 0755); err != nil {
		log.Fatalf("Failed to create demo directory: %v", err)
	}

	db, err := database.NewDatabase(database.Options{
		Driver:   database.DriverSQLite,
		Path:     *dbPath,
		LogLevel: logger.Error,
	})
	if err != nil {
		log.Fatalf("Failed to create database: %v", err)
	}
	defer db.Close()

	catalog := services.NewCatalog(services.NewSQLStores(db.DB), nil)
	if _, err := demo.Seed(catalog); err != nil {
		log.Fatalf("Failed to seed demo catalog: %v", err)
	}

	log.Println("Demo database generated successfully!")
}
