package main

import (
	"context"
	"flag"
	"log"

	"catalog-chat-be/internal/config"
	"catalog-chat-be/internal/model"
	"catalog-chat-be/internal/repository/unitofwork"
	"catalog-chat-be/internal/seed"
	"catalog-chat-be/pkg/database"

	"github.com/fatih/color"
)

func main() {
	clear := flag.Bool("clear", false, "wipe the catalog before seeding")
	flag.Parse()

	cfg := config.Load()

	if cfg.Database.Connection == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDB(cfg.Database.Driver, cfg.Database.Connection)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	// Seeding against a fresh database should not require a separate
	// migrate run first.
	if err := db.AutoMigrate(&model.Category{}, &model.Brand{}, &model.Product{}); err != nil {
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}

	if *clear {
		color.Yellow("Clearing existing catalog data...")
	}

	uowFactory := unitofwork.NewRepositoryFactory(db)
	summary, err := seed.Run(context.Background(), uowFactory, *clear)
	if err != nil {
		color.Red("Seeding failed: %v", err)
		log.Fatal(err)
	}

	color.Green("Catalog seeded: %d categories, %d brands, %d products",
		summary.Categories, summary.Brands, summary.Products)
}
