package main

import (
	"log"

	"frota-backend/internal/config"
	"frota-backend/pkg/database"
)

func main() {
	cfg := config.Load()

	db, err := database.Connect(cfg.DB)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer database.Close(db)

	if err := database.Seed(db); err != nil {
		log.Fatal("Seeding failed:", err)
	}

	log.Println("Seed data applied")
}
