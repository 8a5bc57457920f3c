package main

import (
	"log"

	"nexzen-fees/app/config"
	"nexzen-fees/app/database"
)

func main() {
	log.Println("Starting schema migration...")

	config.InitDB()
	db := config.GetDB()
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Migration failed: ", err)
	}

	log.Println("Schema migration completed successfully!")
}
