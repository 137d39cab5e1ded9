package main

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Fatimadayan/Sooqbot/entity"
)

func setupDatabase(dsn string) *gorm.DB {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect database:", err)
	}

	// Ensure required extensions for UUID are present (if using Postgres with uuid_generate_v4)
	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\"").Error; err != nil {
		log.Println("warning: failed to ensure uuid-ossp extension:", err)
	}

	if err := db.AutoMigrate(
		&entity.Store{},
		&entity.Product{},
		&entity.Order{},
	); err != nil {
		log.Fatal("failed to run migrations:", err)
	}
	return db
}
