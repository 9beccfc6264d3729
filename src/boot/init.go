package boot

import (
	"log"

	"odyssey/src/db"
	"odyssey/src/models"

	"gorm.io/gorm"
)

func InitDb() *gorm.DB {
	db := db.GetDb()

	err := db.AutoMigrate(
		&models.User{},
		&models.TravelPackage{},
		&models.Booking{},
		&models.Companion{},
		&models.Payment{},
		&models.SupportTicket{},
	)
	if err != nil {
		log.Fatalf("error migration: %s", err.Error())
	}

	return db
}
