package main

import (
	"backend/internal/app/ds"
	"backend/internal/app/dsn"
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	_ = godotenv.Load()

	db, err := gorm.Open(postgres.Open(dsn.FromEnv()), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	var dealers []ds.Dealer
	err = db.Find(&dealers).Error
	if err != nil {
		log.Fatal("Failed to get dealers:", err)
	}

	fmt.Println("Dealers in database:")
	for _, dealer := range dealers {
		logoURL := "NULL"
		if dealer.LogoURL != nil {
			logoURL = *dealer.LogoURL
		}
		fmt.Printf("ID: %d, Name: %s, Email: %s, LogoURL: %s\n",
			dealer.DealerID, dealer.Name, dealer.Email, logoURL)
	}
}
