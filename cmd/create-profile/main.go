// Command create-profile creates a local profile and prints a session token,
// for development against the wizard API without the external identity
// provider.
package main

import (
	"flag"
	"fmt"
	"log"

	"licenca_flow_go/config"
	"licenca_flow_go/db"
	"licenca_flow_go/models"
	"licenca_flow_go/services"
)

func main() {
	email := flag.String("email", "", "profile email (required)")
	name := flag.String("name", "Dev User", "profile display name")
	flag.Parse()

	if *email == "" {
		log.Fatal("usage: create-profile -email user@example.com [-name \"Dev User\"]")
	}

	cfg := config.Load()
	if err := db.Initialize(cfg.DBPath, cfg.Environment); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	if err := db.AutoMigrate(&models.Profile{}, &models.Session{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	var profile models.Profile
	err := db.DB.Where("email = ?", *email).First(&profile).Error
	if err != nil {
		profile = models.Profile{Email: *email, Name: *name, IsActive: true}
		if err := db.DB.Create(&profile).Error; err != nil {
			log.Fatalf("Failed to create profile: %v", err)
		}
		fmt.Printf("Created profile %s (%s)\n", profile.ID, profile.Email)
	} else {
		fmt.Printf("Profile already exists: %s (%s)\n", profile.ID, profile.Email)
	}

	session, err := services.CreateSession(db.DB, profile.ID)
	if err != nil {
		log.Fatalf("Failed to create session: %v", err)
	}

	fmt.Printf("Session token: %s\n", session.Token)
	fmt.Println("Send it as the licenca_flow_session cookie.")
}
