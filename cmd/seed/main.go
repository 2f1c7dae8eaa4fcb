package main

import (
	"context"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"booknotes/internal/config"
	"booknotes/internal/db"
	"booknotes/internal/model"
	"booknotes/internal/repository"
)

const (
	demoEmail    = "demo@booknotes.local"
	demoPassword = "demo-password"
)

var demoNotes = []model.Note{
	{Title: "Dune", Author: "Frank Herbert", Content: "Desert planet, spice politics, the sleeper must awaken."},
	{Title: "The Left Hand of Darkness", Author: "Ursula K. Le Guin", Content: "Gethen, an envoy, and a long walk across the ice."},
	{Title: "Snow Crash", Author: "Neal Stephenson", Content: "Pizza delivery, the Metaverse, and a linguistic virus."},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}, &model.Note{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	userRepo := repository.NewUserRepository(gormDB)
	noteRepo := repository.NewNoteRepository(gormDB)
	ctx := context.Background()

	user, err := userRepo.FindByEmail(ctx, demoEmail)
	if err == gorm.ErrRecordNotFound {
		hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("Failed to hash demo password: %v", err)
		}
		user = &model.User{Email: demoEmail, PasswordHash: string(hash)}
		if err := userRepo.Create(ctx, user); err != nil {
			log.Fatalf("Failed to create demo user: %v", err)
		}
		log.Printf("Created demo user %s (password: %s)", demoEmail, demoPassword)
	} else if err != nil {
		log.Fatalf("Failed to look up demo user: %v", err)
	} else {
		log.Printf("Demo user %s already exists", demoEmail)
	}

	existing, err := noteRepo.ListByOwner(ctx, user.ID)
	if err != nil {
		log.Fatalf("Failed to list demo notes: %v", err)
	}
	if len(existing) > 0 {
		log.Printf("Demo user already has %d notes, skipping note seed", len(existing))
		return
	}

	for _, note := range demoNotes {
		note.OwnerID = user.ID
		if err := noteRepo.Create(ctx, &note); err != nil {
			log.Fatalf("Failed to create note %q: %v", note.Title, err)
		}
	}

	log.Printf("Seed completed successfully, created %d notes", len(demoNotes))
}
