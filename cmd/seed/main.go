package main

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/oksasatya/devconnector-api/config"
	"github.com/oksasatya/devconnector-api/internal/application"
	"github.com/oksasatya/devconnector-api/internal/container"
	"github.com/oksasatya/devconnector-api/internal/domain/entity"
	"github.com/oksasatya/devconnector-api/pkg/helpers"
)

// seed creates a demo user with a profile and a first post so a fresh
// environment has something to show.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	ctx := context.Background()

	stores, closeStores, err := container.OpenStores(ctx, cfg)
	if err != nil {
		log.Fatalf("open stores: %v", err)
	}
	defer closeStores()

	c := container.New(cfg, helpers.NewNopLogger(), stores, container.Options{})

	email := "demo@devconnector.test"
	password := "password123"
	name := "Demo User"

	_, u, err := c.Auth.Register(ctx, application.RegisterInput{Name: name, Email: email, Password: password})
	if errors.Is(err, entity.ErrUserExists) {
		fmt.Printf("user %s already seeded\n", email)
		return
	}
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%s email=%s name=%s password=%s\n", u.ID, email, name, password)

	status, skills, company := "Developer", "Go, PostgreSQL, Docker", "DevConnector"
	if _, err := c.Profiles.Upsert(ctx, u.ID, application.ProfileInput{Status: &status, Skills: &skills, Company: &company}); err != nil {
		log.Fatalf("failed to seed profile: %v", err)
	}
	fmt.Println("seeded profile")

	p, err := c.Posts.Create(ctx, u.ID, "Hello from the seed script!")
	if err != nil {
		log.Fatalf("failed to seed post: %v", err)
	}
	fmt.Printf("seeded post: id=%s\n", p.ID)
}
