// Package seed loads the starter fixtures: one admin account, a small
// doctor directory and two hospitals. It runs at startup and is skipped
// when user data already exists.
package seed

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/wizardXds/medicare/internal/model"
	"github.com/wizardXds/medicare/internal/repository"
	"github.com/wizardXds/medicare/pkg/security"
)

// DefaultPassword is the password for every seeded account. It is hashed
// at seed time so login works the same as for registered users.
const DefaultPassword = "password"

func strPtr(s string) *string { return &s }

func Run(ctx context.Context, store repository.Store, hasher security.PasswordHasher) error {
	if _, err := store.Users().GetByUsername(ctx, "admin"); err == nil {
		log.Debug().Msg("seed data already present, skipping")
		return nil
	}

	hashed, err := hasher.Hash(DefaultPassword)
	if err != nil {
		return fmt.Errorf("failed to hash seed password: %w", err)
	}

	users := []*model.User{
		{
			Username:  "admin",
			Password:  hashed,
			FirstName: "Admin",
			LastName:  "User",
			Email:     "admin@medicare.com",
			Phone:     strPtr("555-123-4567"),
			DOB:       strPtr("1980-01-01"),
			Role:      model.RoleAdmin,
		},
		{
			Username:  "drsmith",
			Password:  hashed,
			FirstName: "John",
			LastName:  "Smith",
			Email:     "dr.smith@medicare.com",
			Phone:     strPtr("555-111-2222"),
			DOB:       strPtr("1975-05-15"),
			Role:      model.RoleDoctor,
			Specialty: strPtr("Cardiology"),
			Bio:       strPtr("Dr. Smith is a board-certified cardiologist with over 15 years of experience in treating cardiovascular diseases."),
		},
		{
			Username:  "drjones",
			Password:  hashed,
			FirstName: "Sarah",
			LastName:  "Jones",
			Email:     "dr.jones@medicare.com",
			Phone:     strPtr("555-333-4444"),
			DOB:       strPtr("1982-09-23"),
			Role:      model.RoleDoctor,
			Specialty: strPtr("Pediatrics"),
			Bio:       strPtr("Dr. Jones specializes in pediatric care and has a passion for helping children maintain optimal health."),
		},
		{
			Username:  "drwilliams",
			Password:  hashed,
			FirstName: "Michael",
			LastName:  "Williams",
			Email:     "dr.williams@medicare.com",
			Phone:     strPtr("555-555-6666"),
			DOB:       strPtr("1978-12-10"),
			Role:      model.RoleDoctor,
			Specialty: strPtr("Orthopedics"),
			Bio:       strPtr("Dr. Williams is an orthopedic surgeon specializing in sports medicine and joint replacement surgery."),
		},
	}
	for _, u := range users {
		if err := store.Users().Create(ctx, u); err != nil {
			return fmt.Errorf("failed to seed user %s: %w", u.Username, err)
		}
	}

	hospitals := []*model.Hospital{
		{
			Name:    "City General Hospital",
			Address: "123 Medical Blvd",
			City:    "Medical City",
			State:   "MC",
			ZipCode: "12345",
			Phone:   strPtr("555-987-6543"),
			Email:   strPtr("info@citygeneral.com"),
			Website: strPtr("www.citygeneral.com"),
		},
		{
			Name:    "Memorial Medical Center",
			Address: "456 Healthcare Ave",
			City:    "Medical City",
			State:   "MC",
			ZipCode: "12345",
			Phone:   strPtr("555-456-7890"),
			Email:   strPtr("contact@memorialmed.com"),
			Website: strPtr("www.memorialmed.com"),
		},
	}
	for _, h := range hospitals {
		if err := store.Hospitals().Create(ctx, h); err != nil {
			return fmt.Errorf("failed to seed hospital %s: %w", h.Name, err)
		}
	}

	log.Info().Int("users", len(users)).Int("hospitals", len(hospitals)).Msg("seeded starter data")
	return nil
}
