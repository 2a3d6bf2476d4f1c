package main

import (
	"fmt"
	"log"
	"os"

	"github.com/your-org/florist-backend/internal/config"
	"github.com/your-org/florist-backend/internal/pkg/auth"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("Usage: go run scripts/generate_password.go <password>")
	}

	password := os.Args[1]

	cfg := &config.Config{}
	cfg.Security.BcryptCost = 12

	passwords := auth.NewPasswordManager(cfg)

	// Same policy and cost as the admin seed, so a hash generated here is
	// always accepted at login
	hash, err := passwords.HashPassword(password)
	if err != nil {
		log.Fatal("Error generating hash:", err)
	}

	fmt.Printf("Password: %s\n", password)
	fmt.Printf("Hash: %s\n", hash)

	if err := passwords.VerifyPassword(password, hash); err != nil {
		log.Fatal("Hash verification failed:", err)
	}

	fmt.Println("✅ Hash verified successfully!")
}
