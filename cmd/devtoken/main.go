// Command devtoken prints a signed bearer token for local testing against a
// server configured with the same auth.jwt_secret.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"jobtracker_backend/internal/auth"
	"jobtracker_backend/internal/config"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	subject := flag.String("sub", "dev-user", "token subject (becomes ownerId)")
	email := flag.String("email", "", "optional email claim")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfg.Auth.JWTSecret == "" {
		log.Fatal("auth.jwt_secret is not set; devtoken only works with local verification")
	}

	token, err := auth.MakeToken(*subject, *email, cfg.Auth.JWTSecret, *ttl)
	if err != nil {
		log.Fatalf("Failed to sign token: %v", err)
	}
	fmt.Println(token)
}
