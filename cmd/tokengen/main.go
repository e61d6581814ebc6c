package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"

	"github.com/B4-art/chatapp/infrastructure/auth"
	"github.com/B4-art/chatapp/internal"
)

// tokengen mints a credential token for a user ID, for pointing a
// client at a non-anonymous identity via AUTH_TOKEN.
func main() {
	userID := flag.String("user", "", "user ID to embed in the token")
	flag.Parse()
	if *userID == "" {
		log.Fatal("missing -user")
	}

	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		log.Fatalf("Config error: %v", err)
	}

	token, err := auth.GenerateToken(*userID, []byte(config.AuthSecret), config.AuthTokenDuration)
	if err != nil {
		log.Fatalf("Token generation failed: %v", err)
	}
	fmt.Println(token)
}
