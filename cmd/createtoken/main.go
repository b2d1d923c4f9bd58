package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"shiftclock.app/shiftclock/security"
)

func main() {
	userID := flag.String("user", "", "user id to mint the token for")
	name := flag.String("name", "", "display name claim")
	email := flag.String("email", "", "email claim")
	permission := flag.String("permission", "USER", "USER, MANAGER or ADMIN")
	expires := flag.Int64("expires", 3600, "lifetime in seconds")
	flag.Parse()

	if *userID == "" {
		log.Fatal("-user is required")
	}

	secret := os.Getenv("SHIFTCLOCK_SIGNING_SECRET")
	if secret == "" {
		log.Fatal("SHIFTCLOCK_SIGNING_SECRET is not set")
	}

	token, err := security.CreateIdentityToken(&security.Identity{
		UserID:     *userID,
		UniqueName: *name,
		Email:      *email,
		Permission: *permission,
	}, secret, *expires)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(token)
}
