package main

import (
	"context"
	"log"
	"os"

	"shiftclock.app/shiftclock/core"
	identity "shiftclock.app/shiftclock/identity/v1"
	"shiftclock.app/shiftclock/infrastructure/devops"
)

// Mirrors the identity provider's user directory into the timeclock database.
// Run from cron; a full sync is idempotent.
func main() {
	cfg, err := devops.Load()
	if err != nil {
		log.Fatal(err)
	}

	providerURL := os.Getenv("IDENTITY_PROVIDER_URL")
	if providerURL == "" {
		log.Fatal("IDENTITY_PROVIDER_URL is not set")
	}

	db, err := core.Connect(cfg.DSN, 2, core.LogLevelWarn)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	client := identity.NewIdentityClient(providerURL, os.Getenv("IDENTITY_PROVIDER_TOKEN"))
	synced, err := identity.SyncUsers(context.Background(), client, db.Gorm)
	if err != nil {
		log.Fatalf("sync failed after %d users: %v", synced, err)
	}

	log.Printf("synced %d users", synced)
}
