package main

import (
	"context"
	"encoding/base64"
	"log"

	"github.com/gin-gonic/gin"

	"shiftclock.app/shiftclock/core"
	"shiftclock.app/shiftclock/infrastructure/devops"
	"shiftclock.app/shiftclock/infrastructure/filesystem"
	"shiftclock.app/shiftclock/timeclock/web/handlers/timesheet"
	"shiftclock.app/shiftclock/web/middlewares"
)

func main() {
	cfg, err := devops.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := core.Connect(cfg.DSN, cfg.MaxConnections, core.LogLevelWarn)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	jwtSecret, err := base64.StdEncoding.DecodeString(cfg.SigningSecret)
	if err != nil {
		log.Fatal("Failed to decode JWT secret:", err)
	}

	var signatures *filesystem.SignatureStore
	if cfg.SignatureBucket != "" {
		signatures, err = filesystem.NewSignatureStore(context.Background(), cfg.SignatureBucket)
		if err != nil {
			log.Fatal(err)
		}
	}

	r := gin.Default()

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	protected := r.Group("/api/timeclock/v1.0")
	protected.Use(middlewares.Authentication(jwtSecret))
	{
		timesheet.Register(protected, db.Gorm, signatures)
	}

	r.Run(cfg.ListenAddr)
}
