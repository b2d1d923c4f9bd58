package models

import (
	"strings"
	"time"
)

// User mirrors the identity provider's record. Authentication itself happens
// upstream; this table only carries what the timeclock needs for display,
// approvals and signatures.
type User struct {
	ID           string  `gorm:"primaryKey;size:64"`
	FirstName    string  `gorm:"size:100"`
	Surname      string  `gorm:"size:100"`
	Email        *string `gorm:"index"`
	Permission   string  `gorm:"size:16;default:USER"` // USER, MANAGER, ADMIN
	SignatureKey *string `gorm:"size:255"`             // object key of the stored signature image
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (User) TableName() string {
	return "users"
}

func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.Surname)
}
