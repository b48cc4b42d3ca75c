package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Role is a closed enumeration. Tokens carry the role as a string claim,
// so every boundary parses it through ParseRole and fails closed on
// anything unrecognized.
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

func ParseRole(s string) (Role, error) {
	switch strings.ToUpper(s) {
	case string(RoleAdmin):
		return RoleAdmin, nil
	case string(RoleUser):
		return RoleUser, nil
	}
	return "", fmt.Errorf("invalid role %q", s)
}

func (r Role) String() string {
	return string(r)
}

type User struct {
	ID           uuid.UUID `gorm:"primaryKey;type:uuid"`
	Username     string    `gorm:"uniqueIndex;size:20;not null"`
	Email        string    `gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string    `gorm:"not null"`
	Role         Role      `gorm:"type:varchar(10);not null;default:'USER'"`
	CreatedAt    time.Time
}

func (User) TableName() string {
	return "users"
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
