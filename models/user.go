package models

import (
	"laundrypro-backend/utils"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Email    string    `gorm:"uniqueIndex;not null" json:"email"`
	Password string    `gorm:"not null" json:"-"`
	FullName string    `gorm:"not null" json:"fullName"`
	Phone    string    `json:"phone"`

	Role string `gorm:"type:varchar(10);not null" json:"role"` // admin | staff

	// Staff are scoped to exactly one outlet; admins are unscoped (nil).
	OutletID *uuid.UUID `gorm:"type:uuid;index" json:"outletId"`

	LastLogin *time.Time `json:"lastLogin"`
	IsActive  bool       `gorm:"default:true" json:"isActive"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Initialize UUID and hash the password before creating
func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	u.ID = uuid.New()
	hashed, err := utils.HashPassword(u.Password)
	if err != nil {
		return err
	}
	u.Password = hashed
	return
}

func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleStaff
}
