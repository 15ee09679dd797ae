package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Role is the closed set of capabilities a user can hold.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

type User struct {
	gorm.Model
	Name     string         `json:"name"`
	Email    string         `json:"email" gorm:"uniqueIndex"`
	Password string         `json:"-"`
	Role     Role           `json:"role" gorm:"default:customer"`
	Phone    string         `json:"phone,omitempty"`
	Address  datatypes.JSON `json:"address,omitempty"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

type RegisterData struct {
	Name     string         `json:"name" binding:"required"`
	Email    string         `json:"email" binding:"required,email"`
	Password string         `json:"password" binding:"required,min=6"`
	Role     Role           `json:"role" binding:"omitempty,oneof=customer admin"`
	Phone    string         `json:"phone"`
	Address  datatypes.JSON `json:"address"`
}

type LoginData struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
