package model

import "time"

type Role string

const (
	RolePatient Role = "patient"
	RoleDoctor  Role = "doctor"
	RoleAdmin   Role = "admin"
)

// User covers patients, doctors and admins. Doctor-only fields
// (specialty, bio) stay nil for the other roles.
type User struct {
	ID           int       `db:"id" json:"id"`
	Username     string    `db:"username" json:"username"`
	Password     string    `db:"password" json:"-"`
	FirstName    string    `db:"first_name" json:"firstName"`
	LastName     string    `db:"last_name" json:"lastName"`
	Email        string    `db:"email" json:"email"`
	Phone        *string   `db:"phone" json:"phone,omitempty"`
	DOB          *string   `db:"dob" json:"dob,omitempty"`
	Role         Role      `db:"role" json:"role"`
	Specialty    *string   `db:"specialty" json:"specialty,omitempty"`
	Bio          *string   `db:"bio" json:"bio,omitempty"`
	ProfileImage *string   `db:"profile_image" json:"profileImage,omitempty"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
}

type CreateUserRequest struct {
	Username     string  `json:"username" binding:"required"`
	Password     string  `json:"password" binding:"required,min=8"`
	FirstName    string  `json:"firstName" binding:"required"`
	LastName     string  `json:"lastName" binding:"required"`
	Email        string  `json:"email" binding:"required,email"`
	Phone        *string `json:"phone"`
	DOB          *string `json:"dob"`
	Role         Role    `json:"role" binding:"omitempty,oneof=patient doctor admin"`
	Specialty    *string `json:"specialty"`
	Bio          *string `json:"bio"`
	ProfileImage *string `json:"profileImage"`
}

// UpdateUserRequest carries a partial update; nil fields are left untouched.
type UpdateUserRequest struct {
	FirstName    *string `json:"firstName"`
	LastName     *string `json:"lastName"`
	Email        *string `json:"email" binding:"omitempty,email"`
	Phone        *string `json:"phone"`
	DOB          *string `json:"dob"`
	Specialty    *string `json:"specialty"`
	Bio          *string `json:"bio"`
	ProfileImage *string `json:"profileImage"`
}
