package domain

import (
	"regexp"
	"strings"
	"time"
)

type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

func (r *RegisterRequest) Validate() error {
	if r.Email == "" {
		return validationf("email is required")
	}
	if !emailRegex.MatchString(r.Email) {
		return validationf("invalid email format")
	}
	if r.Password == "" {
		return validationf("password is required")
	}
	if len(r.Password) < 8 {
		return validationf("password must be at least 8 characters")
	}
	return nil
}

func (r *LoginRequest) Validate() error {
	if r.Email == "" {
		return validationf("email is required")
	}
	if r.Password == "" {
		return validationf("password is required")
	}
	return nil
}

// Emails are stored case-sensitively, so normalization only strips
// surrounding whitespace.
func (r *RegisterRequest) Normalize() {
	r.Email = strings.TrimSpace(r.Email)
}

func (r *LoginRequest) Normalize() {
	r.Email = strings.TrimSpace(r.Email)
}
