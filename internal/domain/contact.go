package domain

import (
	"strings"
	"time"
	"unicode/utf8"
)

// Phone numbers are stored verbatim; only the length is constrained.
const (
	PhoneMinLen = 10
	PhoneMaxLen = 20
)

type Contact struct {
	ID        int64     `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Phone     string    `json:"phone"`
	UserID    int64     `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type CreateContactRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
}

// ContactPatch is a merge-patch: nil fields are left untouched.
type ContactPatch struct {
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
	Phone     *string `json:"phone,omitempty"`
}

func (r *CreateContactRequest) Normalize() {
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.Phone = strings.TrimSpace(r.Phone)
}

func (r *CreateContactRequest) Validate() error {
	if r.FirstName == "" {
		return validationf("firstName is required")
	}
	if r.LastName == "" {
		return validationf("lastName is required")
	}
	if r.Phone == "" {
		return validationf("phone is required")
	}
	return validatePhone(r.Phone)
}

func (p *ContactPatch) Validate() error {
	if p.Phone != nil {
		return validatePhone(*p.Phone)
	}
	return nil
}

// Length is counted in characters, matching the char_length CHECK on the
// contacts table.
func validatePhone(phone string) error {
	if n := utf8.RuneCountInString(phone); n < PhoneMinLen || n > PhoneMaxLen {
		return validationf("phone must be between %d and %d characters", PhoneMinLen, PhoneMaxLen)
	}
	return nil
}
