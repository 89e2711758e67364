package domain

import (
	"errors"
	"strings"
	"testing"
)

func TestCreateContactRequestValidate(t *testing.T) {
	valid := CreateContactRequest{
		FirstName: "Jean",
		LastName:  "Dupont",
		Phone:     "0612345678",
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}

	tests := []struct {
		name string
		req  CreateContactRequest
	}{
		{"missing first name", CreateContactRequest{LastName: "Dupont", Phone: "0612345678"}},
		{"missing last name", CreateContactRequest{FirstName: "Jean", Phone: "0612345678"}},
		{"missing phone", CreateContactRequest{FirstName: "Jean", LastName: "Dupont"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Errorf("error is %T, want *ValidationError", err)
			}
		})
	}
}

func TestPhoneLengthBounds(t *testing.T) {
	tests := []struct {
		length int
		ok     bool
	}{
		{9, false},
		{10, true},
		{20, true},
		{21, false},
	}
	for _, tt := range tests {
		req := CreateContactRequest{
			FirstName: "Jean",
			LastName:  "Dupont",
			Phone:     strings.Repeat("0", tt.length),
		}
		err := req.Validate()
		if tt.ok && err != nil {
			t.Errorf("phone length %d: unexpected error %v", tt.length, err)
		}
		if !tt.ok && err == nil {
			t.Errorf("phone length %d: expected error", tt.length)
		}
	}
}

// The schema constrains phone with char_length, so validation must count
// characters, not bytes.
func TestPhoneLengthCountsCharacters(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		ok    bool
	}{
		{"9 two-byte runes", strings.Repeat("£", 9), false},
		{"10 two-byte runes", strings.Repeat("£", 10), true},
		{"20 two-byte runes", strings.Repeat("£", 20), true},
		{"21 two-byte runes", strings.Repeat("£", 21), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := CreateContactRequest{
				FirstName: "Jean",
				LastName:  "Dupont",
				Phone:     tt.phone,
			}
			err := req.Validate()
			if tt.ok && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !tt.ok && err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestContactPatchValidate(t *testing.T) {
	name := "Pierre"
	if err := (&ContactPatch{FirstName: &name}).Validate(); err != nil {
		t.Errorf("patch without phone rejected: %v", err)
	}

	short := "123"
	if err := (&ContactPatch{Phone: &short}).Validate(); err == nil {
		t.Error("expected error for short phone in patch")
	}

	okPhone := "0612345678"
	if err := (&ContactPatch{Phone: &okPhone}).Validate(); err != nil {
		t.Errorf("valid phone in patch rejected: %v", err)
	}

	// Empty patch touches nothing and is valid
	if err := (&ContactPatch{}).Validate(); err != nil {
		t.Errorf("empty patch rejected: %v", err)
	}
}
