package admin

import (
	"fmt"
	"net/mail"
	"strings"
)

// MinNameLength is the shortest accepted display name.
const MinNameLength = 2

// Record is the untyped admin shape as it arrives from the storage
// boundary, before it is lifted into the Admin aggregate.
type Record struct {
	AuthID      string   `json:"auth_id"`
	Email       string   `json:"email"`
	Name        string   `json:"name"`
	Role        string   `json:"role"`
	Permissions []string `json:"permissions,omitempty"`
	IsActive    bool     `json:"is_active"`
}

// ValidateRecord checks a raw record before it is persisted and returns
// every problem found, so callers can surface them all at once. It never
// returns an error or panics; an empty slice means the record is valid.
func ValidateRecord(rec Record) []string {
	var problems []string

	if strings.TrimSpace(rec.AuthID) == "" {
		problems = append(problems, "auth_id is required")
	}

	if strings.TrimSpace(rec.Email) == "" {
		problems = append(problems, "email is required")
	} else if _, err := mail.ParseAddress(rec.Email); err != nil {
		problems = append(problems, fmt.Sprintf("email %q is malformed", rec.Email))
	}

	if len(strings.TrimSpace(rec.Name)) < MinNameLength {
		problems = append(problems, fmt.Sprintf("name must be at least %d characters", MinNameLength))
	}

	if _, ok := ParseRole(rec.Role); !ok {
		problems = append(problems, fmt.Sprintf("unknown role %q", rec.Role))
	}

	for _, p := range rec.Permissions {
		if !Permission(p).IsValid() {
			problems = append(problems, fmt.Sprintf("unknown permission %q", p))
		}
	}

	return problems
}

// PermissionsFromStrings converts raw tokens into Permissions without
// validating them. Pair with ValidateRecord at the boundary.
func PermissionsFromStrings(raw []string) []Permission {
	if len(raw) == 0 {
		return nil
	}
	perms := make([]Permission, len(raw))
	for i, p := range raw {
		perms[i] = Permission(p)
	}
	return perms
}

// PermissionsToStrings converts Permissions back to raw tokens.
func PermissionsToStrings(perms []Permission) []string {
	if len(perms) == 0 {
		return nil
	}
	raw := make([]string, len(perms))
	for i, p := range perms {
		raw[i] = string(p)
	}
	return raw
}
