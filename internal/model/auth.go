package model

import (
	"github.com/google/uuid"
)

// Role selects the account variant.
type Role string

const (
	RolePatient Role = "patient"
	RoleClinic  Role = "clinic"
	RoleAdmin   Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RolePatient, RoleClinic, RoleAdmin:
		return true
	}
	return false
}

// Identity is the authenticated caller attached to a request.
type Identity struct {
	ID   uuid.UUID
	Role Role
}

// ActorID returns the caller id, or an invalid NullUUID for anonymous calls.
func (i *Identity) ActorID() uuid.NullUUID {
	if i == nil {
		return uuid.NullUUID{}
	}
	return uuid.NullUUID{UUID: i.ID, Valid: true}
}

func (i *Identity) IsAdmin() bool {
	return i != nil && i.Role == RoleAdmin
}

// LoginRequest is checked by the auth service so that missing fields get the
// login specific message.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
}

// UserSummary is the public account projection returned on signup and login.
type UserSummary struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	Role        Role      `json:"role"`
	Name        string    `json:"name,omitempty"`
	ClinicName  string    `json:"clinicName,omitempty"`
	UserName    string    `json:"userName,omitempty"`
	UserType    SubRole   `json:"userType,omitempty"`
	CompanyName string    `json:"companyName,omitempty"`
}

type AuthResult struct {
	Token string      `json:"token"`
	User  UserSummary `json:"user"`
}

// Account is implemented by the three account variants.
type Account interface {
	AccountID() uuid.UUID
	AccountRole() Role
	AccountEmail() string
	SecretHash() string
	Summary() UserSummary
}
