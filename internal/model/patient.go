package model

import (
	"github.com/google/uuid"
)

type Patient struct {
	Base
	Name         string `json:"name" db:"name"`
	Email        string `json:"email" db:"email"`
	PasswordHash string `json:"-" db:"password_hash"`
	PhoneNumber  string `json:"phoneNumber" db:"phone_number"`
	Area         string `json:"area" db:"area"`
	Role         Role   `json:"role" db:"role"`
}

func (p *Patient) AccountID() uuid.UUID { return p.ID }
func (p *Patient) AccountRole() Role    { return RolePatient }
func (p *Patient) AccountEmail() string { return p.Email }
func (p *Patient) SecretHash() string   { return p.PasswordHash }

func (p *Patient) Summary() UserSummary {
	return UserSummary{
		ID:    p.ID,
		Email: p.Email,
		Role:  RolePatient,
		Name:  p.Name,
	}
}

type PatientSignupRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6,max=72"`
	PhoneNumber string `json:"phoneNumber" binding:"required"`
	Area        string `json:"area" binding:"required"`
}

type UpdatePatientRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1"`
	Email       *string `json:"email" binding:"omitempty,email"`
	Password    *string `json:"password" binding:"omitempty,min=6,max=72"`
	PhoneNumber *string `json:"phoneNumber"`
	Area        *string `json:"area"`
}
