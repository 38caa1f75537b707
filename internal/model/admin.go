package model

import (
	"github.com/google/uuid"
)

type Administrator struct {
	Base
	Name         string `json:"name" db:"name"`
	Email        string `json:"email" db:"email"`
	PasswordHash string `json:"-" db:"password_hash"`
	CompanyName  string `json:"companyName" db:"company_name"`
	CompanyID    string `json:"companyId" db:"company_id"`
	Role         Role   `json:"role" db:"role"`
}

func (a *Administrator) AccountID() uuid.UUID { return a.ID }
func (a *Administrator) AccountRole() Role    { return RoleAdmin }
func (a *Administrator) AccountEmail() string { return a.Email }
func (a *Administrator) SecretHash() string   { return a.PasswordHash }

func (a *Administrator) Summary() UserSummary {
	return UserSummary{
		ID:          a.ID,
		Email:       a.Email,
		Role:        RoleAdmin,
		Name:        a.Name,
		CompanyName: a.CompanyName,
	}
}

type AdminSignupRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6,max=72"`
	CompanyName string `json:"companyName" binding:"required"`
	CompanyID   string `json:"companyId" binding:"required"`
}

type UpdateAdminRequest struct {
	Name        *string `json:"name"`
	Email       *string `json:"email" binding:"omitempty,email"`
	Password    *string `json:"password" binding:"omitempty,min=6,max=72"`
	CompanyName *string `json:"companyName"`
	CompanyID   *string `json:"companyId"`
}
