package model

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// SubRole distinguishes clinic staff members.
type SubRole string

const (
	SubRoleDoctor       SubRole = "doctor"
	SubRoleNurse        SubRole = "nurse"
	SubRoleReceptionist SubRole = "receptionist"
)

var (
	ErrNMRNumberRequired    = errors.New("NMR Number is required for doctors")
	ErrNUIDRequired         = errors.New("NUID is required for nurses")
	ErrEmployeeCodeRequired = errors.New("Employee Code is required for receptionists")
	ErrUnknownSubRole       = errors.New("User type must be doctor, nurse or receptionist")
)

// License is the sub-role specific credential of a staff member. Exactly one
// variant exists per staff record.
type License interface {
	SubRole() SubRole
	Identifier() string
	isLicense()
}

type DoctorLicense struct {
	NMRNumber string
}

type NurseLicense struct {
	NUID string
}

type ReceptionistLicense struct {
	EmployeeCode string
}

func (DoctorLicense) SubRole() SubRole           { return SubRoleDoctor }
func (l DoctorLicense) Identifier() string       { return l.NMRNumber }
func (DoctorLicense) isLicense()                 {}
func (NurseLicense) SubRole() SubRole            { return SubRoleNurse }
func (l NurseLicense) Identifier() string        { return l.NUID }
func (NurseLicense) isLicense()                  {}
func (ReceptionistLicense) SubRole() SubRole     { return SubRoleReceptionist }
func (l ReceptionistLicense) Identifier() string { return l.EmployeeCode }
func (ReceptionistLicense) isLicense()           {}

// NewLicense builds the variant for subRole from whichever identifier belongs
// to it; the others are ignored.
func NewLicense(subRole SubRole, nmrNumber, nuid, employeeCode string) (License, error) {
	switch SubRole(strings.ToLower(string(subRole))) {
	case SubRoleDoctor:
		if strings.TrimSpace(nmrNumber) == "" {
			return nil, ErrNMRNumberRequired
		}
		return DoctorLicense{NMRNumber: strings.TrimSpace(nmrNumber)}, nil
	case SubRoleNurse:
		if strings.TrimSpace(nuid) == "" {
			return nil, ErrNUIDRequired
		}
		return NurseLicense{NUID: strings.TrimSpace(nuid)}, nil
	case SubRoleReceptionist:
		if strings.TrimSpace(employeeCode) == "" {
			return nil, ErrEmployeeCodeRequired
		}
		return ReceptionistLicense{EmployeeCode: strings.TrimSpace(employeeCode)}, nil
	default:
		return nil, ErrUnknownSubRole
	}
}

// LicenseFields flattens a license into its storage/wire columns.
func LicenseFields(l License) (nmrNumber, nuid, employeeCode string) {
	switch v := l.(type) {
	case DoctorLicense:
		nmrNumber = v.NMRNumber
	case NurseLicense:
		nuid = v.NUID
	case ReceptionistLicense:
		employeeCode = v.EmployeeCode
	}
	return
}

// ClinicStaff is a doctor, nurse or receptionist account.
type ClinicStaff struct {
	Base
	ClinicName               string
	UserName                 string
	ContactName              string
	Email                    string
	PasswordHash             string
	ClinicRegistrationNumber string
	License                  License
}

func (s *ClinicStaff) AccountID() uuid.UUID { return s.ID }
func (s *ClinicStaff) AccountRole() Role    { return RoleClinic }
func (s *ClinicStaff) AccountEmail() string { return s.Email }
func (s *ClinicStaff) SecretHash() string   { return s.PasswordHash }

func (s *ClinicStaff) SubRole() SubRole {
	if s.License == nil {
		return ""
	}
	return s.License.SubRole()
}

func (s *ClinicStaff) Summary() UserSummary {
	return UserSummary{
		ID:         s.ID,
		Email:      s.Email,
		Role:       RoleClinic,
		ClinicName: s.ClinicName,
		UserName:   s.UserName,
		UserType:   s.SubRole(),
	}
}

type staffJSON struct {
	ID                       uuid.UUID `json:"id"`
	ClinicName               string    `json:"clinicName"`
	UserName                 string    `json:"userName"`
	ContactName              string    `json:"contactName"`
	Email                    string    `json:"email"`
	ClinicRegistrationNumber string    `json:"clinicRegistrationNumber"`
	UserType                 SubRole   `json:"userType"`
	NMRNumber                string    `json:"nmrNumber,omitempty"`
	NUID                     string    `json:"nuid,omitempty"`
	EmployeeCode             string    `json:"employeeCode,omitempty"`
	Role                     Role      `json:"role"`
	CreatedAt                time.Time `json:"createdAt"`
	UpdatedAt                time.Time `json:"updatedAt"`
}

func (s ClinicStaff) MarshalJSON() ([]byte, error) {
	nmr, nuid, code := LicenseFields(s.License)
	return json.Marshal(staffJSON{
		ID:                       s.ID,
		ClinicName:               s.ClinicName,
		UserName:                 s.UserName,
		ContactName:              s.ContactName,
		Email:                    s.Email,
		ClinicRegistrationNumber: s.ClinicRegistrationNumber,
		UserType:                 s.SubRole(),
		NMRNumber:                nmr,
		NUID:                     nuid,
		EmployeeCode:             code,
		Role:                     RoleClinic,
		CreatedAt:                s.CreatedAt,
		UpdatedAt:                s.UpdatedAt,
	})
}

type ClinicSignupRequest struct {
	ClinicName               string  `json:"clinicName" binding:"required"`
	UserName                 string  `json:"userName" binding:"required"`
	ContactName              string  `json:"contactName" binding:"required"`
	Email                    string  `json:"email" binding:"required,email"`
	Password                 string  `json:"password" binding:"required,min=6,max=72"`
	ClinicRegistrationNumber string  `json:"clinicRegistrationNumber" binding:"required"`
	UserType                 SubRole `json:"userType" binding:"required"`
	NMRNumber                string  `json:"nmrNumber"`
	NUID                     string  `json:"nuid"`
	EmployeeCode             string  `json:"employeeCode"`
}

func (r *ClinicSignupRequest) License() (License, error) {
	return NewLicense(r.UserType, r.NMRNumber, r.NUID, r.EmployeeCode)
}

type UpdateStaffRequest struct {
	ClinicName               *string  `json:"clinicName"`
	UserName                 *string  `json:"userName"`
	ContactName              *string  `json:"contactName"`
	Email                    *string  `json:"email" binding:"omitempty,email"`
	Password                 *string  `json:"password" binding:"omitempty,min=6,max=72"`
	ClinicRegistrationNumber *string  `json:"clinicRegistrationNumber"`
	UserType                 *SubRole `json:"userType"`
	NMRNumber                *string  `json:"nmrNumber"`
	NUID                     *string  `json:"nuid"`
	EmployeeCode             *string  `json:"employeeCode"`
}

// ApplyLicense merges the license fields of the update into current. A
// sub-role change without the new variant's identifier fails.
func (r *UpdateStaffRequest) ApplyLicense(current License) (License, error) {
	if r.UserType == nil && r.NMRNumber == nil && r.NUID == nil && r.EmployeeCode == nil {
		return current, nil
	}

	subRole := SubRole("")
	if current != nil {
		subRole = current.SubRole()
	}
	if r.UserType != nil {
		subRole = *r.UserType
	}

	nmr, nuid, code := LicenseFields(current)
	if r.NMRNumber != nil {
		nmr = *r.NMRNumber
	}
	if r.NUID != nil {
		nuid = *r.NUID
	}
	if r.EmployeeCode != nil {
		code = *r.EmployeeCode
	}
	return NewLicense(subRole, nmr, nuid, code)
}
