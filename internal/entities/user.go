package entities

import "fmt"

type Role string

const (
	RoleWorker   Role = "worker"
	RoleEmployer Role = "employer"
)

func ToRole(s string) (Role, error) {
	switch s {
	case string(RoleWorker):
		return RoleWorker, nil
	case string(RoleEmployer):
		return RoleEmployer, nil
	default:
		return "", fmt.Errorf("invalid role: %v", s)
	}
}

// User mirrors the JSON shape persisted under the fallback_users key and,
// for the signed-in account, under the userData key. Every field is always
// serialized: registration writes explicit zero values for the optional
// profile fields.
type User struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Email            string  `json:"email"`
	Phone            string  `json:"phone"`
	Role             Role    `json:"role"`
	ProfileImage     string  `json:"profileImage"`
	SkillType        string  `json:"skillType"`
	Experience       string  `json:"experience"`
	Location         string  `json:"location"`
	OrganizationName string  `json:"organizationName"`
	WorkType         string  `json:"workType"`
	Rating           float64 `json:"rating"`
	TotalJobs        int     `json:"totalJobs"`
	TotalEarnings    float64 `json:"totalEarnings"`
	MemberSince      string  `json:"memberSince"`
}

// Registration carries the fields a new account is created from. The
// password is required at this boundary but is not stored anywhere: login
// resolves identity by email alone.
type Registration struct {
	Name             string `validate:"required"`
	Email            string `validate:"required,email"`
	Phone            string `validate:"required"`
	Password         string `validate:"required"`
	Role             Role   `validate:"required,oneof=worker employer"`
	ProfileImage     string
	SkillType        string
	Experience       string
	Location         string
	OrganizationName string
	WorkType         string
}

// UserPatch is a typed partial update for a User. Nil fields are left
// untouched by Apply.
type UserPatch struct {
	Name             *string
	Email            *string
	Phone            *string
	Role             *Role
	ProfileImage     *string
	SkillType        *string
	Experience       *string
	Location         *string
	OrganizationName *string
	WorkType         *string
	Rating           *float64
	TotalJobs        *int
	TotalEarnings    *float64
	MemberSince      *string
}

func (p UserPatch) Apply(u *User) {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Phone != nil {
		u.Phone = *p.Phone
	}
	if p.Role != nil {
		u.Role = *p.Role
	}
	if p.ProfileImage != nil {
		u.ProfileImage = *p.ProfileImage
	}
	if p.SkillType != nil {
		u.SkillType = *p.SkillType
	}
	if p.Experience != nil {
		u.Experience = *p.Experience
	}
	if p.Location != nil {
		u.Location = *p.Location
	}
	if p.OrganizationName != nil {
		u.OrganizationName = *p.OrganizationName
	}
	if p.WorkType != nil {
		u.WorkType = *p.WorkType
	}
	if p.Rating != nil {
		u.Rating = *p.Rating
	}
	if p.TotalJobs != nil {
		u.TotalJobs = *p.TotalJobs
	}
	if p.TotalEarnings != nil {
		u.TotalEarnings = *p.TotalEarnings
	}
	if p.MemberSince != nil {
		u.MemberSince = *p.MemberSince
	}
}
