package spaceapimodels

import (
	"strings"

	"github.com/pkg/errors"
)

type SpaceUserCommonData struct {
	Email       string `json:"email"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	PhoneNumber string `json:"phone_number"`
	IsAdmin     bool   `json:"is_admin"`
	SpaceID     string `json:"space_id"`
	Role        string `json:"role"`
}

type SpaceUser struct {
	SpaceUserCommonData
	ID string `json:"id"`
}

type CreateUser struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	PhoneNumber string `json:"phone_number"`
	IsAdmin     bool   `json:"is_admin"`
	SpaceID     string `json:"-"`
}

func (r CreateUser) Validate() error {
	if strings.TrimSpace(r.Email) == "" {
		return errors.New("не указана почта")
	}
	if r.Password == "" {
		return errors.New("не указан пароль")
	}
	if strings.TrimSpace(r.FirstName) == "" {
		return errors.New("не указано имя")
	}
	return nil
}

type UpdateUser struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	PhoneNumber string `json:"phone_number"`
	IsAdmin     bool   `json:"is_admin"`
}

type CreateOrganization struct {
	OrganizationName string `json:"organization_name"`
	DirectorName     string `json:"director_name"`
	AdminEmail       string `json:"admin_email"`
	AdminPassword    string `json:"admin_password"`
	AdminFirstName   string `json:"admin_first_name"`
	AdminLastName    string `json:"admin_last_name"`
}

func (r CreateOrganization) Validate() error {
	if strings.TrimSpace(r.OrganizationName) == "" {
		return errors.New("не указано название организации")
	}
	if strings.TrimSpace(r.AdminEmail) == "" {
		return errors.New("не указана почта администратора")
	}
	if r.AdminPassword == "" {
		return errors.New("не указан пароль администратора")
	}
	return nil
}
