package authapimodels

import (
	"strings"

	"github.com/pkg/errors"
)

type Login struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r Login) Validate() error {
	if strings.TrimSpace(r.Email) == "" {
		return errors.New("не указана почта")
	}
	if r.Password == "" {
		return errors.New("не указан пароль")
	}
	return nil
}

type Refresh struct {
	RefreshToken string `json:"refresh_token"`
}

func (r Refresh) Validate() error {
	if r.RefreshToken == "" {
		return errors.New("не указан refresh токен")
	}
	return nil
}

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}
