package auth

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type LoginResult struct {
	AccessToken string `json:"accessToken"`
	ExpiresIn   int    `json:"expiresIn"` // seconds
}

// LoginUsecase verifies the single configured admin credential and issues a
// short-lived HS256 token. There is no admin table; the shop has one operator
// and the credential lives in configuration.
type LoginUsecase struct {
	adminMobile  string
	passwordHash string
	jwtSecret    []byte
	expMin       int
}

func NewLoginUsecase(adminMobile, passwordHash, jwtSecret string, expiresMinutes int) *LoginUsecase {
	if expiresMinutes <= 0 {
		expiresMinutes = 60
	}
	return &LoginUsecase{
		adminMobile:  adminMobile,
		passwordHash: passwordHash,
		jwtSecret:    []byte(jwtSecret),
		expMin:       expiresMinutes,
	}
}

func (u *LoginUsecase) Execute(ctx context.Context, mobile, password string) (*LoginResult, error) {
	// An unset hash means login is disabled, not open.
	if u.passwordHash == "" || mobile != u.adminMobile {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.passwordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	now := time.Now()
	exp := now.Add(time.Duration(u.expMin) * time.Minute)

	claims := jwt.MapClaims{
		"sub": mobile,
		"typ": "admin",
		"iat": now.Unix(),
		"exp": exp.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(u.jwtSecret)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		AccessToken: signed,
		ExpiresIn:   u.expMin * 60,
	}, nil
}
