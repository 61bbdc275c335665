// Package service issues and checks the tokens behind the admin
// endpoints and subscriber pick access. Admin identity is a single
// shared password; there are no per-admin accounts.
package service

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt"

	"github.com/yardlineiq/picksserver/internal/config"
)

var (
	ErrForbidden     = errors.New("access denied")
	ErrNotAuthorized = errors.New("unauthorized")
)

const (
	audienceAdmin      = "admin"
	audienceSubscriber = "subscriber"
)

type Service struct {
	cfg config.Auth
}

func New(cfg config.Auth) (*Service, error) {
	if cfg.AdminPassword == "" {
		return nil, errors.New("admin password is not configured")
	}
	if cfg.Token == "" {
		// Without a configured signing secret, tokens last until the
		// process restarts.
		secret := make([]byte, 32)
		if _, err := rand.Read(secret); err != nil {
			return nil, err
		}
		cfg.Token = hex.EncodeToString(secret)
	}
	return &Service{cfg: cfg}, nil
}

// SignInAdmin compares the presented password with the shared secret.
func (s *Service) SignInAdmin(password string) error {
	if subtle.ConstantTimeCompare([]byte(password), []byte(s.cfg.AdminPassword)) != 1 {
		return ErrNotAuthorized
	}
	return nil
}

// GenerateAdminCookie mints the cookie set after a successful signin.
func (s *Service) GenerateAdminCookie(host string) (*fiber.Cookie, error) {
	expiresIn, err := time.ParseDuration(s.cfg.Expiration)
	if err != nil {
		return nil, err
	}
	expirationTime := time.Now().Add(expiresIn)
	tokenString, err := s.sign(jwt.StandardClaims{
		ExpiresAt: expirationTime.Unix(),
		IssuedAt:  time.Now().Unix(),
		Subject:   "admin",
		Audience:  audienceAdmin,
	})
	if err != nil {
		return nil, err
	}
	return &fiber.Cookie{
		Name:     "admin_token",
		Value:    tokenString,
		Path:     "/",
		Domain:   host,
		Expires:  expirationTime,
		HTTPOnly: true,
	}, nil
}

// VerifyAdmin checks an admin token from a cookie or bearer header.
func (s *Service) VerifyAdmin(token string) error {
	claims, err := s.parse(token)
	if err != nil {
		return ErrNotAuthorized
	}
	if claims.Audience != audienceAdmin {
		return ErrForbidden
	}
	return nil
}

// GenerateSubscriberToken mints the access token handed out after a
// confirmed payment. Subject carries the normalized email.
func (s *Service) GenerateSubscriberToken(email string, expiresAt time.Time) (string, error) {
	return s.sign(jwt.StandardClaims{
		ExpiresAt: expiresAt.Unix(),
		IssuedAt:  time.Now().Unix(),
		Subject:   email,
		Audience:  audienceSubscriber,
	})
}

// SubscriberEmail extracts the email from a subscriber token.
func (s *Service) SubscriberEmail(token string) (string, error) {
	claims, err := s.parse(token)
	if err != nil {
		return "", ErrNotAuthorized
	}
	if claims.Audience != audienceSubscriber || claims.Subject == "" {
		return "", ErrForbidden
	}
	return claims.Subject, nil
}

func (s *Service) sign(claims jwt.StandardClaims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.cfg.Token))
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return tokenString, nil
}

func (s *Service) parse(tokenString string) (*jwt.StandardClaims, error) {
	if tokenString == "" {
		return nil, ErrNotAuthorized
	}
	token, err := jwt.ParseWithClaims(tokenString, &jwt.StandardClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return []byte(s.cfg.Token), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*jwt.StandardClaims)
	if !ok || !token.Valid {
		return nil, ErrNotAuthorized
	}
	return claims, nil
}
