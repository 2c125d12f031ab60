// Package guesttoken issues and checks the signed links that open a booking's guest list without a login.
package guesttoken

import (
	"errors"
	"time"

	"booth-booking/internal/domain/timeslot"
	"booth-booking/internal/pkg/clock"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid guest-list token")
	ErrExpiredToken = errors.New("guest-list token expired")
)

// Service signs tokens over (booking id, expiry) with HMAC-SHA256.
type Service struct {
	secret       []byte
	clock        clock.Clock
	fallbackDays int
}

func NewService(secret string, clk clock.Clock, fallbackDays int) *Service {
	if fallbackDays <= 0 {
		fallbackDays = 7
	}
	return &Service{secret: []byte(secret), clock: clk, fallbackDays: fallbackDays}
}

// Expiry is one day after the booking date, or fallbackDays from now when the date does not parse.
func (s *Service) Expiry(bookingDate string) time.Time {
	d, err := timeslot.ParseDate(bookingDate)
	if err != nil {
		return s.clock.Now().Add(time.Duration(s.fallbackDays) * 24 * time.Hour)
	}
	return d.AddDate(0, 0, 1)
}

func (s *Service) Issue(bookingID uuid.UUID, bookingDate string) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   bookingID.String(),
		IssuedAt:  jwt.NewNumericDate(s.clock.Now()),
		ExpiresAt: jwt.NewNumericDate(s.Expiry(bookingDate)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify returns the booking id the token grants access to.
func (s *Service) Verify(token string) (uuid.UUID, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	},
		jwt.WithTimeFunc(s.clock.Now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return uuid.Nil, ErrExpiredToken
		}
		return uuid.Nil, ErrInvalidToken
	}
	if !parsed.Valid {
		return uuid.Nil, ErrInvalidToken
	}

	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, ErrInvalidToken
	}
	return id, nil
}
