package booking

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	ErrEmptyCustomerName = errors.New("customer name cannot be empty")
	ErrInvalidEmail      = errors.New("invalid email format")
	ErrNegativeMoney     = errors.New("money cannot be negative")
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Money is an amount in minor currency units.
type Money struct {
	cents int64
}

func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativeMoney
	}
	return Money{cents: cents}, nil
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}

type Customer struct {
	name  string
	email string
	phone *string
}

func NewCustomer(name, email string, phone *string) (Customer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Customer{}, ErrEmptyCustomerName
	}
	email = strings.TrimSpace(email)
	if !emailRegex.MatchString(email) {
		return Customer{}, ErrInvalidEmail
	}
	if phone != nil {
		p := strings.TrimSpace(*phone)
		if p == "" {
			phone = nil
		} else {
			phone = &p
		}
	}
	return Customer{name: name, email: email, phone: phone}, nil
}

func (c Customer) Name() string   { return c.name }
func (c Customer) Email() string  { return c.email }
func (c Customer) Phone() *string { return c.phone }
