package booking

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrEmptyName       = errors.New("name cannot be empty")
	ErrNameTooLong     = errors.New("name is too long")
	ErrInvalidEmail    = errors.New("invalid email address")
	ErrInvalidQuantity = errors.New("quantity must be a positive integer")
)

const MaxNameLength = 120

// Mirrors the client-side check: something@something.tld, no whitespace.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type GuestName struct {
	value string
}

func NewGuestName(value string) (GuestName, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return GuestName{}, ErrEmptyName
	}
	if len(trimmed) > MaxNameLength {
		return GuestName{}, ErrNameTooLong
	}
	return GuestName{value: trimmed}, nil
}

func (n GuestName) String() string {
	return n.value
}

type Email struct {
	value string
}

func NewEmail(value string) (Email, error) {
	trimmed := strings.TrimSpace(value)
	if !emailPattern.MatchString(trimmed) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: trimmed}, nil
}

func (e Email) String() string {
	return e.value
}

type Quantity struct {
	value int
}

func NewQuantity(value int) (Quantity, error) {
	if value <= 0 {
		return Quantity{}, ErrInvalidQuantity
	}
	return Quantity{value: value}, nil
}

func (q Quantity) Value() int {
	return q.value
}
