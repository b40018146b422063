package reservation

import (
	"crypto/rand"
	"errors"
	"io"
	"net/mail"
	"strings"
)

var (
	ErrInvalidCode          = errors.New("reservation code must be 6 characters A-Z0-9")
	ErrEmptyCustomerName    = errors.New("customer name is required")
	ErrInvalidCustomerEmail = errors.New("customer email is invalid")
)

const (
	CodeLength   = 6
	codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// Code is the customer-facing reservation identifier.
type Code string

func ParseCode(value string) (Code, error) {
	value = strings.ToUpper(strings.TrimSpace(value))
	if len(value) != CodeLength {
		return "", ErrInvalidCode
	}
	for _, r := range value {
		if !strings.ContainsRune(codeAlphabet, r) {
			return "", ErrInvalidCode
		}
	}
	return Code(value), nil
}

func (c Code) String() string { return string(c) }

// GenerateCode draws a code from r, normally crypto/rand.Reader.
func GenerateCode(r io.Reader) (Code, error) {
	if r == nil {
		r = rand.Reader
	}
	buf := make([]byte, CodeLength)
	out := make([]byte, CodeLength)
	for i := 0; i < CodeLength; {
		if _, err := io.ReadFull(r, buf[:1]); err != nil {
			return "", err
		}
		// reject the biased tail of the byte range
		if int(buf[0]) >= 256-(256%len(codeAlphabet)) {
			continue
		}
		out[i] = codeAlphabet[int(buf[0])%len(codeAlphabet)]
		i++
	}
	return Code(out), nil
}

type Customer struct {
	Name       string
	Email      string
	Phone      string
	NationalID string
}

func NewCustomer(name, email, phone, nationalID string) (Customer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Customer{}, ErrEmptyCustomerName
	}
	email = strings.TrimSpace(email)
	if email != "" {
		if _, err := mail.ParseAddress(email); err != nil {
			return Customer{}, ErrInvalidCustomerEmail
		}
	}
	return Customer{
		Name:       name,
		Email:      email,
		Phone:      strings.TrimSpace(phone),
		NationalID: strings.TrimSpace(nationalID),
	}, nil
}

func (c Customer) HasEmail() bool {
	return c.Email != ""
}
