package validator

import (
	"net/mail"
	"net/url"
	"strings"
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationResult struct {
	Errors []FieldError `json:"errors"`
}

func New() *ValidationResult {
	return &ValidationResult{Errors: []FieldError{}}
}

func (v *ValidationResult) HasError() bool {
	return len(v.Errors) > 0
}

func (v *ValidationResult) Add(field, message string) {
	v.Errors = append(v.Errors, FieldError{Field: field, Message: message})
}

func (v *ValidationResult) Required(field, value string) {
	if strings.TrimSpace(value) == "" {
		v.Add(field, field+" is required")
	}
}

func (v *ValidationResult) Email(field, value string) {
	if strings.TrimSpace(value) == "" {
		v.Add(field, field+" is required")
		return
	}
	if !IsEmail(value) {
		v.Add(field, field+" is not a valid email")
	}
}

func IsEmail(value string) bool {
	_, err := mail.ParseAddress(value)
	return err == nil
}

func (v *ValidationResult) MinLength(field, value string, n int) {
	if len([]rune(value)) < n {
		v.Add(field, field+" is too short")
	}
}

func (v *ValidationResult) OneOf(field, value string, allowed ...string) {
	for _, a := range allowed {
		if value == a {
			return
		}
	}
	v.Add(field, field+" must be one of "+strings.Join(allowed, ", "))
}

// URL accepts absolute http and https addresses only.
func (v *ValidationResult) URL(field, value, message string) {
	u, err := url.ParseRequestURI(strings.TrimSpace(value))
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		v.Add(field, message)
	}
}
