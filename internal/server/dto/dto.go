// Package dto holds the typed request structs accepted by the interactive
// surfaces. Every request is normalized and validated here before it reaches
// a service or store.
package dto

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/dmitrijs2005/scriptoria/internal/common"
)

// Supported output languages.
const (
	LanguageEnglish = "English"
	LanguageHindi   = "Hindi"
	LanguageTelugu  = "Telugu"
)

// Languages lists the selectable languages in display order.
var Languages = []string{LanguageEnglish, LanguageHindi, LanguageTelugu}

// NormalizeEmail trims surrounding space and lowercases the address, which
// makes email uniqueness case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("%w: email is required", common.ErrInvalidInput)
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return fmt.Errorf("%w: email %q is not a valid address", common.ErrInvalidInput, email)
	}
	return nil
}

type SignUpRequest struct {
	UserName        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// Normalize trims the username and normalizes the email. Passwords are used
// exactly as typed.
func (r *SignUpRequest) Normalize() {
	r.UserName = strings.TrimSpace(r.UserName)
	r.Email = NormalizeEmail(r.Email)
}

// Validate checks the request in the order a user would fix it: required
// fields, confirmation, then the password policy.
func (r *SignUpRequest) Validate() error {
	if r.UserName == "" {
		return fmt.Errorf("%w: username is required", common.ErrInvalidInput)
	}
	if err := validateEmail(r.Email); err != nil {
		return err
	}
	if r.Password != r.ConfirmPassword {
		return common.ErrPasswordMismatch
	}
	return ValidatePassword(r.Password)
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Normalize() {
	r.Email = NormalizeEmail(r.Email)
}

type GenerationRequest struct {
	Title    string `json:"title"`
	Idea     string `json:"idea"`
	Language string `json:"language"`
}

// Normalize trims the fields and defaults the language to English.
func (r *GenerationRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Idea = strings.TrimSpace(r.Idea)
	r.Language = strings.TrimSpace(r.Language)
	if r.Language == "" {
		r.Language = LanguageEnglish
	}
}

// Validate requires both a title and an idea and a known language.
func (r *GenerationRequest) Validate() error {
	if r.Title == "" || r.Idea == "" {
		return fmt.Errorf("%w: title and story idea are required", common.ErrInvalidInput)
	}
	for _, l := range Languages {
		if r.Language == l {
			return nil
		}
	}
	return fmt.Errorf("%w: unsupported language %q", common.ErrInvalidInput, r.Language)
}
