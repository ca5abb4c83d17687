package dto

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/dmitrijs2005/scriptoria/internal/common"
)

// MinPasswordLength is the shortest accepted password, in runes.
const MinPasswordLength = 8

// PasswordSymbols is the fixed set of characters that count as symbols.
const PasswordSymbols = "!@#$%^&*()-_=+[]{};:'\",.<>/?\\|`~"

// Password rule names reported in ErrWeakPassword.
const (
	RuleLength = "at least 8 characters"
	RuleUpper  = "an uppercase letter"
	RuleLower  = "a lowercase letter"
	RuleDigit  = "a digit"
	RuleSymbol = "a symbol"
)

// FailedPasswordRules returns the rules password breaks, in a stable order.
func FailedPasswordRules(password string) []string {
	var upper, lower, digit, symbol bool
	n := 0
	for _, r := range password {
		n++
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case strings.ContainsRune(PasswordSymbols, r):
			symbol = true
		}
	}

	var failed []string
	if n < MinPasswordLength {
		failed = append(failed, RuleLength)
	}
	if !upper {
		failed = append(failed, RuleUpper)
	}
	if !lower {
		failed = append(failed, RuleLower)
	}
	if !digit {
		failed = append(failed, RuleDigit)
	}
	if !symbol {
		failed = append(failed, RuleSymbol)
	}
	return failed
}

// ValidatePassword returns common.ErrWeakPassword naming every missing rule,
// or nil when all five hold.
func ValidatePassword(password string) error {
	failed := FailedPasswordRules(password)
	if len(failed) == 0 {
		return nil
	}
	return fmt.Errorf("%w: needs %s", common.ErrWeakPassword, strings.Join(failed, ", "))
}
