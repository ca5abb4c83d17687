package dto

import (
	"testing"

	"github.com/dmitrijs2005/scriptoria/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePassword_Scenarios(t *testing.T) {
	err := ValidatePassword("abc")
	require.ErrorIs(t, err, common.ErrWeakPassword)
	assert.Equal(t, []string{RuleLength, RuleUpper, RuleDigit, RuleSymbol}, FailedPasswordRules("abc"))

	err = ValidatePassword("Abcdefg1")
	require.ErrorIs(t, err, common.ErrWeakPassword)
	assert.Equal(t, []string{RuleSymbol}, FailedPasswordRules("Abcdefg1"))
	assert.Contains(t, err.Error(), RuleSymbol)

	require.NoError(t, ValidatePassword("Abcdefg1!"))
}

func TestValidatePassword_EachRule(t *testing.T) {
	tests := []struct {
		name     string
		password string
		rule     string
	}{
		{"too short", "Ab1!xyz", RuleLength},
		{"no upper", "abcdefg1!", RuleUpper},
		{"no lower", "ABCDEFG1!", RuleLower},
		{"no digit", "Abcdefgh!", RuleDigit},
		{"no symbol", "Abcdefgh1", RuleSymbol},
		{"symbol outside set", "Abcdefg1§", RuleSymbol},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, []string{tt.rule}, FailedPasswordRules(tt.password))
			require.ErrorIs(t, ValidatePassword(tt.password), common.ErrWeakPassword)
		})
	}
}

func TestValidatePassword_AllSymbolsAccepted(t *testing.T) {
	for _, s := range PasswordSymbols {
		require.NoError(t, ValidatePassword("Abcdefg1"+string(s)), "symbol %q", s)
	}
}

func TestValidatePassword_LengthCountsRunes(t *testing.T) {
	// seven runes, more than eight bytes
	assert.Contains(t, FailedPasswordRules("Äbcdé1!"), RuleLength)
	require.NoError(t, ValidatePassword("Äbcdéf1!"))
}
