package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidEmail(t *testing.T) {
	valid := []string{
		"alice@example.com",
		"a.b+c@host",
		"user_name-1@mail.example.org",
	}
	for _, email := range valid {
		assert.True(t, IsValidEmail(email), email)
	}

	invalid := []string{
		"",
		"no-at-sign",
		"two@@example.com",
		"spaces in@example.com",
		"@example.com",
		"alice@",
	}
	for _, email := range invalid {
		assert.False(t, IsValidEmail(email), email)
	}
}

func TestIsValidMobile(t *testing.T) {
	assert.True(t, IsValidMobile("1234567890"))
	assert.True(t, IsValidMobile("+12025550123"))
	assert.True(t, IsValidMobile("123456789012345"))

	assert.False(t, IsValidMobile("123456789"))       // too short
	assert.False(t, IsValidMobile("1234567890123456")) // too long
	assert.False(t, IsValidMobile("12345abc90"))
	assert.False(t, IsValidMobile("12 3456 7890"))
	assert.False(t, IsValidMobile("1234+567890"))
}

func TestIsValidPassword(t *testing.T) {
	assert.True(t, IsValidPassword("Str0ng@Pass"))
	assert.True(t, IsValidPassword("aB3?aB3?"))

	assert.False(t, IsValidPassword("Sh0rt@a"))        // 7 chars
	assert.False(t, IsValidPassword("alllower1@"))     // no uppercase
	assert.False(t, IsValidPassword("ALLUPPER1@"))     // no lowercase
	assert.False(t, IsValidPassword("NoDigits@@"))     // no digit
	assert.False(t, IsValidPassword("NoSymbol12"))     // no special char
	assert.False(t, IsValidPassword("Has Space1@"))    // outside charset
	assert.False(t, IsValidPassword("HasHash#123a"))   // # not allowed
}

func TestParseBirthDate(t *testing.T) {
	parsed, ok := ParseBirthDate(" 1990-05-01 ")
	require.True(t, ok)
	assert.Equal(t, 1990, parsed.Year())
	assert.Equal(t, time.May, parsed.Month())

	_, ok = ParseBirthDate("01/05/1990")
	assert.False(t, ok)
	_, ok = ParseBirthDate("1990-13-01")
	assert.False(t, ok)
	_, ok = ParseBirthDate("")
	assert.False(t, ok)
}

func TestIsOldEnough(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	assert.True(t, IsOldEnough(time.Date(2013, 9, 1, 0, 0, 0, 0, time.UTC), now))
	assert.True(t, IsOldEnough(time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC), now))

	// One day short of the thirteenth birthday
	assert.False(t, IsOldEnough(time.Date(2013, 9, 2, 0, 0, 0, 0, time.UTC), now))
}

func TestValidateStruct(t *testing.T) {
	type form struct {
		Name  string `validate:"required"`
		Email string `validate:"required"`
	}

	assert.Nil(t, ValidateStruct(&form{Name: "a", Email: "b"}))

	errs := ValidateStruct(&form{Name: "a"})
	require.Len(t, errs, 1)
	assert.Equal(t, "This field is required", errs["Email"])
}
