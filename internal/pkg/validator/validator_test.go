package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	t.Parallel()

	assert.True(t, IsValidEmail("jane.doe@example.com"))
	assert.True(t, IsValidEmail("j+filter@sub.example.co"))
	assert.False(t, IsValidEmail("not-an-email"))
	assert.False(t, IsValidEmail("missing@tld"))
	assert.False(t, IsValidEmail(""))
}

func TestIsValidNationalID(t *testing.T) {
	t.Parallel()

	assert.True(t, IsValidNationalID("123456789012"))
	assert.False(t, IsValidNationalID("12345678901"))   // 11 digits
	assert.False(t, IsValidNationalID("1234567890123")) // 13 digits
	assert.False(t, IsValidNationalID("12345678901a"))
}

func TestIsValidRegistrationNumber(t *testing.T) {
	t.Parallel()

	assert.True(t, IsValidRegistrationNumber("000123"))
	assert.False(t, IsValidRegistrationNumber("12345"))
	assert.False(t, IsValidRegistrationNumber("12345a"))
}

func TestIsValidClockTime(t *testing.T) {
	t.Parallel()

	parsed, ok := IsValidClockTime("08:00")
	assert.True(t, ok)
	assert.Equal(t, 8, parsed.Hour())
	assert.Equal(t, 0, parsed.Minute())

	_, ok = IsValidClockTime("24:00")
	assert.False(t, ok)
	_, ok = IsValidClockTime("8am")
	assert.False(t, ok)
}

func TestIsValidDate(t *testing.T) {
	t.Parallel()

	date, ok := IsValidDate("2024-01-15")
	assert.True(t, ok)
	assert.Equal(t, 2024, date.Year())

	_, ok = IsValidDate("15/01/2024")
	assert.False(t, ok)
}

func TestValidationErrors(t *testing.T) {
	t.Parallel()

	errs := ValidationErrors{
		{Field: "email", Message: "invalid email"},
		{Field: "date", Message: "invalid date"},
	}
	assert.Equal(t, "email: invalid email; date: invalid date", errs.Error())
	assert.Equal(t, map[string]string{
		"email": "invalid email",
		"date":  "invalid date",
	}, errs.ToMap())
}
