package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleForm struct {
	Name     string `json:"name" validate:"required,min=20,max=60"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=16,userpassword"`
}

func TestValidateStructOK(t *testing.T) {
	errs := ValidateStruct(&sampleForm{
		Name:     "Johnathan Maxwell Heritage",
		Email:    "john@example.com",
		Password: "Passw0rd!",
	})
	assert.Empty(t, errs)
}

func TestValidateStructReportsJSONFieldNames(t *testing.T) {
	errs := ValidateStruct(&sampleForm{
		Name:     "Short",
		Email:    "not-an-email",
		Password: "weak",
	})
	require.NotEmpty(t, errs)

	fields := make(map[string]string)
	for _, e := range errs {
		fields[e.Field] = e.Message
	}

	// Errors name the JSON field, not the Go struct field
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "password")
	assert.NotContains(t, fields, "Name")

	assert.Equal(t, "Minimum length is 20", fields["name"])
	assert.Equal(t, "Please provide a valid email address", fields["email"])
}

func TestUserPasswordRule(t *testing.T) {
	tests := []struct {
		name     string
		password string
		valid    bool
	}{
		{name: "uppercase and special", password: "Passw0rd!", valid: true},
		{name: "no uppercase", password: "passw0rd!", valid: false},
		{name: "no special", password: "Passw0rd1", valid: false},
		{name: "special from wider set", password: `Passw0rd"`, valid: true},
	}

	type form struct {
		Password string `json:"password" validate:"userpassword"`
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateStruct(&form{Password: tt.password})
			if tt.valid {
				assert.Empty(t, errs)
			} else {
				require.Len(t, errs, 1)
				assert.Equal(t, "password", errs[0].Field)
			}
		})
	}
}

func TestFormatValidationErrors(t *testing.T) {
	out := FormatValidationErrors([]FieldError{
		{Field: "name", Message: "Minimum length is 20"},
		{Field: "email", Message: "Please provide a valid email address"},
	})
	assert.Equal(t, "name: Minimum length is 20; email: Please provide a valid email address", out)
}
