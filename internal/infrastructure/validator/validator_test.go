package validator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppValidator_Email(t *testing.T) {
	v := NewValidator()
	assert.NoError(t, v.ValidateEmail("a@x.com"))
	assert.Error(t, v.ValidateEmail("not-an-email"))
	assert.Error(t, v.ValidateEmail(""))
}

func TestAppValidator_Password(t *testing.T) {
	v := NewValidator()
	assert.NoError(t, v.ValidatePasswordStrength("secret123"))
	assert.Error(t, v.ValidatePasswordStrength("abc"))
	assert.Error(t, v.ValidatePasswordStrength("12345678"))
	assert.Error(t, v.ValidatePasswordStrength(strings.Repeat("a", 73)))
}

func TestAppValidator_Username(t *testing.T) {
	v := NewValidator()
	assert.NoError(t, v.ValidateUsername("alice"))
	assert.NoError(t, v.ValidateUsername("alice.l_2"))
	assert.Error(t, v.ValidateUsername("al"))
	assert.Error(t, v.ValidateUsername("alice smith"))
}

type genderForm struct {
	Gender string `validate:"omitempty,gender"`
}

func TestGenderRule(t *testing.T) {
	v := NewValidator().(*AppValidator)
	assert.NoError(t, v.validate.Struct(genderForm{Gender: "female"}))
	assert.NoError(t, v.validate.Struct(genderForm{Gender: "Female"}))
	assert.NoError(t, v.validate.Struct(genderForm{Gender: " MALE "}))
	assert.NoError(t, v.validate.Struct(genderForm{}))
	assert.Error(t, v.validate.Struct(genderForm{Gender: "robot"}))
}
