package validator

import (
	"fmt"
	"regexp"
	"unicode"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/pregen/shop-api/internal/domain/entity"
	usecasecontract "github.com/pregen/shop-api/internal/usecase/contract"
)

const (
	minPasswordLength = 6
	maxPasswordLength = 72 // bcrypt ignores anything past 72 bytes
)

var usernamePattern = regexp.MustCompile(`^[a-z0-9._-]{3,32}$`)

// AppValidator implements the usecase.Validator interface.
type AppValidator struct {
	validate *validator.Validate
}

// NewValidator creates a new validator that implements the usecase.Validator interface.
func NewValidator() usecasecontract.IValidator {
	v := validator.New()
	registerAll(v)
	return &AppValidator{validate: v}
}

// ValidateEmail checks if the email format is valid.
func (av *AppValidator) ValidateEmail(email string) error {
	return av.validate.Var(email, "required,email")
}

// ValidatePasswordStrength checks if the password meets the strength requirements.
func (av *AppValidator) ValidatePasswordStrength(password string) error {
	if len(password) < minPasswordLength {
		return fmt.Errorf("password must be at least %d characters long", minPasswordLength)
	}
	if len(password) > maxPasswordLength {
		return fmt.Errorf("password must be at most %d bytes long", maxPasswordLength)
	}
	if !containsLetter(password) {
		return fmt.Errorf("password must contain at least one letter")
	}
	return nil
}

// ValidateUsername expects an already normalized username.
func (av *AppValidator) ValidateUsername(username string) error {
	return av.validate.Var(username, "required,username")
}

// RegisterCustomValidators registers custom validation functions with the Gin validator.
func RegisterCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		registerAll(v)
	}
}

func registerAll(v *validator.Validate) {
	_ = v.RegisterValidation("gender", genderFL)
	_ = v.RegisterValidation("username", usernameFL)
}

// genderFL accepts male, female or other in any case.
func genderFL(fl validator.FieldLevel) bool {
	return entity.NormalizeGender(fl.Field().String()).Valid()
}

func usernameFL(fl validator.FieldLevel) bool {
	return usernamePattern.MatchString(fl.Field().String())
}

func containsLetter(s string) bool {
	for _, char := range s {
		if unicode.IsLetter(char) {
			return true
		}
	}
	return false
}
