package services

import (
	"errors"
	"reflect"
	"strings"
	_ "time/tzdata"

	"github.com/go-playground/validator/v10"

	"github.com/dmitrijs2005/commpro-auth/internal/common"
	"github.com/dmitrijs2005/commpro-auth/internal/cryptox"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	if err := v.RegisterValidation("bcrypt", func(fl validator.FieldLevel) bool {
		return len(fl.Field().String()) <= cryptox.MaxPasswordBytes
	}); err != nil {
		panic(err)
	}
	return v
}

// Validate checks an input struct against its validate tags and returns a
// *common.ValidationError listing every offending field.
func Validate(in any) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return common.NewValidationError("body", err.Error())
	}

	out := &common.ValidationError{Fields: make(map[string]string, len(fieldErrs))}
	for _, fe := range fieldErrs {
		out.Fields[fe.Field()] = reason(fe)
	}
	return out
}

const tooLongReason = "must be at most 72 bytes"

// hashError reports a password bcrypt refused as a validation failure on
// field.
func hashError(field string, err error) error {
	if errors.Is(err, cryptox.ErrTooLong) {
		return common.NewValidationError(field, tooLongReason)
	}
	return storeError(err)
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "invalid email address"
	case "min":
		return "must be at least " + fe.Param() + " characters"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "len":
		return "must be exactly " + fe.Param() + " characters"
	case "numeric":
		return "must contain digits only"
	case "timezone":
		return "unknown timezone"
	case "bcrypt":
		return tooLongReason
	default:
		return "is invalid"
	}
}

// RegisterInput is the register request.
type RegisterInput struct {
	Email       string  `json:"email" validate:"required,email,max=254"`
	Password    string  `json:"password" validate:"required,min=8,bcrypt"`
	FirstName   *string `json:"firstName,omitempty" validate:"omitnil,min=1,max=100"`
	LastName    *string `json:"lastName,omitempty" validate:"omitnil,min=1,max=100"`
	CompanyName *string `json:"companyName,omitempty" validate:"omitnil,max=200"`
}

// LoginInput is the login request.
type LoginInput struct {
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,bcrypt"`
	DeviceID   string `json:"deviceId,omitempty" validate:"max=200"`
	DeviceName string `json:"deviceName,omitempty" validate:"max=200"`
}

// Verify2FAInput completes a login that answered Requires2FA.
type Verify2FAInput struct {
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,bcrypt"`
	Code       string `json:"code" validate:"required,len=6,numeric"`
	DeviceID   string `json:"deviceId,omitempty" validate:"max=200"`
	DeviceName string `json:"deviceName,omitempty" validate:"max=200"`
}

// RefreshInput carries the presented refresh token.
type RefreshInput struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// ChangePasswordInput is the change-password request.
type ChangePasswordInput struct {
	CurrentPassword string `json:"currentPassword" validate:"required,bcrypt"`
	NewPassword     string `json:"newPassword" validate:"required,min=8,bcrypt"`
}

// UpdateProfileInput is a partial update; nil fields are left unchanged.
type UpdateProfileInput struct {
	FirstName   *string `json:"firstName,omitempty" validate:"omitnil,min=1,max=100"`
	LastName    *string `json:"lastName,omitempty" validate:"omitnil,min=1,max=100"`
	CompanyName *string `json:"companyName,omitempty" validate:"omitnil,max=200"`
	Timezone    *string `json:"timezone,omitempty" validate:"omitnil,timezone"`
}

// ForgotPasswordInput starts a password reset.
type ForgotPasswordInput struct {
	Email string `json:"email" validate:"required,email"`
}

// ResetPasswordInput completes a password reset.
type ResetPasswordInput struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=8,bcrypt"`
}

// TwoFactorCodeInput confirms an enrollment.
type TwoFactorCodeInput struct {
	Code string `json:"code" validate:"required,len=6,numeric"`
}

// DisableTwoFactorInput turns two-factor authentication off.
type DisableTwoFactorInput struct {
	Password string `json:"password" validate:"required,bcrypt"`
	Code     string `json:"code" validate:"required,len=6,numeric"`
}
