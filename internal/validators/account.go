package validators

import (
	"context"
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/MKhiriev/harbor-admin/models"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

const (
	FieldUsername   = "username"
	FieldPassphrase = "passphrase"
)

// usernameTag is the validator tag enforcing the username character policy.
const usernameTag = "harbor_username"

// UsernameHint is the advice shown next to the username input.
const UsernameHint = "Avoid special characters (even spaces) in usernames."

var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)

type usernameInput struct {
	Username string `validate:"required,harbor_username,max=64"`
}

type passphraseInput struct {
	Passphrase string `validate:"required"`
}

// AccountValidator checks account forms against the username policy and the
// pass phrase presence rule.
type AccountValidator struct {
	validate *validator.Validate
	trans    ut.Translator
}

// NewAccountValidator builds an [AccountValidator] with English error texts.
func NewAccountValidator() Validator {
	return newAccountValidator()
}

func newAccountValidator() *AccountValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")
	if err := enTranslations.RegisterDefaultTranslations(v, trans); err != nil {
		panic(err)
	}

	if err := v.RegisterValidation(usernameTag, func(fl validator.FieldLevel) bool {
		return IsPlainUsername(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	if err := v.RegisterTranslation(usernameTag, trans,
		func(ut ut.Translator) error {
			return ut.Add(usernameTag, "{0} may only contain letters, digits, '_', '-' and '.'", true)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			t, _ := ut.T(usernameTag, fe.Field())
			return t
		},
	); err != nil {
		panic(err)
	}

	return &AccountValidator{validate: v, trans: trans}
}

// IsPlainUsername reports whether name is non-empty and only made of letters,
// digits, '_', '-' and '.'.
func IsPlainUsername(name string) bool {
	return usernamePattern.MatchString(name)
}

// Validate validates an [models.AccountForm] or a [models.PassphraseChange].
// When fields is empty every applicable field is checked.
func (v *AccountValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.AccountForm:
		return v.validateFields(ctx, value.Username, value.Passphrase, fields...)
	case models.PassphraseChange:
		return v.validateFields(ctx, value.Username, value.Passphrase, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *AccountValidator) validateFields(ctx context.Context, username, passphrase string, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassphrase}
	}

	for _, field := range fields {
		if !slices.Contains([]string{FieldUsername, FieldPassphrase}, field) {
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	if slices.Contains(fields, FieldUsername) {
		if err := v.validate.StructCtx(ctx, usernameInput{Username: username}); err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidUsername, v.errorText(err))
		}
	}

	if slices.Contains(fields, FieldPassphrase) {
		if err := v.validate.StructCtx(ctx, passphraseInput{Passphrase: passphrase}); err != nil {
			return ErrEmptyPassphrase
		}
	}

	return nil
}

func (v *AccountValidator) errorText(err error) string {
	validatorErrs, ok := err.(validator.ValidationErrors)
	if !ok || len(validatorErrs) == 0 {
		return err.Error()
	}

	texts := make([]string, 0, len(validatorErrs))
	for _, e := range validatorErrs {
		texts = append(texts, e.Translate(v.trans))
	}
	return strings.Join(texts, "; ")
}
