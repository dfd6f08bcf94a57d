package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/harbor-admin/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsPlainUsername(t *testing.T) {
	for _, name := range []string{"alice", "dj_bob", "radio-1", "a.b"} {
		assert.True(t, IsPlainUsername(name), name)
	}
	for _, name := range []string{"", "dj bob", "é", "bob@home", "a/b", "x;y"} {
		assert.False(t, IsPlainUsername(name), name)
	}
}

func TestAccountValidator_AccountForm(t *testing.T) {
	v := NewAccountValidator()
	ctx := context.Background()

	require.NoError(t, v.Validate(ctx, models.AccountForm{Username: "alice", Passphrase: "x"}))

	err := v.Validate(ctx, models.AccountForm{Username: "dj bob", Passphrase: "x"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidUsername)
	assert.Contains(t, err.Error(), "may only contain letters")

	err = v.Validate(ctx, models.AccountForm{Username: "", Passphrase: "x"})
	assert.ErrorIs(t, err, ErrInvalidUsername)

	err = v.Validate(ctx, models.AccountForm{Username: "alice"})
	assert.ErrorIs(t, err, ErrEmptyPassphrase)
}

func TestAccountValidator_FieldScoping(t *testing.T) {
	v := NewAccountValidator()
	ctx := context.Background()

	form := models.AccountForm{Username: "dj bob", Passphrase: "x"}
	assert.NoError(t, v.Validate(ctx, form, FieldPassphrase))
	assert.ErrorIs(t, v.Validate(ctx, form, FieldUsername), ErrInvalidUsername)
}

func TestAccountValidator_UnknownField(t *testing.T) {
	v := NewAccountValidator()

	err := v.Validate(context.Background(), models.AccountForm{}, "nickname")
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestAccountValidator_PassphraseChange(t *testing.T) {
	v := NewAccountValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.PassphraseChange{Username: "alice", Passphrase: "n"}))
	assert.ErrorIs(t, v.Validate(ctx, models.PassphraseChange{Username: "alice"}, FieldPassphrase), ErrEmptyPassphrase)
	assert.NoError(t, v.Validate(ctx, models.PassphraseChange{Username: "dj bob", Passphrase: "n"}, FieldPassphrase))
}

func TestAccountValidator_UnsupportedType(t *testing.T) {
	v := NewAccountValidator()
	assert.ErrorIs(t, v.Validate(context.Background(), 42), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(context.Background(), "alice"), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(context.Background(), &models.AccountForm{Username: "alice"}), ErrUnsupportedType)
}
