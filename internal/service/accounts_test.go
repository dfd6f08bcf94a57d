package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/harbor-admin/internal/adapter"
	"github.com/MKhiriev/harbor-admin/internal/config"
	"github.com/MKhiriev/harbor-admin/internal/logger"
	"github.com/MKhiriev/harbor-admin/internal/mock"
	"github.com/MKhiriev/harbor-admin/internal/validators"
	"github.com/MKhiriev/harbor-admin/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestAccountSvc(t *testing.T, ctrl *gomock.Controller, strict bool) (AccountService, *mock.MockAccountsAdapter) {
	t.Helper()
	mockAdapter := mock.NewMockAccountsAdapter(ctrl)
	return NewAccountService(mockAdapter, validators.NewAccountValidator(), strict, logger.Nop()), mockAdapter
}

// ── List ─────────────────────────────────────────────────────────────────────

func TestAccountService_List_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter := newTestAccountSvc(t, ctrl, false)
	ctx := context.Background()

	created := models.NewTimestamp(time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC))
	want := []models.Account{{Username: "alice", CreatedAt: created, ModifiedAt: created}}

	mockAdapter.EXPECT().ListAccounts(ctx).Return(want, nil)

	got, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestAccountService_List_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter := newTestAccountSvc(t, ctrl, false)
	ctx := context.Background()

	serverErr := &adapter.ServerError{StatusCode: 500, Message: "boom"}
	mockAdapter.EXPECT().ListAccounts(ctx).Return(nil, serverErr)

	got, err := svc.List(ctx)
	assert.Nil(t, got)
	require.Error(t, err)

	var target *adapter.ServerError
	assert.True(t, errors.As(err, &target))
}

// ── Create ───────────────────────────────────────────────────────────────────

func TestAccountService_Create_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter := newTestAccountSvc(t, ctrl, false)
	ctx := context.Background()

	mockAdapter.EXPECT().
		CreateAccount(ctx, models.CreateAccountRequest{Username: "bob", Password: "x"}).
		Return(nil)

	err := svc.Create(ctx, models.AccountForm{Username: "bob", Passphrase: "x", PassphraseConfirmation: "x"})
	require.NoError(t, err)
}

func TestAccountService_Create_MismatchSendsNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter := newTestAccountSvc(t, ctrl, false)

	mockAdapter.EXPECT().CreateAccount(gomock.Any(), gomock.Any()).Times(0)

	err := svc.Create(context.Background(), models.AccountForm{Username: "bob", Passphrase: "x", PassphraseConfirmation: "y"})
	assert.ErrorIs(t, err, ErrPassphraseMismatch)
}

func TestAccountService_Create_AdvisoryUsernamePolicy(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter := newTestAccountSvc(t, ctrl, false)
	ctx := context.Background()

	mockAdapter.EXPECT().
		CreateAccount(ctx, models.CreateAccountRequest{Username: "dj bob", Password: "x"}).
		Return(nil)

	err := svc.Create(ctx, models.AccountForm{Username: "dj bob", Passphrase: "x", PassphraseConfirmation: "x"})
	require.NoError(t, err)
}

func TestAccountService_Create_StrictUsernamePolicy(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter := newTestAccountSvc(t, ctrl, true)

	mockAdapter.EXPECT().CreateAccount(gomock.Any(), gomock.Any()).Times(0)

	err := svc.Create(context.Background(), models.AccountForm{Username: "dj bob", Passphrase: "x", PassphraseConfirmation: "x"})
	assert.ErrorIs(t, err, ErrInvalidUsername)
}

func TestAccountService_Create_EmptyPassphrasesAccepted(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter := newTestAccountSvc(t, ctrl, false)
	ctx := context.Background()

	mockAdapter.EXPECT().
		CreateAccount(ctx, models.CreateAccountRequest{Username: "carol"}).
		Return(nil)

	require.NoError(t, svc.Create(ctx, models.AccountForm{Username: "carol"}))
}

func TestAccountService_Create_ServerError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter := newTestAccountSvc(t, ctrl, false)
	ctx := context.Background()

	mockAdapter.EXPECT().
		CreateAccount(ctx, gomock.Any()).
		Return(&adapter.ServerError{StatusCode: 409, Message: "User bob already exists"})

	err := svc.Create(ctx, models.AccountForm{Username: "bob", Passphrase: "x", PassphraseConfirmation: "x"})
	require.Error(t, err)

	notice, ok := Feedback(err)
	require.True(t, ok)
	assert.Equal(t, models.ErrorNotice("User bob already exists"), notice)
}

// ── ChangePassphrase ─────────────────────────────────────────────────────────

func TestAccountService_ChangePassphrase(t *testing.T) {
	tests := []struct {
		name      string
		change    models.PassphraseChange
		expectReq bool
		adapterEr error
		wantErr   error
	}{
		{
			name:      "success",
			change:    models.PassphraseChange{Username: "alice", Passphrase: "new", Confirmation: "new"},
			expectReq: true,
		},
		{
			name:    "empty passphrase aborts",
			change:  models.PassphraseChange{Username: "alice", Confirmation: "new"},
			wantErr: ErrPassphraseChangeAborted,
		},
		{
			name:    "empty confirmation aborts",
			change:  models.PassphraseChange{Username: "alice", Passphrase: "new"},
			wantErr: ErrPassphraseChangeAborted,
		},
		{
			name:      "username outside the plain set is not checked",
			change:    models.PassphraseChange{Username: "dj bob", Passphrase: "new", Confirmation: "new"},
			expectReq: true,
		},
		{
			name:    "mismatch",
			change:  models.PassphraseChange{Username: "alice", Passphrase: "a", Confirmation: "b"},
			wantErr: ErrPassphraseMismatch,
		},
		{
			name:      "backend failure",
			change:    models.PassphraseChange{Username: "ghost", Passphrase: "new", Confirmation: "new"},
			expectReq: true,
			adapterEr: adapter.ErrNotFound,
			wantErr:   adapter.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, mockAdapter := newTestAccountSvc(t, ctrl, false)
			ctx := context.Background()

			if tt.expectReq {
				mockAdapter.EXPECT().
					ChangePassword(ctx, tt.change.Username, models.ChangePasswordRequest{Password: tt.change.Passphrase}).
					Return(tt.adapterEr)
			} else {
				mockAdapter.EXPECT().ChangePassword(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			}

			err := svc.ChangePassphrase(ctx, tt.change)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ── Delete ───────────────────────────────────────────────────────────────────

func TestAccountService_Delete_Confirmed(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter := newTestAccountSvc(t, ctrl, false)
	ctx := context.Background()

	mockAdapter.EXPECT().DeleteAccount(ctx, "alice").Return(nil)

	require.NoError(t, svc.Delete(ctx, "alice", true))
}

func TestAccountService_Delete_NotConfirmed(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter := newTestAccountSvc(t, ctrl, false)

	mockAdapter.EXPECT().DeleteAccount(gomock.Any(), gomock.Any()).Times(0)

	err := svc.Delete(context.Background(), "alice", false)
	assert.ErrorIs(t, err, ErrDeleteNotConfirmed)
	assert.True(t, IsAborted(err))
}

func TestAccountService_Delete_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter := newTestAccountSvc(t, ctrl, false)
	ctx := context.Background()

	mockAdapter.EXPECT().DeleteAccount(ctx, "alice").Return(adapter.ErrForbidden)

	err := svc.Delete(ctx, "alice", true)
	assert.ErrorIs(t, err, adapter.ErrForbidden)
	assert.Contains(t, err.Error(), `"alice"`)
}

// ── Services ─────────────────────────────────────────────────────────────────

func TestNewServices(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockAccountsAdapter(ctrl)

	services := NewServices(mockAdapter, config.ClientApp{StrictUsernames: true}, logger.Nop())
	require.NotNil(t, services.AccountService)

	mockAdapter.EXPECT().CreateAccount(gomock.Any(), gomock.Any()).Times(0)
	err := services.AccountService.Create(context.Background(), models.AccountForm{Username: "a b"})
	assert.ErrorIs(t, err, ErrInvalidUsername)
}
