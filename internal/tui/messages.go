package tui

import (
	"github.com/MKhiriev/harbor-admin/models"
)

type accountsLoadedMsg struct {
	accounts []models.Account
	err      error
}

type accountCreatedMsg struct {
	username string
	err      error
}

type passphraseChangedMsg struct {
	username string
	err      error
}

type accountDeletedMsg struct {
	username string
	err      error
}

type copiedMsg struct {
	username string
	err      error
}

type clearStatusMsg struct{}
