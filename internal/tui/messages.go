package tui

import "github.com/MKhiriev/cipher-keeper/models"

type listLoadedMsg struct {
	views []*models.CipherView
	err   error
}

type deletedMsg struct {
	name string
	err  error
}

type copiedMsg struct {
	field string
	err   error
}

type clearStatusMsg struct{}
