// Package tui implements the interactive vault browser: a list of
// decrypted records with a scrollable detail screen, clipboard copy and
// delete.
package tui

import (
	"context"
	"io"
	"os"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/cipher-keeper/internal/logger"
	"github.com/MKhiriev/cipher-keeper/internal/service"
	"github.com/MKhiriev/cipher-keeper/models"
)

type TUI struct {
	vault  service.VaultService
	filter models.CipherFilter
	out    io.Writer
	logger *logger.Logger
}

func New(vault service.VaultService, filter models.CipherFilter, logger *logger.Logger) *TUI {
	return &TUI{
		vault:  vault,
		filter: filter,
		out:    os.Stdout,
		logger: logger,
	}
}

// Run blocks until the user quits or ctx is canceled.
func (t *TUI) Run(ctx context.Context) error {
	m := newModel(ctx, t.vault, t.filter, clipboard.WriteAll, t.out)

	final, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx), tea.WithOutput(t.out)).Run()
	if err != nil {
		return err
	}

	if result, ok := final.(model); ok && result.err != nil {
		t.logger.Debug().Err(result.err).Msg("browser closed with an error on screen")
	}
	return nil
}
