package ui

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"github.com/thanhnguyen2187/soundbox-flash/sbx"
)

func Start(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		err := errors.Wrapf(err, `ui.Start error reading "%s"`, path)
		return err
	}
	results, err := sbx.Inspect(data)
	if err != nil {
		err := errors.Wrap(err, "ui.Start error")
		return err
	}

	entryBrowser := CreateEntryBrowser(path, results)
	if err := tea.NewProgram(entryBrowser).Start(); err != nil {
		err := errors.Wrap(err, "ui.Start error")
		return err
	}
	return nil
}
