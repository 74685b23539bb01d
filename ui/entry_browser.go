package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"
	"github.com/thanhnguyen2187/soundbox-flash/ds"
	"github.com/thanhnguyen2187/soundbox-flash/sbx"
	"github.com/thanhnguyen2187/soundbox-flash/sbx/sentry"
)

const (
	StatusOK       = "ok"
	StatusMismatch = "MISMATCH"
)

type EntryBrowser struct {
	path    string
	results []sbx.Result
	cursor  int
}

func CreateEntryBrowser(path string, results []sbx.Result) EntryBrowser {
	return EntryBrowser{
		path:    path,
		results: results,
		cursor:  0,
	}
}

func status(ok bool) string {
	return lo.Ternary(ok, StatusOK, StatusMismatch)
}

func kindLabel(kind sentry.Kind) string {
	switch kind {
	case sentry.KindFile:
		return "F"
	case sentry.KindDirectory:
		return "D"
	case sentry.KindUnknown:
		return "?"
	}
	panic(ds.ErrUnreachableCode{Caller: "ui.kindLabel"})
}

func formatRecord(entry sentry.Entry) string {
	rows := lo.Map(
		ds.MakeChunks(sentry.Encode(entry), 16),
		func(row []byte, index int) string {
			return fmt.Sprintf("  %02X: % X", index*16, row)
		},
	)
	return strings.Join(rows, "\n")
}

func (s EntryBrowser) View() string {
	output := "SOUNDBOX FLASH\n\n"
	output += "Archive: " + s.path + "\n\n"

	if len(s.results) == 0 {
		output += "No entries found\n\nq: quit\n"
		return output
	}

	for index, result := range s.results {
		cursor := lo.Ternary(index == s.cursor, ">", " ")
		output += fmt.Sprintf(
			"%s %3d %s %-16s %8d  header %-8s payload %s\n",
			cursor, index+1, kindLabel(result.Entry.Kind), result.Entry.Name, result.Entry.Size,
			status(result.HeaderOK), status(result.PayloadOK),
		)
	}

	selected := s.results[s.cursor]
	output += "\n"
	output += fmt.Sprintf(
		"Offset: %d  Size: %d  Tag: 0x%02X  Marker: % X\n",
		selected.Entry.Offset, selected.Entry.Size, selected.Entry.Tag, selected.Entry.Marker,
	)
	output += fmt.Sprintf(
		"Header CRC: stored 0x%04X, calculated 0x%04X\n",
		selected.Entry.HeaderChecksum, selected.CalculatedHeader,
	)
	output += fmt.Sprintf(
		"Data CRC:   stored 0x%04X, calculated 0x%04X\n",
		selected.Entry.PayloadChecksum, selected.CalculatedPayload,
	)
	output += "Record:\n" + formatRecord(selected.Entry) + "\n"
	output += "\nup/k, down/j: move  q: quit\n"

	return output
}

func (s EntryBrowser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch keyMsg.String() {
	case "ctrl+c", "q":
		return s, tea.Quit
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(s.results)-1 {
			s.cursor++
		}
	}
	return s, nil
}

func (s EntryBrowser) Init() tea.Cmd {
	return nil
}
