package cli

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"github.com/thanhnguyen2187/soundbox-flash/sbx"
)

var (
	ErrDestinationExists = errors.New("destination exists; use --force to overwrite it")
	ErrUnsafeName        = errors.New("file name is not a plain file name")
)

func CheckExistence(path string) bool {
	_, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return false
	}
	return err == nil
}

// ReadDirectoryFiles reads the regular files directly inside path. Anything else,
// including sub-folders, is skipped since archives only hold one level.
func ReadDirectoryFiles(path string) ([]sbx.File, error) {
	dirEntries, err := os.ReadDir(path)
	if err != nil {
		err := errors.Wrapf(err, `ReadDirectoryFiles error reading "%s"`, path)
		return nil, err
	}

	regularEntries := lo.Filter(
		dirEntries,
		func(dirEntry os.DirEntry, _ int) bool {
			if !dirEntry.Type().IsRegular() {
				log.Warn().Str("name", dirEntry.Name()).Msg("Skipped entry that is not a regular file")
				return false
			}
			return true
		},
	)

	files := make([]sbx.File, 0, len(regularEntries))
	for _, dirEntry := range regularEntries {
		content, err := os.ReadFile(filepath.Join(path, dirEntry.Name()))
		if err != nil {
			err := errors.Wrapf(err, `ReadDirectoryFiles error reading "%s"`, dirEntry.Name())
			return nil, err
		}
		files = append(files, sbx.File{Name: dirEntry.Name(), Content: content})
	}
	return files, nil
}

func IsSafeName(name string) bool {
	return name != "." &&
		name != ".." &&
		filepath.Base(name) == name &&
		!filepath.IsAbs(name)
}

// WriteFiles writes files into the folder at path, creating it when needed.
// Every destination is checked before the first file is written.
func WriteFiles(path string, files []sbx.File, force bool) error {
	for _, file := range files {
		if !IsSafeName(file.Name) {
			err := errors.Wrapf(ErrUnsafeName, `WriteFiles error: "%s"`, file.Name)
			return err
		}
		if CheckExistence(filepath.Join(path, file.Name)) && !force {
			err := errors.Wrapf(ErrDestinationExists, `WriteFiles error: "%s"`, file.Name)
			return err
		}
	}

	if err := os.MkdirAll(path, 0755); err != nil {
		err := errors.Wrapf(err, `WriteFiles error creating "%s"`, path)
		return err
	}
	for _, file := range files {
		if err := os.WriteFile(filepath.Join(path, file.Name), file.Content, 0644); err != nil {
			err := errors.Wrapf(err, `WriteFiles error writing "%s"`, file.Name)
			return err
		}
		log.Info().Str("name", file.Name).Int("size", len(file.Content)).Msg("Extracted file")
	}
	return nil
}
