package cli

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/thanhnguyen2187/soundbox-flash/sbx"
)

func StartPacking(cmd PackCmd) error {
	if CheckExistence(cmd.Output) && !cmd.Force {
		err := errors.Wrapf(ErrDestinationExists, `StartPacking error: "%s"`, cmd.Output)
		return err
	}

	files, err := ReadDirectoryFiles(cmd.Input)
	if err != nil {
		err := errors.Wrap(err, "StartPacking error")
		return err
	}
	files = sbx.SortFiles(files)

	name := cmd.Name
	if name == "" {
		name = filepath.Base(filepath.Clean(cmd.Input))
	}
	archive, err := sbx.Encode(files, name)
	if err != nil {
		err := errors.Wrap(err, "StartPacking error")
		return err
	}

	if err := os.WriteFile(cmd.Output, archive, 0644); err != nil {
		err := errors.Wrapf(err, `StartPacking error writing "%s"`, cmd.Output)
		return err
	}
	log.Info().
		Int("files", len(files)).
		Int("size", len(archive)).
		Str("directory", name).
		Str("output", cmd.Output).
		Msg("Done packing")
	return nil
}
