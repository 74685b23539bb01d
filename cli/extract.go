package cli

import (
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/thanhnguyen2187/soundbox-flash/sbx"
)

// StartExtracting verifies the whole archive before writing anything: a single
// checksum mismatch leaves the destination untouched.
func StartExtracting(cmd ExtractCmd) error {
	data, err := os.ReadFile(cmd.Archive)
	if err != nil {
		err := errors.Wrapf(err, `StartExtracting error reading "%s"`, cmd.Archive)
		return err
	}

	archive, err := sbx.Decode(data)
	mismatch := &sbx.ErrChecksumMismatch{}
	if errors.As(err, &mismatch) {
		log.Error().
			Int("entry", mismatch.Index+1).
			Str("name", mismatch.Entry.Name).
			Str("checksum", string(mismatch.Kind)).
			Str("calculated", fmtChecksum(mismatch.Calculated)).
			Str("expected", fmtChecksum(mismatch.Expected)).
			Msg("Checksum mismatch; nothing was extracted")
	}
	if err != nil {
		err := errors.Wrap(err, "StartExtracting error")
		return err
	}

	files := sbx.Extract(*archive)
	if err := WriteFiles(cmd.Output, files, cmd.Force); err != nil {
		err := errors.Wrap(err, "StartExtracting error")
		return err
	}
	log.Info().Int("files", len(files)).Str("output", cmd.Output).Msg("Done extracting")
	return nil
}
