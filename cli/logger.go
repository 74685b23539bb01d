package cli

import (
	"io"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func SetupLogger(level string, out io.Writer) error {
	parsedLevel, err := zerolog.ParseLevel(level)
	if err != nil {
		err := errors.Wrapf(err, `SetupLogger error: invalid level "%s"`, level)
		return err
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: out}).
		Level(parsedLevel).
		With().
		Timestamp().
		Logger()
	return nil
}
