package cli

import (
	"os"
	"strings"

	"github.com/alexflint/go-arg"
	"github.com/rs/zerolog/log"
	"github.com/thanhnguyen2187/soundbox-flash/ui"
)

type (
	Args struct {
		List        *ListCmd        `arg:"subcommand:list" help:"print the entries of an archive and their checksum status"`
		Extract     *ExtractCmd     `arg:"subcommand:extract" help:"verify an archive and write its files to a folder"`
		Pack        *PackCmd        `arg:"subcommand:pack" help:"build an archive from the files of a folder"`
		Interactive *InteractiveCmd `arg:"subcommand:interactive" help:"browse the entries of an archive"`
		LogLevel    string          `arg:"--log-level,env:SOUNDBOX_LOG_LEVEL" default:"info" help:"trace, debug, info, warn or error"`
	}
	ListCmd struct {
		Archive string `arg:"positional,required" help:"path to the archive" placeholder:"FLASH.BIN"`
		Format  string `default:"text" help:"text, json or yaml"`
		Digest  bool   `help:"show the sha256 digest of every file"`
	}
	ExtractCmd struct {
		Archive string `arg:"positional,required" help:"path to the archive" placeholder:"FLASH.BIN"`
		Output  string `arg:"-o,env:SOUNDBOX_OUTPUT" default:"soundbox" help:"destination folder" placeholder:"DIR"`
		Force   bool   `help:"overwrite existing files in the destination folder"`
	}
	PackCmd struct {
		Input  string `arg:"positional,required" help:"folder holding the files to pack" placeholder:"DIR"`
		Output string `arg:"-o,required" help:"path to the archive to write" placeholder:"FLASH.BIN"`
		Name   string `help:"name of the directory entry; defaults to the folder's name"`
		Force  bool   `help:"overwrite the destination file"`
	}
	InteractiveCmd struct {
		Archive string `arg:"positional,required" help:"path to the archive" placeholder:"FLASH.BIN"`
	}
)

func (Args) Description() string {
	des := strings.Join(
		[]string{
			"Soundbox flash tools.\n",
			"Read, verify, extract and rebuild Soundbox flash archives:",
			"a table of 32-byte entries followed by the file payloads.",
		},
		"\n",
	)
	des += "\n"
	return des
}

func Start() {
	args := Args{}
	parser := arg.MustParse(&args)

	if err := SetupLogger(args.LogLevel, os.Stderr); err != nil {
		parser.Fail(err.Error())
	}

	err := error(nil)
	switch {
	case args.List != nil:
		err = StartListing(*args.List, os.Stdout)
	case args.Extract != nil:
		err = StartExtracting(*args.Extract)
	case args.Pack != nil:
		err = StartPacking(*args.Pack)
	case args.Interactive != nil:
		err = ui.Start(args.Interactive.Archive)
	default:
		parser.Fail("a subcommand is required")
	}
	if err != nil {
		log.Error().Err(err).Msg("Stopped")
		os.Exit(1)
	}
}
