package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/opencontainers/go-digest"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"github.com/thanhnguyen2187/soundbox-flash/sbx"
	"github.com/thanhnguyen2187/soundbox-flash/sbx/sentry"
	"gopkg.in/yaml.v3"
)

const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

var (
	ErrVerificationFailed = errors.New("archive failed verification")
	ErrUnknownFormat      = errors.New("unknown output format")
)

type (
	ListedEntry struct {
		sbx.Result `json:",inline" yaml:",inline"`
		Digest     string `json:"digest,omitempty" yaml:"digest,omitempty"`
	}
)

func fmtChecksum(checksum uint16) string {
	return fmt.Sprintf("0x%04X", checksum)
}

func FormatResult(result sbx.Result) string {
	entry := result.Entry
	headerStatus := "Header CRC OK"
	if !result.HeaderOK {
		headerStatus = fmt.Sprintf(
			"Header CRC Mismatch (Calculated CRC: 0x%04X, Expected CRC: 0x%04X)",
			result.CalculatedHeader, entry.HeaderChecksum,
		)
	}
	payloadStatus := "Data CRC OK"
	if !result.PayloadOK {
		payloadStatus = fmt.Sprintf(
			"Data CRC Mismatch (Calculated CRC: 0x%04X, Expected CRC: 0x%04X)",
			result.CalculatedPayload, entry.PayloadChecksum,
		)
	}
	return fmt.Sprintf(
		"Entry %d: HeaderCRC=0x%04X, DataCRC=0x%04X, Offset=%d, Size=%d, Type=%s, Name=%s, %s, %s",
		result.Index+1,
		entry.HeaderChecksum, entry.PayloadChecksum,
		entry.Offset, entry.Size, entry.Kind, entry.Name,
		headerStatus, payloadStatus,
	)
}

func ToListedEntries(results []sbx.Result, data []byte, withDigest bool) []ListedEntry {
	return lo.Map(
		results,
		func(result sbx.Result, _ int) ListedEntry {
			listed := ListedEntry{Result: result}
			if withDigest && result.Entry.Kind == sentry.KindFile {
				content := sentry.Span(data, uint64(result.Entry.Offset), uint64(result.Entry.Size))
				listed.Digest = digest.FromBytes(content).String()
			}
			return listed
		},
	)
}

func RenderEntries(out io.Writer, format string, entries []ListedEntry) error {
	switch format {
	case FormatText:
		for _, entry := range entries {
			line := FormatResult(entry.Result)
			if entry.Digest != "" {
				line += ", Digest=" + entry.Digest
			}
			if _, err := fmt.Fprintln(out, line); err != nil {
				return errors.Wrap(err, "RenderEntries error")
			}
		}
		return nil
	case FormatJSON:
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return errors.Wrap(encoder.Encode(entries), "RenderEntries error")
	case FormatYAML:
		bs, err := yaml.Marshal(entries)
		if err != nil {
			return errors.Wrap(err, "RenderEntries error")
		}
		_, err = out.Write(bs)
		return errors.Wrap(err, "RenderEntries error")
	default:
		return errors.Wrapf(ErrUnknownFormat, `RenderEntries error: "%s"`, format)
	}
}

// StartListing prints every entry of the archive with its checksum status.
// Unlike extraction it keeps going past mismatches, then reports them as an error.
func StartListing(cmd ListCmd, out io.Writer) error {
	data, err := os.ReadFile(cmd.Archive)
	if err != nil {
		err := errors.Wrapf(err, `StartListing error reading "%s"`, cmd.Archive)
		return err
	}
	results, err := sbx.Inspect(data)
	if err != nil {
		err := errors.Wrap(err, "StartListing error")
		return err
	}
	if len(results) > 0 && results[len(results)-1].Entry.IsLast() {
		log.Debug().Int("entries", len(results)).Msg("Found the last entry marker")
	}
	for _, index := range sbx.DuplicateChecksumPairs(sbx.Entries(results)) {
		entry := results[index].Entry
		log.Warn().
			Int("entry", index+1).
			Str("header_crc", fmtChecksum(entry.HeaderChecksum)).
			Str("data_crc", fmtChecksum(entry.PayloadChecksum)).
			Msg("Duplicate CRC pair found")
	}

	if err := RenderEntries(out, cmd.Format, ToListedEntries(results, data, cmd.Digest)); err != nil {
		return err
	}

	failed := lo.Filter(
		results,
		func(result sbx.Result, _ int) bool {
			return result.Err() != nil
		},
	)
	if len(failed) > 0 {
		err := errors.Wrapf(ErrVerificationFailed, "StartListing error: %d of %d entries", len(failed), len(results))
		return err
	}
	return nil
}
