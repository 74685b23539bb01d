package sbx

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/thanhnguyen2187/soundbox-flash/sbx/sentry"
)

var (
	ErrHeaderChecksumMismatch  = errors.New("header checksum mismatch")
	ErrPayloadChecksumMismatch = errors.New("payload checksum mismatch")
	ErrDuplicateName           = errors.New("duplicate file name")
	ErrArchiveTooLarge         = errors.New("archive does not fit 32-bit offsets")

	// re-exported so callers of the codec do not need to import sentry
	ErrInvalidNameEncoding = sentry.ErrInvalidNameEncoding
	ErrNameTooLong         = sentry.ErrNameTooLong
	ErrEmptyName           = sentry.ErrEmptyName
)

type (
	// ErrChecksumMismatch identifies the first entry of an archive that failed verification.
	ErrChecksumMismatch struct {
		Index      int
		Entry      sentry.Entry
		Kind       ChecksumKind
		Expected   uint16
		Calculated uint16
	}
)

func (r *ErrChecksumMismatch) Error() string {
	return fmt.Sprintf(
		`entry %d "%s": %s checksum mismatch (calculated 0x%04X, expected 0x%04X)`,
		r.Index, r.Entry.Name, r.Kind, r.Calculated, r.Expected,
	)
}

func (r *ErrChecksumMismatch) Is(target error) bool {
	switch target {
	case ErrHeaderChecksumMismatch:
		return r.Kind == ChecksumKindHeader
	case ErrPayloadChecksumMismatch:
		return r.Kind == ChecksumKindPayload
	}
	return false
}
