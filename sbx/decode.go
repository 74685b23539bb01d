package sbx

import (
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/thanhnguyen2187/soundbox-flash/sbx/scrc"
	"github.com/thanhnguyen2187/soundbox-flash/sbx/sentry"
)

func VerifyEntry(index int, entry sentry.Entry, data []byte) Result {
	calculatedHeader := scrc.Checksum(sentry.EncodeHeaderDomain(entry))
	calculatedPayload := scrc.Checksum(sentry.PayloadDomain(entry, data))
	return Result{
		Index:             index,
		Entry:             entry,
		HeaderOK:          calculatedHeader == entry.HeaderChecksum,
		PayloadOK:         calculatedPayload == entry.PayloadChecksum,
		CalculatedHeader:  calculatedHeader,
		CalculatedPayload: calculatedPayload,
	}
}

// Err describes the first failed check of the result, header before payload.
func (r Result) Err() error {
	if !r.HeaderOK {
		return &ErrChecksumMismatch{
			Index:      r.Index,
			Entry:      r.Entry,
			Kind:       ChecksumKindHeader,
			Expected:   r.Entry.HeaderChecksum,
			Calculated: r.CalculatedHeader,
		}
	}
	if !r.PayloadOK {
		return &ErrChecksumMismatch{
			Index:      r.Index,
			Entry:      r.Entry,
			Kind:       ChecksumKindPayload,
			Expected:   r.Entry.PayloadChecksum,
			Calculated: r.CalculatedPayload,
		}
	}
	return nil
}

// Inspect verifies every entry of data and reports each outcome,
// without stopping at mismatches.
func Inspect(data []byte) ([]Result, error) {
	entries, err := CollectEntries(data)
	if err != nil {
		err := errors.Wrap(err, "Inspect error")
		return nil, err
	}
	results := lo.Map(
		entries,
		func(entry sentry.Entry, index int) Result {
			return VerifyEntry(index, entry, data)
		},
	)
	return results, nil
}

// Decode reads and verifies the archive in data. Verification runs in table order
// and the first mismatch is returned as an *ErrChecksumMismatch, discarding every
// other entry.
func Decode(data []byte) (*Archive, error) {
	entries, err := CollectEntries(data)
	if err != nil {
		err := errors.Wrap(err, "Decode error")
		return nil, err
	}

	results := make([]Result, 0, len(entries))
	for index, entry := range entries {
		result := VerifyEntry(index, entry, data)
		if err := result.Err(); err != nil {
			return nil, err
		}
		results = append(results, result)
	}

	return &Archive{
		Entries: results,
		Data:    data,
	}, nil
}
